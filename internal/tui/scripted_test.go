package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScriptedPrompter_Answers(t *testing.T) {
	p := NewScriptedPrompter().
		Answer("Package name", "blog").
		Answer("Create with", []string{"schema"}).
		Answer("Sure?", true)

	name, err := p.Input(InputQuestion{Title: "Package name"})
	require.NoError(t, err)
	require.Equal(t, "blog", name)

	parts, err := p.MultiSelect(MultiSelectQuestion{Title: "Create with"})
	require.NoError(t, err)
	require.Equal(t, []string{"schema"}, parts)

	ok, err := p.Confirm(ConfirmQuestion{Title: "Sure?"})
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, []string{"Package name", "Create with", "Sure?"}, p.Asked)
}

func TestScriptedPrompter_Defaults(t *testing.T) {
	p := NewScriptedPrompter()

	name, err := p.Input(InputQuestion{Title: "Name", Default: "blog"})
	require.NoError(t, err)
	require.Equal(t, "blog", name)

	choice, err := p.Select(SelectQuestion{Title: "Pick", Options: []Option{{Label: "A", Value: "a"}, {Label: "B", Value: "b"}}})
	require.NoError(t, err)
	require.Equal(t, "a", choice)

	selected, err := p.MultiSelect(MultiSelectQuestion{Title: "Parts", Options: []Option{
		{Label: "One", Value: "one", Selected: true},
		{Label: "Two", Value: "two"},
	}})
	require.NoError(t, err)
	require.Equal(t, []string{"one"}, selected)
}

func TestScriptedPrompter_Abort(t *testing.T) {
	p := NewScriptedPrompter().Abort("Name")

	_, err := p.Input(InputQuestion{Title: "Name"})
	require.ErrorIs(t, err, ErrAborted)
}

func TestScriptedPrompter_Validate(t *testing.T) {
	p := NewScriptedPrompter().Answer("Name", "")

	_, err := p.Input(InputQuestion{Title: "Name", Validate: func(s string) error {
		if s == "" {
			return errors.New("name cannot be empty")
		}
		return nil
	}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "name cannot be empty")
}

func TestScriptedPrompter_WrongType(t *testing.T) {
	p := NewScriptedPrompter().Answer("Sure?", "yes")

	_, err := p.Confirm(ConfirmQuestion{Title: "Sure?"})
	require.Error(t, err)
}

func TestNewHuhTheme(t *testing.T) {
	require.NotNil(t, NewHuhTheme())
}
