package tui

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
)

// ErrAborted is returned by a Prompter when the user cancels a question.
var ErrAborted = errors.New("prompt aborted")

// Option is a choice in a select or multi-select question.
type Option struct {
	Label    string
	Value    string
	Selected bool
}

// InputQuestion asks for free text.
type InputQuestion struct {
	Title       string
	Default     string
	Placeholder string
	Validate    func(string) error
}

// SelectQuestion asks for exactly one of Options.
type SelectQuestion struct {
	Title   string
	Options []Option
	Default string
}

// MultiSelectQuestion asks for any subset of Options.
type MultiSelectQuestion struct {
	Title   string
	Options []Option
}

// ConfirmQuestion asks a yes/no question.
type ConfirmQuestion struct {
	Title   string
	Default bool
}

// Prompter asks the developer questions. Implementations return ErrAborted
// when the developer cancels.
type Prompter interface {
	Input(q InputQuestion) (string, error)
	Select(q SelectQuestion) (string, error)
	MultiSelect(q MultiSelectQuestion) ([]string, error)
	Confirm(q ConfirmQuestion) (bool, error)
}

// HuhPrompter asks questions with huh forms.
type HuhPrompter struct {
	theme  *huh.Theme
	output io.Writer
}

// NewHuhPrompter creates a HuhPrompter using the vulcan theme. Forms render
// to output so generated summaries on stdout stay clean.
func NewHuhPrompter(output io.Writer) *HuhPrompter {
	return &HuhPrompter{
		theme:  NewHuhTheme(),
		output: output,
	}
}

func (p *HuhPrompter) Input(q InputQuestion) (string, error) {
	value := q.Default

	input := huh.NewInput().
		Title(q.Title).
		Placeholder(q.Placeholder).
		Value(&value)
	if q.Validate != nil {
		input = input.Validate(q.Validate)
	}

	if err := p.run(huh.NewGroup(input)); err != nil {
		return "", err
	}
	return value, nil
}

func (p *HuhPrompter) Select(q SelectQuestion) (string, error) {
	value := q.Default

	opts := make([]huh.Option[string], 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, huh.NewOption(o.Label, o.Value))
	}

	keyMap := huh.NewDefaultKeyMap()
	keyMap.Select.Submit.SetKeys("enter", " ")
	keyMap.Select.Submit.SetHelp("space/enter", "continue")

	field := huh.NewSelect[string]().
		Title(q.Title).
		Options(opts...).
		Value(&value)

	if err := p.run(huh.NewGroup(field), keyMap); err != nil {
		return "", err
	}
	return value, nil
}

func (p *HuhPrompter) MultiSelect(q MultiSelectQuestion) ([]string, error) {
	var selected []string

	opts := make([]huh.Option[string], 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, huh.NewOption(o.Label, o.Value).Selected(o.Selected))
	}

	keyMap := huh.NewDefaultKeyMap()
	keyMap.MultiSelect.Filter.SetEnabled(false)
	keyMap.MultiSelect.Toggle.SetKeys(" ")
	keyMap.MultiSelect.Toggle.SetHelp("space", "toggle selection")
	keyMap.MultiSelect.Submit.SetKeys("enter")
	keyMap.MultiSelect.Submit.SetHelp("enter", "continue")

	field := huh.NewMultiSelect[string]().
		Title(q.Title).
		Options(opts...).
		Value(&selected)

	if err := p.run(huh.NewGroup(field), keyMap); err != nil {
		return nil, err
	}
	return selected, nil
}

func (p *HuhPrompter) Confirm(q ConfirmQuestion) (bool, error) {
	value := q.Default

	field := huh.NewConfirm().
		Title(q.Title).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	if err := p.run(huh.NewGroup(field)); err != nil {
		return false, err
	}
	return value, nil
}

func (p *HuhPrompter) run(group *huh.Group, keyMaps ...*huh.KeyMap) error {
	form := huh.NewForm(group).
		WithTheme(p.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithOutput(p.output))

	if len(keyMaps) > 0 {
		form = form.WithKeyMap(keyMaps[0])
	}

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
