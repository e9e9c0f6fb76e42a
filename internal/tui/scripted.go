package tui

import "fmt"

// ScriptedPrompter answers questions from a script keyed by question title.
// Unscripted questions get their default answer. Useful in tests.
type ScriptedPrompter struct {
	answers map[string]any
	aborts  map[string]bool
	Asked   []string
}

// NewScriptedPrompter creates an empty script.
func NewScriptedPrompter() *ScriptedPrompter {
	return &ScriptedPrompter{
		answers: make(map[string]any),
		aborts:  make(map[string]bool),
	}
}

// Answer scripts the answer to the question titled title. The value must be a
// string for Input/Select, []string for MultiSelect and bool for Confirm.
func (p *ScriptedPrompter) Answer(title string, value any) *ScriptedPrompter {
	p.answers[title] = value
	return p
}

// Abort makes the question titled title return ErrAborted.
func (p *ScriptedPrompter) Abort(title string) *ScriptedPrompter {
	p.aborts[title] = true
	return p
}

func (p *ScriptedPrompter) Input(q InputQuestion) (string, error) {
	value, err := answer(p, q.Title, q.Default)
	if err != nil {
		return "", err
	}
	if q.Validate != nil {
		if err := q.Validate(value); err != nil {
			return "", fmt.Errorf("invalid answer to %q: %w", q.Title, err)
		}
	}
	return value, nil
}

func (p *ScriptedPrompter) Select(q SelectQuestion) (string, error) {
	fallback := q.Default
	if fallback == "" && len(q.Options) > 0 {
		fallback = q.Options[0].Value
	}
	return answer(p, q.Title, fallback)
}

func (p *ScriptedPrompter) MultiSelect(q MultiSelectQuestion) ([]string, error) {
	var fallback []string
	for _, o := range q.Options {
		if o.Selected {
			fallback = append(fallback, o.Value)
		}
	}
	return answer(p, q.Title, fallback)
}

func (p *ScriptedPrompter) Confirm(q ConfirmQuestion) (bool, error) {
	return answer(p, q.Title, q.Default)
}

func answer[T any](p *ScriptedPrompter, title string, fallback T) (T, error) {
	p.Asked = append(p.Asked, title)

	if p.aborts[title] {
		var zero T
		return zero, ErrAborted
	}

	raw, ok := p.answers[title]
	if !ok {
		return fallback, nil
	}

	value, ok := raw.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("scripted answer to %q has type %T, want %T", title, raw, zero)
	}
	return value, nil
}
