// Package generator runs vulcan generators through their lifecycle.
//
// A generator is driven through the phases initializing, prompting,
// configuring, writing and installing. Every phase after initializing is
// gated: once a guard has registered an error the phase is skipped for every
// generator. The end phase always runs and reports the registered errors.
package generator

import "errors"

// ErrValidationFailed is returned when a run ends with registered errors.
var ErrValidationFailed = errors.New("validation failed")

// Phase is a step of the generator lifecycle.
type Phase string

const (
	PhaseInitializing Phase = "initializing"
	PhasePrompting    Phase = "prompting"
	PhaseConfiguring  Phase = "configuring"
	PhaseWriting      Phase = "writing"
	PhaseInstalling   Phase = "installing"
	PhaseEnd          Phase = "end"
)

// phases lists the phases generators implement, in run order.
var phases = []Phase{
	PhaseInitializing,
	PhasePrompting,
	PhaseConfiguring,
	PhaseWriting,
	PhaseInstalling,
}

// Generator is one unit of scaffolding work.
type Generator interface {
	Name() string

	// Initializing runs the guards that do not need any input.
	Initializing(r *Run) error
	// Prompting gathers and normalizes input, then validates it.
	Prompting(r *Run) error
	// Configuring dispatches actions to the store.
	Configuring(r *Run) error
	// Writing renders templates to disk.
	Writing(r *Run) error
	// Installing prints follow-up instructions.
	Installing(r *Run) error
}

// Base implements every phase as a no-op. Generators embed it and override the
// phases they need.
type Base struct{}

func (Base) Initializing(*Run) error { return nil }
func (Base) Prompting(*Run) error    { return nil }
func (Base) Configuring(*Run) error  { return nil }
func (Base) Writing(*Run) error      { return nil }
func (Base) Installing(*Run) error   { return nil }

func runPhase(g Generator, phase Phase, r *Run) error {
	switch phase {
	case PhaseInitializing:
		return g.Initializing(r)
	case PhasePrompting:
		return g.Prompting(r)
	case PhaseConfiguring:
		return g.Configuring(r)
	case PhaseWriting:
		return g.Writing(r)
	case PhaseInstalling:
		return g.Installing(r)
	default:
		return nil
	}
}
