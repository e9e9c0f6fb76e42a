package generator

import (
	"errors"
	"fmt"

	"github.com/jakoblorz/go-vulcan/internal/tui"
	"go.uber.org/zap"
)

// Run drives a root generator and everything it composes through the
// lifecycle, sharing one Session.
type Run struct {
	*Session

	queue []Generator
	index int
	phase Phase
}

// NewRun creates a Run over session.
func NewRun(session *Session) *Run {
	return &Run{Session: session}
}

// Phase returns the phase currently executing.
func (r *Run) Phase() Phase {
	return r.phase
}

// Execute runs root through every phase. The store is committed once, after
// the configuring phase. Registered errors are reported at the end and turn
// into ErrValidationFailed. A prompt aborted by the user ends the run without
// committing and without an error.
func (r *Run) Execute(root Generator) error {
	err := r.execute(root)
	if errors.Is(err, tui.ErrAborted) {
		r.Logger.Debug("aborted", zap.String("phase", string(r.phase)))
		_, _ = fmt.Fprintln(r.Out, tui.SubtleStyle.Render("Aborted."))
		return nil
	}
	if err != nil {
		return err
	}

	r.phase = PhaseEnd
	return r.end()
}

func (r *Run) execute(root Generator) error {
	r.queue = []Generator{root}

	for _, phase := range phases {
		r.phase = phase

		for r.index = 0; r.index < len(r.queue); r.index++ {
			if err := r.runOne(r.queue[r.index], phase); err != nil {
				return err
			}
		}

		if phase == PhaseConfiguring {
			if err := r.Commit(); err != nil {
				return err
			}
		}
	}

	return nil
}

// Compose adds child to the run from within a phase of the running
// generator. The child catches up on every phase up to and including the
// current one, then runs ahead of the composing generator in later phases.
func (r *Run) Compose(child Generator) error {
	r.Logger.Debug("compose",
		zap.String("generator", child.Name()),
		zap.String("phase", string(r.phase)),
	)

	current := r.phase
	for _, phase := range phases {
		if err := r.runOne(child, phase); err != nil {
			return err
		}
		if phase == current {
			break
		}
	}
	r.phase = current

	r.queue = append(r.queue[:r.index], append([]Generator{child}, r.queue[r.index:]...)...)
	r.index++
	return nil
}

func (r *Run) runOne(g Generator, phase Phase) error {
	if phase != PhaseInitializing && !r.gate(phase) {
		r.Logger.Debug("phase skipped",
			zap.String("generator", g.Name()),
			zap.String("phase", string(phase)),
			zap.Int("errors", r.Registry().Len()),
		)
		return nil
	}

	r.Logger.Debug("phase",
		zap.String("generator", g.Name()),
		zap.String("phase", string(phase)),
	)

	if err := runPhase(g, phase, r); err != nil {
		return fmt.Errorf("%s: %s: %w", g.Name(), phase, err)
	}
	return nil
}

func (r *Run) gate(phase Phase) bool {
	switch phase {
	case PhasePrompting:
		return r.CanPrompt()
	case PhaseConfiguring:
		return r.CanConfigure()
	case PhaseWriting:
		return r.CanWrite()
	case PhaseInstalling:
		return r.CanInstall()
	default:
		return true
	}
}

// end prints every registered error, indexed from 0.
func (r *Run) end() error {
	errs := r.Registry().Errors()
	if len(errs) == 0 {
		return nil
	}

	for i, e := range errs {
		_, _ = fmt.Fprintf(r.Out, "%s\n\n%s\n\n", tui.ErrorStyle.Render(fmt.Sprintf("Error (%d):", i)), e.Message)
	}

	return fmt.Errorf("%w: %d error(s)", ErrValidationFailed, len(errs))
}
