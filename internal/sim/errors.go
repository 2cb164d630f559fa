package sim

import (
	"errors"
	"fmt"
)

// Domain errors for simulation runs.
var (
	// ErrDiverged indicates a position or velocity went non-finite
	// after a step. Divergence is not retried; the fix is a smaller
	// timestep or a different configuration.
	ErrDiverged = errors.New("sim: integration diverged (NaN or Inf in body state)")

	// ErrNoBodies indicates a run was started with an empty system.
	ErrNoBodies = errors.New("sim: system has no bodies")
)

// StepError wraps a failure with the step and simulation time at which
// it occurred.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4g s): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
