// Package stepper maps wall-clock frame time to integration sub-steps.
//
// The mapping is policy, not physics: it only decides how many times,
// and with what dt, the integrator runs per rendering tick. Two
// interchangeable policies are provided; the simulation core never
// depends on which one is in use.
package stepper

import "time"

// Default tuning. A speed multiplier around 2e6 makes one simulated
// year pass in roughly fifteen wall seconds at 60fps.
const (
	DefaultBaseDt      = 3600.0 // one simulated hour per sub-step
	DefaultSpeed       = 2.0e6  // simulated seconds per wall second
	DefaultMaxSubSteps = 64
)

// Policy converts elapsed wall time into (subSteps, dtPerSubStep).
// subSteps is always at least 1 so every tick makes forward progress.
type Policy interface {
	Advance(elapsed time.Duration) (subSteps int, dt float64)
}

// Heuristic splits the scaled elapsed time into roughly BaseDt-sized
// pieces and stretches dt so the pieces cover it exactly. dt therefore
// varies slightly from tick to tick.
type Heuristic struct {
	BaseDt      float64
	Speed       float64
	MaxSubSteps int
}

func NewHeuristic() *Heuristic {
	return &Heuristic{
		BaseDt:      DefaultBaseDt,
		Speed:       DefaultSpeed,
		MaxSubSteps: DefaultMaxSubSteps,
	}
}

func (h *Heuristic) Advance(elapsed time.Duration) (int, float64) {
	target := elapsed.Seconds() * h.Speed

	n := int(target / h.BaseDt)
	if n < 1 {
		n = 1
	}
	if h.MaxSubSteps > 0 && n > h.MaxSubSteps {
		n = h.MaxSubSteps
	}

	return n, target / float64(n)
}

// Accumulator is the fixed-step alternative: dt is always exactly Dt
// and leftover time carries over to the next tick. The carry may go
// briefly negative to honor the at-least-one-step contract.
type Accumulator struct {
	Dt          float64
	Speed       float64
	MaxSubSteps int

	carry float64
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		Dt:          DefaultBaseDt,
		Speed:       DefaultSpeed,
		MaxSubSteps: DefaultMaxSubSteps,
	}
}

func (a *Accumulator) Advance(elapsed time.Duration) (int, float64) {
	a.carry += elapsed.Seconds() * a.Speed

	n := int(a.carry / a.Dt)
	if n < 1 {
		n = 1
	}
	if a.MaxSubSteps > 0 && n > a.MaxSubSteps {
		n = a.MaxSubSteps
		// a stalled frame dumps its backlog instead of spiraling
		if a.carry > float64(n)*a.Dt {
			a.carry = float64(n) * a.Dt
		}
	}

	a.carry -= float64(n) * a.Dt
	return n, a.Dt
}
