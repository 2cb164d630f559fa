// Package integrator advances the body store by fixed timesteps.
//
// Leapfrog (velocity Verlet, kick-drift-kick) is the simulation
// integrator: it is symplectic, so orbital energy oscillates within a
// bound instead of drifting secularly, which is what keeps an
// indefinitely running animation from decaying or blowing up. The
// semi-implicit Euler stepper exists only for comparison runs.
package integrator

import (
	"github.com/san-kum/orbitsim/internal/body"
	"github.com/san-kum/orbitsim/internal/gravity"
	"github.com/san-kum/orbitsim/internal/vec"
)

// Stepper advances every body by one timestep of dt seconds.
type Stepper interface {
	Step(s *body.System, ev *gravity.Evaluator, dt float64)
}

// Leapfrog implements kick-drift-kick sequencing. The acceleration
// computed at the end of a step is carried into the next call, so each
// step costs one force evaluation after the first.
type Leapfrog struct {
	accel []vec.V3
}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

// Reset drops the cached acceleration. Call after bodies are replaced
// or repositioned outside the integrator.
func (l *Leapfrog) Reset() {
	l.accel = nil
}

func (l *Leapfrog) Step(s *body.System, ev *gravity.Evaluator, dt float64) {
	n := len(s.Bodies)

	if len(l.accel) != n {
		l.accel = make([]vec.V3, n)
		copy(l.accel, ev.Accelerations(s))
	}

	half := dt * 0.5

	// half-kick with the acceleration at the start of the step
	for i := range s.Bodies {
		s.Bodies[i].Velocity = s.Bodies[i].Velocity.Add(l.accel[i].Scale(half))
	}

	// drift
	for i := range s.Bodies {
		s.Bodies[i].Position = s.Bodies[i].Position.Add(s.Bodies[i].Velocity.Scale(dt))
	}

	// fresh forces at the new positions, kept for the next call
	copy(l.accel, ev.Accelerations(s))

	// second half-kick
	for i := range s.Bodies {
		s.Bodies[i].Velocity = s.Bodies[i].Velocity.Add(l.accel[i].Scale(half))
	}

	s.Time += dt
}

// SemiImplicitEuler kicks then drifts with the full step. First order;
// kept only so comparison runs can show leapfrog's energy behavior.
type SemiImplicitEuler struct{}

func NewSemiImplicitEuler() *SemiImplicitEuler {
	return &SemiImplicitEuler{}
}

func (e *SemiImplicitEuler) Step(s *body.System, ev *gravity.Evaluator, dt float64) {
	acc := ev.Accelerations(s)

	for i := range s.Bodies {
		s.Bodies[i].Velocity = s.Bodies[i].Velocity.Add(acc[i].Scale(dt))
	}
	for i := range s.Bodies {
		s.Bodies[i].Position = s.Bodies[i].Position.Add(s.Bodies[i].Velocity.Scale(dt))
	}

	s.Time += dt
}
