// Package sim wires the body store, force evaluator, integrator and
// frame stepper into one simulator.
//
// Two modes of driving it:
//
//   - [Simulator.Run] executes a batch of fixed steps under a context,
//     recording the trajectory (the CLI run/bench/compare commands).
//   - [Simulator.Tick] is called by a rendering host once per frame
//     with the elapsed wall time; the stepper policy decides how many
//     sub-steps to take.
//
// A Simulator is not safe for concurrent use. The intended model is a
// single writer (the tick handler) and readers that only look at
// snapshots between ticks.
package sim

import (
	"context"
	"math"
	"time"

	"github.com/san-kum/orbitsim/internal/body"
	"github.com/san-kum/orbitsim/internal/gravity"
	"github.com/san-kum/orbitsim/internal/integrator"
	"github.com/san-kum/orbitsim/internal/stepper"
)

type Simulator struct {
	system  *body.System
	eval    *gravity.Evaluator
	step    integrator.Stepper
	policy  stepper.Policy
	onSub   func(*body.System) // called after every sub-step, may be nil
	stepNum int
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithStepper overrides the default leapfrog integrator.
func WithStepper(st integrator.Stepper) Option {
	return func(s *Simulator) { s.step = st }
}

// WithPolicy overrides the default heuristic frame policy.
func WithPolicy(p stepper.Policy) Option {
	return func(s *Simulator) { s.policy = p }
}

// WithSubStepHook registers a callback invoked after every sub-step,
// while positions are fresh. Trail renderers hang off this: they need
// a position per sub-step, not per tick.
func WithSubStepHook(fn func(*body.System)) Option {
	return func(s *Simulator) { s.onSub = fn }
}

func New(system *body.System, eval *gravity.Evaluator, opts ...Option) *Simulator {
	s := &Simulator{
		system: system,
		eval:   eval,
		step:   integrator.NewLeapfrog(),
		policy: stepper.NewHeuristic(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset replaces the system state with the given bodies at time zero
// and clears any integrator caches.
func (s *Simulator) Reset(bodies []body.Body) {
	s.system.Bodies = append(s.system.Bodies[:0], bodies...)
	s.system.Time = 0
	s.stepNum = 0
	if r, ok := s.step.(interface{ Reset() }); ok {
		r.Reset()
	}
}

// System exposes the body store for diagnostics. Callers must not
// mutate it while ticks are running.
func (s *Simulator) System() *body.System {
	return s.system
}

// Snapshot returns a read-only copy of every body's current state.
func (s *Simulator) Snapshot() []body.Snapshot {
	return s.system.Snapshot()
}

// Tick advances the simulation by one rendering frame's worth of wall
// time. Sub-steps run strictly sequentially; after all of them the
// updated state is checked for finiteness.
func (s *Simulator) Tick(elapsed time.Duration) error {
	if len(s.system.Bodies) == 0 {
		return ErrNoBodies
	}

	n, dt := s.policy.Advance(elapsed)
	for i := 0; i < n; i++ {
		s.step.Step(s.system, s.eval, dt)
		s.stepNum++
		if s.onSub != nil {
			s.onSub(s.system)
		}
	}

	if !s.system.IsFinite() {
		return &StepError{Step: s.stepNum, Time: s.system.Time, Wrapped: ErrDiverged}
	}
	return nil
}

// Result holds a recorded batch run.
type Result struct {
	Names     []string
	Positions [][]float64 // row per sample: x0,y0,z0,x1,y1,z1,...
	Times     []float64
	Steps     int

	EnergyDrift   float64 // |E_end - E_0| / |E_0|
	MomentumDrift float64 // |P_end - P_0|
}

// Run advances the system steps times with a fixed dt, recording a
// sample every sampleEvery steps (plus the initial state). It stops
// early on context cancellation or divergence.
func (s *Simulator) Run(ctx context.Context, steps int, dt float64, sampleEvery int) (*Result, error) {
	if len(s.system.Bodies) == 0 {
		return nil, ErrNoBodies
	}
	if sampleEvery < 1 {
		sampleEvery = 1
	}

	res := &Result{
		Names: make([]string, len(s.system.Bodies)),
	}
	for i := range s.system.Bodies {
		res.Names[i] = s.system.Bodies[i].Name
	}

	e0 := s.system.Energy(s.eval.G, s.eval.Softening)
	p0 := s.system.Momentum()

	res.record(s.system)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		s.step.Step(s.system, s.eval, dt)
		s.stepNum++
		res.Steps++

		if !s.system.IsFinite() {
			return res, &StepError{Step: s.stepNum, Time: s.system.Time, Wrapped: ErrDiverged}
		}

		if (i+1)%sampleEvery == 0 || i == steps-1 {
			res.record(s.system)
		}
	}

	if e0 != 0 {
		e1 := s.system.Energy(s.eval.G, s.eval.Softening)
		res.EnergyDrift = math.Abs(e1-e0) / math.Abs(e0)
	}
	res.MomentumDrift = s.system.Momentum().Sub(p0).Norm()

	return res, nil
}

func (r *Result) record(s *body.System) {
	row := make([]float64, 0, len(s.Bodies)*3)
	for i := range s.Bodies {
		p := s.Bodies[i].Position
		row = append(row, p.X, p.Y, p.Z)
	}
	r.Positions = append(r.Positions, row)
	r.Times = append(r.Times, s.Time)
}
