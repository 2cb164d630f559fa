// Package body holds the authoritative mutable state of the simulated
// system: mass, position and velocity for every body, plus the running
// simulation clock.
//
// A System has a single writer (the integrator) and is read between
// ticks through Snapshot; consumers never mutate it.
package body

import (
	"math"

	"github.com/san-kum/orbitsim/internal/vec"
)

// Body is one celestial body in simulation units: mass in reference
// masses, position in reference lengths, velocity in lengths per second.
type Body struct {
	Name     string
	Mass     float64
	Position vec.V3
	Velocity vec.V3
}

// System is the ordered body store. Order is stable for the lifetime of
// a run; it indexes the parallel acceleration buffer.
type System struct {
	Bodies []Body
	Time   float64 // cumulative simulation seconds
}

// NewSystem wraps a fixed set of bodies. The slice is owned by the
// system afterwards.
func NewSystem(bodies []Body) *System {
	return &System{Bodies: bodies}
}

// Snapshot is a read-only copy of one body's state, exposed to the
// rendering layer after each sub-step.
type Snapshot struct {
	Name     string
	Position vec.V3
	Velocity vec.V3
}

// Snapshot copies the current state of every body.
func (s *System) Snapshot() []Snapshot {
	out := make([]Snapshot, len(s.Bodies))
	for i, b := range s.Bodies {
		out[i] = Snapshot{Name: b.Name, Position: b.Position, Velocity: b.Velocity}
	}
	return out
}

// IsFinite reports whether every position and velocity component is a
// normal float. A false result after a step means the integration
// diverged; the run is over.
func (s *System) IsFinite() bool {
	for i := range s.Bodies {
		if !s.Bodies[i].Position.IsFinite() || !s.Bodies[i].Velocity.IsFinite() {
			return false
		}
	}
	return true
}

// Momentum returns total linear momentum. Pairwise forces are equal and
// opposite, so this is conserved by construction and makes a cheap
// integration check.
func (s *System) Momentum() vec.V3 {
	var p vec.V3
	for i := range s.Bodies {
		p = p.Add(s.Bodies[i].Velocity.Scale(s.Bodies[i].Mass))
	}
	return p
}

// AngularMomentum returns total angular momentum about the origin.
func (s *System) AngularMomentum() vec.V3 {
	var l vec.V3
	for i := range s.Bodies {
		b := &s.Bodies[i]
		l = l.Add(b.Position.Cross(b.Velocity).Scale(b.Mass))
	}
	return l
}

// Energy returns kinetic plus softened pairwise potential energy, using
// the same softening the force evaluator applies so the two agree.
func (s *System) Energy(g, softening float64) float64 {
	ke := 0.0
	pe := 0.0
	eps2 := softening * softening

	for i := range s.Bodies {
		bi := &s.Bodies[i]
		ke += 0.5 * bi.Mass * bi.Velocity.NormSq()

		for j := i + 1; j < len(s.Bodies); j++ {
			bj := &s.Bodies[j]
			r2 := bj.Position.Sub(bi.Position).NormSq() + eps2
			pe -= g * bi.Mass * bj.Mass / math.Sqrt(r2)
		}
	}

	return ke + pe
}

// Find returns the index of the named body, or -1.
func (s *System) Find(name string) int {
	for i := range s.Bodies {
		if s.Bodies[i].Name == name {
			return i
		}
	}
	return -1
}
