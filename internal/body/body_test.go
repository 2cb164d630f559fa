package body

import (
	"math"
	"testing"

	"github.com/san-kum/orbitsim/internal/vec"
)

func TestMomentum(t *testing.T) {
	s := NewSystem([]Body{
		{Name: "a", Mass: 2.0, Velocity: vec.V3{X: 1}},
		{Name: "b", Mass: 1.0, Velocity: vec.V3{X: -2}},
	})

	p := s.Momentum()
	if p.Norm() > 1e-15 {
		t.Errorf("expected zero net momentum, got %+v", p)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewSystem([]Body{{Name: "a", Mass: 1, Position: vec.V3{X: 1}}})

	snap := s.Snapshot()
	snap[0].Position.X = 99

	if s.Bodies[0].Position.X != 1 {
		t.Error("mutating a snapshot reached the body store")
	}
}

func TestIsFinite(t *testing.T) {
	s := NewSystem([]Body{{Name: "a", Mass: 1}})
	if !s.IsFinite() {
		t.Error("fresh system should be finite")
	}

	s.Bodies[0].Velocity.Y = math.NaN()
	if s.IsFinite() {
		t.Error("NaN velocity not detected")
	}
}

func TestEnergyTwoBody(t *testing.T) {
	// Unit masses at unit separation, at rest, G=1, no softening:
	// E = -G m1 m2 / r = -1.
	s := NewSystem([]Body{
		{Name: "a", Mass: 1},
		{Name: "b", Mass: 1, Position: vec.V3{X: 1}},
	})

	e := s.Energy(1.0, 0)
	if math.Abs(e+1.0) > 1e-12 {
		t.Errorf("expected energy -1, got %f", e)
	}
}

func TestAngularMomentum(t *testing.T) {
	// Unit mass at (1,0,0) moving (0,1,0): L = +z.
	s := NewSystem([]Body{
		{Name: "a", Mass: 1, Position: vec.V3{X: 1}, Velocity: vec.V3{Y: 1}},
	})

	l := s.AngularMomentum()
	if math.Abs(l.Z-1) > 1e-15 || math.Abs(l.X) > 1e-15 || math.Abs(l.Y) > 1e-15 {
		t.Errorf("expected L=(0,0,1), got %+v", l)
	}
}

func TestFind(t *testing.T) {
	s := NewSystem([]Body{{Name: "sun"}, {Name: "earth"}})

	if i := s.Find("earth"); i != 1 {
		t.Errorf("expected index 1, got %d", i)
	}
	if i := s.Find("pluto"); i != -1 {
		t.Errorf("expected -1 for missing body, got %d", i)
	}
}
