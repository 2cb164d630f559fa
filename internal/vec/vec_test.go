package vec

import (
	"math"
	"testing"
)

func TestCross(t *testing.T) {
	x := V3{1, 0, 0}
	y := V3{0, 1, 0}

	z := x.Cross(y)
	if z != (V3{0, 0, 1}) {
		t.Errorf("x cross y: got %+v, expected (0,0,1)", z)
	}

	back := y.Cross(x)
	if back != (V3{0, 0, -1}) {
		t.Errorf("y cross x: got %+v, expected (0,0,-1)", back)
	}
}

func TestRotateX(t *testing.T) {
	v := V3{0, 1, 0}
	r := v.RotateX(math.Pi / 2)

	if math.Abs(r.Y) > 1e-12 || math.Abs(r.Z-1) > 1e-12 {
		t.Errorf("quarter turn about x: got %+v, expected (0,0,1)", r)
	}

	// rotation about x leaves the x component alone
	u := V3{3, 1, 0}.RotateX(0.7)
	if u.X != 3 {
		t.Errorf("x component changed by RotateX: got %f", u.X)
	}
}

func TestRotateXPreservesNorm(t *testing.T) {
	v := V3{1.5, -2.0, 0.25}
	for _, angle := range []float64{0, 0.1, math.Pi / 3, math.Pi, 5.1} {
		r := v.RotateX(angle)
		if math.Abs(r.Norm()-v.Norm()) > 1e-12 {
			t.Errorf("rotation by %f changed norm: %f -> %f", angle, v.Norm(), r.Norm())
		}
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		v  V3
		ok bool
	}{
		{V3{0, 0, 0}, true},
		{V3{1e300, -1e300, 2}, true},
		{V3{math.NaN(), 0, 0}, false},
		{V3{0, math.Inf(1), 0}, false},
		{V3{0, 0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		if got := tt.v.IsFinite(); got != tt.ok {
			t.Errorf("IsFinite(%+v): got %v, expected %v", tt.v, got, tt.ok)
		}
	}
}

func TestNormSq(t *testing.T) {
	v := V3{3, 4, 12}
	if v.NormSq() != 169 {
		t.Errorf("expected 169, got %f", v.NormSq())
	}
	if v.Norm() != 13 {
		t.Errorf("expected 13, got %f", v.Norm())
	}
}
