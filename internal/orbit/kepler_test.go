package orbit

import (
	"math"
	"testing"
)

func TestEccentricFromMeanCircular(t *testing.T) {
	// For e=0 Kepler's equation is the identity.
	for _, m := range []float64{0, 0.5, math.Pi, 5.9} {
		if got := EccentricFromMean(m, 0); math.Abs(got-m) > 1e-12 {
			t.Errorf("e=0, M=%f: got E=%f", m, got)
		}
	}
}

func TestEccentricFromMeanSolvesKepler(t *testing.T) {
	tests := []struct {
		m, e float64
	}{
		{0.1, 0.1},
		{1.0, 0.3},
		{math.Pi / 2, 0.6},
		{2.5, 0.9},
		{5.5, 0.95},
	}

	for _, tt := range tests {
		E := EccentricFromMean(tt.m, tt.e)
		residual := E - tt.e*math.Sin(E) - tt.m
		if math.Abs(residual) > 1e-10 {
			t.Errorf("M=%f e=%f: residual %e", tt.m, tt.e, residual)
		}
	}
}

func TestTrueFromEccentric(t *testing.T) {
	// At perihelion (E=0) and aphelion (E=pi) the anomalies coincide.
	if nu := TrueFromEccentric(0, 0.5); nu != 0 {
		t.Errorf("perihelion: got %f", nu)
	}
	if nu := TrueFromEccentric(math.Pi, 0.5); math.Abs(nu-math.Pi) > 1e-12 {
		t.Errorf("aphelion: got %f", nu)
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, out float64
	}{
		{0, 0},
		{twoPi, 0},
		{-math.Pi, math.Pi},
		{3 * math.Pi, math.Pi},
	}

	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); math.Abs(got-tt.out) > 1e-12 {
			t.Errorf("NormalizeAngle(%f): got %f, expected %f", tt.in, got, tt.out)
		}
	}
}

func TestRadiusAtExtremes(t *testing.T) {
	e := Elements{Mass: 1, SemiMajorAxis: 2, Eccentricity: 0.25, PeriodYears: 1}

	if r := e.RadiusAt(0); math.Abs(r-e.Perihelion()) > 1e-12 {
		t.Errorf("E=0: got %f, expected perihelion %f", r, e.Perihelion())
	}
	if r := e.RadiusAt(math.Pi); math.Abs(r-e.Aphelion()) > 1e-12 {
		t.Errorf("E=pi: got %f, expected aphelion %f", r, e.Aphelion())
	}
}
