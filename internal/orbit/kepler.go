package orbit

import "math"

// Kepler helpers for diagnostics and tests. The initializer never calls
// these: bodies are always placed at perihelion (mean anomaly zero).

const twoPi = 2 * math.Pi

// NormalizeAngle wraps an angle into [0, 2*pi).
func NormalizeAngle(angle float64) float64 {
	wrapped := math.Mod(angle, twoPi)
	if wrapped < 0 {
		wrapped += twoPi
	}
	return wrapped
}

// EccentricFromMean solves Kepler's equation M = E - e*sin(E) for E by
// Newton-Raphson iteration.
func EccentricFromMean(meanAnomaly, eccentricity float64) float64 {
	if eccentricity == 0 {
		return NormalizeAngle(meanAnomaly)
	}

	m := NormalizeAngle(meanAnomaly)
	e := m
	if eccentricity > 0.8 {
		// near-parabolic orbits need a better starting point
		e = math.Pi
	}

	for i := 0; i < 50; i++ {
		f := e - eccentricity*math.Sin(e) - m
		fp := 1 - eccentricity*math.Cos(e)

		delta := f / fp
		e -= delta

		if math.Abs(delta) < 1e-12 {
			break
		}
	}

	return NormalizeAngle(e)
}

// TrueFromEccentric converts an eccentric anomaly to the true anomaly.
func TrueFromEccentric(eccentricAnomaly, eccentricity float64) float64 {
	if eccentricity == 0 {
		return NormalizeAngle(eccentricAnomaly)
	}

	sinE := math.Sin(eccentricAnomaly)
	cosE := math.Cos(eccentricAnomaly)
	sq := math.Sqrt(1 - eccentricity*eccentricity)

	return NormalizeAngle(math.Atan2(sq*sinE, cosE-eccentricity))
}

// RadiusAt returns the orbital radius at the given eccentric anomaly.
func (e Elements) RadiusAt(eccentricAnomaly float64) float64 {
	return e.SemiMajorAxis * (1 - e.Eccentricity*math.Cos(eccentricAnomaly))
}
