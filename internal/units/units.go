// Package units folds SI quantities into the simulation's unit system.
//
// Masses around 1e30 kg and distances around 1e11 m drive naive SI force
// sums out of the comfortable float64 range. Rescaling to solar masses and
// astronomical units keeps every quantity the integrator touches within a
// narrow band, with the gravitational constant absorbed into one scaled
// factor computed once at startup.
package units

import "math"

// Physical constants, SI.
const (
	GravitationalConstant = 6.674e-11  // m^3 / (kg s^2)
	SolarMass             = 1.989e30   // kg
	AstronomicalUnit      = 1.496e11   // m
	SecondsPerYear        = 3.15576e7  // Julian year
	EarthMass             = 5.972e24   // kg
	LunarDistance         = 3.844e8    // m
)

// System holds the conversion factors between SI and simulation units.
// Immutable once built.
type System struct {
	RefMass   float64 // kg per simulation mass unit
	RefLength float64 // m per simulation length unit

	LengthScale float64 // simulation lengths per meter (1/RefLength)
	G           float64 // scaled gravitational constant, lengths^3 / (masses * s^2)
}

// New builds a unit system around a reference mass and length.
// The scaled constant is G * refMass * lengthScale^3, so that
// a = G_scaled * m / r^2 with m in reference masses and r in
// reference lengths yields lengths per second squared.
func New(refMass, refLength float64) System {
	ls := 1.0 / refLength
	return System{
		RefMass:     refMass,
		RefLength:   refLength,
		LengthScale: ls,
		G:           GravitationalConstant * refMass * ls * ls * ls,
	}
}

// Solar returns the solar-mass / astronomical-unit system used by the
// bundled scenarios. Time stays in seconds; periods given in years are
// folded through SecondsPerYear.
func Solar() System {
	return New(SolarMass, AstronomicalUnit)
}

// MassScale converts a physical mass in kilograms to simulation mass units.
func (s System) MassScale(kg float64) float64 {
	return kg / s.RefMass
}

// Length converts a physical length in meters to simulation length units.
func (s System) Length(m float64) float64 {
	return m * s.LengthScale
}

// CircularSpeed returns the speed of a circular orbit of the given radius
// (simulation lengths) and period (years), in lengths per second.
func CircularSpeed(radius, periodYears float64) float64 {
	return 2 * math.Pi * radius / (periodYears * SecondsPerYear)
}
