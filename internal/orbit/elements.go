// Package orbit turns orbital elements into initial body states.
//
// The initializer is deliberately simple: every body starts at
// perihelion at t=0, regardless of real ephemeris epoch. Orbital-phase
// realism is traded for a placement that needs no Kepler-equation solve.
// The helpers in kepler.go exist for diagnostics; the initializer does
// not use them.
package orbit

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/orbitsim/internal/units"
	"github.com/san-kum/orbitsim/internal/vec"
)

// Validation errors, reported at initialization and never clamped over.
var (
	ErrNonPositiveMass   = errors.New("orbit: mass must be positive")
	ErrNonPositivePeriod = errors.New("orbit: orbital period must be positive")
	ErrEccentricityRange = errors.New("orbit: eccentricity must be in [0, 1)")
	ErrUnknownPrimary    = errors.New("orbit: satellite references unknown primary")
)

// Elements describes a body's orbit around the reference mass.
type Elements struct {
	Mass          float64 // simulation mass units (fraction of reference mass)
	SemiMajorAxis float64 // simulation length units
	Eccentricity  float64 // 0 <= e < 1
	PeriodYears   float64
	Inclination   float64 // radians, tilt about the reference x axis
}

// Validate rejects configurations the initializer cannot place.
func (e Elements) Validate() error {
	if e.Mass <= 0 {
		return fmt.Errorf("%w: got %g", ErrNonPositiveMass, e.Mass)
	}
	if e.PeriodYears <= 0 {
		return fmt.Errorf("%w: got %g", ErrNonPositivePeriod, e.PeriodYears)
	}
	if e.Eccentricity < 0 || e.Eccentricity >= 1 {
		return fmt.Errorf("%w: got %g", ErrEccentricityRange, e.Eccentricity)
	}
	return nil
}

// StateVectors places the body at perihelion on the reference x axis,
// moving along +y at the mean circular speed 2*pi*a/period, then tilts
// both vectors by the inclination about the x axis.
func (e Elements) StateVectors() (pos, vel vec.V3, err error) {
	if err := e.Validate(); err != nil {
		return vec.V3{}, vec.V3{}, err
	}

	r := e.SemiMajorAxis * (1 - e.Eccentricity) // perihelion distance
	speed := units.CircularSpeed(e.SemiMajorAxis, e.PeriodYears)

	pos = vec.V3{X: r}.RotateX(e.Inclination)
	vel = vec.V3{Y: speed}.RotateX(e.Inclination)
	return pos, vel, nil
}

// Satellite describes a secondary body placed relative to an already
// initialized primary: a local radial offset plus a local tangential
// velocity, both composed with the primary's state. Not an independent
// absolute placement.
type Satellite struct {
	Mass        float64 // simulation mass units
	Distance    float64 // simulation length units from the primary
	PeriodYears float64 // around the primary
	Inclination float64 // radians, relative to the primary's plane
}

// Validate rejects satellite parameters the initializer cannot place.
func (s Satellite) Validate() error {
	if s.Mass <= 0 {
		return fmt.Errorf("%w: got %g", ErrNonPositiveMass, s.Mass)
	}
	if s.PeriodYears <= 0 {
		return fmt.Errorf("%w: got %g", ErrNonPositivePeriod, s.PeriodYears)
	}
	return nil
}

// StateVectors composes the satellite's local circular orbit with the
// primary's position and velocity.
func (s Satellite) StateVectors(primaryPos, primaryVel vec.V3) (pos, vel vec.V3, err error) {
	if err := s.Validate(); err != nil {
		return vec.V3{}, vec.V3{}, err
	}

	speed := units.CircularSpeed(s.Distance, s.PeriodYears)

	localPos := vec.V3{X: s.Distance}.RotateX(s.Inclination)
	localVel := vec.V3{Y: speed}.RotateX(s.Inclination)

	return primaryPos.Add(localPos), primaryVel.Add(localVel), nil
}

// MeanSpeed returns the mean circular orbital speed for the elements,
// in simulation lengths per second.
func (e Elements) MeanSpeed() float64 {
	return units.CircularSpeed(e.SemiMajorAxis, e.PeriodYears)
}

// Perihelion returns the perihelion distance a*(1-e).
func (e Elements) Perihelion() float64 {
	return e.SemiMajorAxis * (1 - e.Eccentricity)
}

// Aphelion returns the aphelion distance a*(1+e).
func (e Elements) Aphelion() float64 {
	return e.SemiMajorAxis * (1 + e.Eccentricity)
}

// PeriodSeconds returns the orbital period in simulation seconds.
func (e Elements) PeriodSeconds() float64 {
	return e.PeriodYears * units.SecondsPerYear
}

// MeanMotion returns the mean angular rate in radians per simulation
// second.
func (e Elements) MeanMotion() float64 {
	return 2 * math.Pi / e.PeriodSeconds()
}
