package orbit_test

import (
	"math"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/units"
	"github.com/san-kum/orbitsim/internal/vec"
)

func TestOrbit(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Orbit Suite")
}

var _ = Describe("Elements", func() {
	Describe("StateVectors", func() {
		It("places a circular, uninclined orbit on the reference axis", func() {
			e := orbit.Elements{Mass: 3e-6, SemiMajorAxis: 1, Eccentricity: 0, PeriodYears: 1}

			pos, vel, err := e.StateVectors()
			Expect(err).NotTo(HaveOccurred())

			Expect(pos.X).To(Equal(1.0))
			Expect(pos.Y).To(BeZero())
			Expect(pos.Z).To(BeZero())

			Expect(vel.X).To(BeZero())
			Expect(vel.Z).To(BeZero())
			Expect(vel.Y).To(BeNumerically("~", 2*math.Pi/units.SecondsPerYear, 1e-18))
		})

		It("starts eccentric orbits at the perihelion distance", func() {
			e := orbit.Elements{Mass: 1e-7, SemiMajorAxis: 2, Eccentricity: 0.3, PeriodYears: 2.83}

			pos, _, err := e.StateVectors()
			Expect(err).NotTo(HaveOccurred())
			Expect(pos.Norm()).To(BeNumerically("~", 2*(1-0.3), 1e-12))
		})

		It("tilts position and velocity together", func() {
			incl := 0.25
			e := orbit.Elements{Mass: 1e-6, SemiMajorAxis: 1.5, Eccentricity: 0.1, PeriodYears: 1.8, Inclination: incl}

			pos, vel, err := e.StateVectors()
			Expect(err).NotTo(HaveOccurred())

			// the tilt must not change magnitudes or orthogonality
			Expect(pos.Norm()).To(BeNumerically("~", e.Perihelion(), 1e-12))
			Expect(vel.Norm()).To(BeNumerically("~", e.MeanSpeed(), 1e-18))
			Expect(pos.Dot(vel)).To(BeNumerically("~", 0, 1e-18))

			// plane normal tilted away from +z by the inclination
			normal := pos.Cross(vel)
			cosTilt := normal.Z / normal.Norm()
			Expect(cosTilt).To(BeNumerically("~", math.Cos(incl), 1e-12))
		})
	})

	Describe("Validate", func() {
		It("rejects non-positive mass", func() {
			e := orbit.Elements{Mass: 0, SemiMajorAxis: 1, PeriodYears: 1}
			Expect(e.Validate()).To(MatchError(orbit.ErrNonPositiveMass))
		})

		It("rejects non-positive period", func() {
			e := orbit.Elements{Mass: 1, SemiMajorAxis: 1, PeriodYears: -2}
			Expect(e.Validate()).To(MatchError(orbit.ErrNonPositivePeriod))
		})

		It("rejects parabolic and hyperbolic eccentricities", func() {
			e := orbit.Elements{Mass: 1, SemiMajorAxis: 1, PeriodYears: 1, Eccentricity: 1.0}
			Expect(e.Validate()).To(MatchError(orbit.ErrEccentricityRange))

			e.Eccentricity = -0.1
			Expect(e.Validate()).To(MatchError(orbit.ErrEccentricityRange))
		})

		It("accepts a circular orbit", func() {
			e := orbit.Elements{Mass: 1, SemiMajorAxis: 1, PeriodYears: 1}
			Expect(e.Validate()).To(Succeed())
		})
	})
})

var _ = Describe("Satellite", func() {
	It("composes the primary's frame, not absolute coordinates", func() {
		primaryPos := vec.V3{X: 5, Y: 1}
		primaryVel := vec.V3{Y: 3e-7}

		s := orbit.Satellite{Mass: 3.7e-8, Distance: 0.00257, PeriodYears: 0.0748}

		pos, vel, err := s.StateVectors(primaryPos, primaryVel)
		Expect(err).NotTo(HaveOccurred())

		Expect(pos.Sub(primaryPos).Norm()).To(BeNumerically("~", 0.00257, 1e-12))

		local := vel.Sub(primaryVel)
		Expect(local.Norm()).To(BeNumerically("~", units.CircularSpeed(0.00257, 0.0748), 1e-18))
	})

	It("rejects a non-positive period", func() {
		s := orbit.Satellite{Mass: 1e-8, Distance: 0.01, PeriodYears: 0}
		_, _, err := s.StateVectors(vec.V3{}, vec.V3{})
		Expect(err).To(MatchError(orbit.ErrNonPositivePeriod))
	})
})
