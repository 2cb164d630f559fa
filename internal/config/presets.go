package config

import (
	"sort"

	"github.com/san-kum/orbitsim/internal/stepper"
)

// Presets are compiled-in scenarios. Masses are in solar masses,
// distances in AU, periods in years, inclinations in degrees.
var Presets = map[string]*Config{
	"inner": {
		Name:        "inner solar system",
		Softening:   1e-6,
		BaseDt:      stepper.DefaultBaseDt,
		Speed:       stepper.DefaultSpeed,
		MaxSubSteps: stepper.DefaultMaxSubSteps,
		Policy:      "heuristic",
		Bodies: []BodyConfig{
			{Name: "sun", Mass: 1.0},
			{Name: "mercury", Mass: 1.66e-7, SemiMajorAxis: 0.387, Eccentricity: 0.206, PeriodYears: 0.241, InclinationDeg: 7.0},
			{Name: "venus", Mass: 2.45e-6, SemiMajorAxis: 0.723, Eccentricity: 0.007, PeriodYears: 0.615, InclinationDeg: 3.4},
			{Name: "earth", Mass: 3.0e-6, SemiMajorAxis: 1.0, Eccentricity: 0.017, PeriodYears: 1.0},
			{Name: "moon", Mass: 3.7e-8, Primary: "earth", Distance: 0.00257, PeriodYears: 0.0748},
			{Name: "mars", Mass: 3.2e-7, SemiMajorAxis: 1.524, Eccentricity: 0.093, PeriodYears: 1.881, InclinationDeg: 1.85},
		},
	},
	"earthmoon": {
		Name:        "earth and moon",
		Softening:   1e-8,
		BaseDt:      600,
		Speed:       2.0e5,
		MaxSubSteps: stepper.DefaultMaxSubSteps,
		Policy:      "heuristic",
		Bodies: []BodyConfig{
			{Name: "sun", Mass: 1.0},
			{Name: "earth", Mass: 3.0e-6, SemiMajorAxis: 1.0, PeriodYears: 1.0},
			{Name: "moon", Mass: 3.7e-8, Primary: "earth", Distance: 0.00257, PeriodYears: 0.0748},
		},
	},
	"binary": {
		Name:        "unequal binary",
		Softening:   1e-4,
		BaseDt:      stepper.DefaultBaseDt,
		Speed:       stepper.DefaultSpeed,
		MaxSubSteps: stepper.DefaultMaxSubSteps,
		Policy:      "accumulator",
		Bodies: []BodyConfig{
			{Name: "primary", Mass: 1.0},
			{Name: "companion", Mass: 0.2, SemiMajorAxis: 0.6, Eccentricity: 0.25, PeriodYears: 0.42, InclinationDeg: 12},
		},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
