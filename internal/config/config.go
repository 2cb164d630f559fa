// Package config describes simulation scenarios: which bodies exist,
// their orbital elements, and the timestep policy tuning.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitsim/internal/body"
	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/stepper"
)

// BodyConfig declares one body. Three shapes:
//
//   - central body: only name and mass (placed at the origin, at rest)
//   - orbiter: elements relative to the central reference mass
//   - satellite: primary names an earlier body; distance and period
//     are relative to that primary
type BodyConfig struct {
	Name string  `yaml:"name"`
	Mass float64 `yaml:"mass"` // reference masses (solar masses)

	SemiMajorAxis  float64 `yaml:"semi_major_axis,omitempty"` // AU
	Eccentricity   float64 `yaml:"eccentricity,omitempty"`
	PeriodYears    float64 `yaml:"period_years,omitempty"`
	InclinationDeg float64 `yaml:"inclination_deg,omitempty"`

	Primary  string  `yaml:"primary,omitempty"`
	Distance float64 `yaml:"distance,omitempty"` // AU from the primary
}

type Config struct {
	Name        string       `yaml:"name"`
	Softening   float64      `yaml:"softening"`
	BaseDt      float64      `yaml:"base_dt"`
	Speed       float64      `yaml:"speed"`
	MaxSubSteps int          `yaml:"max_substeps"`
	Policy      string       `yaml:"policy"` // "heuristic" or "accumulator"
	Bodies      []BodyConfig `yaml:"bodies"`
}

func DefaultConfig() *Config {
	cfg := GetPreset("inner")
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Softening:   1e-6,
		BaseDt:      stepper.DefaultBaseDt,
		Speed:       stepper.DefaultSpeed,
		MaxSubSteps: stepper.DefaultMaxSubSteps,
		Policy:      "heuristic",
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildSystem resolves the body list into an initialized body store.
// Declarations are processed in order, so a satellite's primary must
// appear before it; referencing a later or unknown body is an error,
// not something to fix up silently.
func (c *Config) BuildSystem() (*body.System, error) {
	bodies := make([]body.Body, 0, len(c.Bodies))

	for _, bc := range c.Bodies {
		b := body.Body{Name: bc.Name, Mass: bc.Mass}

		switch {
		case bc.Primary != "":
			sat := orbit.Satellite{
				Mass:        bc.Mass,
				Distance:    bc.Distance,
				PeriodYears: bc.PeriodYears,
				Inclination: bc.InclinationDeg * math.Pi / 180,
			}
			idx := -1
			for i := range bodies {
				if bodies[i].Name == bc.Primary {
					idx = i
					break
				}
			}
			if idx < 0 {
				return nil, fmt.Errorf("%w: %q wants primary %q", orbit.ErrUnknownPrimary, bc.Name, bc.Primary)
			}
			pos, vel, err := sat.StateVectors(bodies[idx].Position, bodies[idx].Velocity)
			if err != nil {
				return nil, fmt.Errorf("body %q: %w", bc.Name, err)
			}
			b.Position, b.Velocity = pos, vel

		case bc.SemiMajorAxis > 0:
			el := orbit.Elements{
				Mass:          bc.Mass,
				SemiMajorAxis: bc.SemiMajorAxis,
				Eccentricity:  bc.Eccentricity,
				PeriodYears:   bc.PeriodYears,
				Inclination:   bc.InclinationDeg * math.Pi / 180,
			}
			pos, vel, err := el.StateVectors()
			if err != nil {
				return nil, fmt.Errorf("body %q: %w", bc.Name, err)
			}
			b.Position, b.Velocity = pos, vel

		default:
			// central body, placed at the origin at rest
			if bc.Mass <= 0 {
				return nil, fmt.Errorf("body %q: %w: got %g", bc.Name, orbit.ErrNonPositiveMass, bc.Mass)
			}
		}

		bodies = append(bodies, b)
	}

	return body.NewSystem(bodies), nil
}

// BuildPolicy returns the configured frame-stepping policy.
func (c *Config) BuildPolicy() (stepper.Policy, error) {
	switch c.Policy {
	case "", "heuristic":
		return &stepper.Heuristic{BaseDt: c.BaseDt, Speed: c.Speed, MaxSubSteps: c.MaxSubSteps}, nil
	case "accumulator":
		return &stepper.Accumulator{Dt: c.BaseDt, Speed: c.Speed, MaxSubSteps: c.MaxSubSteps}, nil
	default:
		return nil, fmt.Errorf("config: unknown stepper policy %q", c.Policy)
	}
}
