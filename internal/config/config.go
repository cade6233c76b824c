package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravsim/internal/geom"
)

const (
	DefaultStepMillis = 30
	DefaultTimeWarp   = 1.0
)

// Config describes a scenario: the body set with its initial conditions
// plus the tick parameters. All physical quantities are decimal strings so
// scenario files carry the full precision the engine works at.
type Config struct {
	Scenario   string       `yaml:"scenario"`
	StepMillis int64        `yaml:"step_ms"`
	TimeWarp   float64      `yaml:"time_warp"`
	ScaleBase  string       `yaml:"scale_base"`
	Bodies     []BodyConfig `yaml:"bodies"`
}

type BodyConfig struct {
	Name     string     `yaml:"name"`
	Mass     string     `yaml:"mass"`
	Center   [3]string  `yaml:"center"`
	Velocity [3]string  `yaml:"velocity"`
	Radius   float64    `yaml:"radius"`
	Color    [3]float64 `yaml:"color"`
}

// DefaultConfig is the Earth-Moon scenario: a near-stationary primary and
// a satellite at perigee with tangential velocity.
func DefaultConfig() *Config {
	return &Config{
		Scenario:   "earth-moon",
		StepMillis: DefaultStepMillis,
		TimeWarp:   DefaultTimeWarp,
		ScaleBase:  "3.80e8",
		Bodies: []BodyConfig{
			{
				Name:     "earth",
				Mass:     "5.965e24",
				Center:   [3]string{"0", "0", "0"},
				Velocity: [3]string{"0", "0", "0"},
				Radius:   0.2,
				Color:    [3]float64{0.1, 0.1, 0.95},
			},
			{
				Name:     "moon",
				Mass:     "7.35e22",
				Center:   [3]string{"0", "3.57e8", "0"},
				Velocity: [3]string{"1022", "0", "0"},
				Radius:   0.12,
				Color:    [3]float64{0.25, 0.25, 0.25},
			},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
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

// Step is the simulated time per tick before time-warp.
func (c *Config) Step() time.Duration {
	return time.Duration(c.StepMillis) * time.Millisecond
}

// Validate rejects scenarios the engine could not run: non-positive step
// or warp, empty body sets, and any decimal field that does not parse to a
// finite value with positive mass.
func (c *Config) Validate() error {
	if c.StepMillis <= 0 {
		return fmt.Errorf("step_ms must be positive, got %d", c.StepMillis)
	}
	if c.TimeWarp <= 0 {
		return fmt.Errorf("time_warp must be positive, got %f", c.TimeWarp)
	}
	if len(c.Bodies) == 0 {
		return fmt.Errorf("scenario %q has no bodies", c.Scenario)
	}
	if _, err := geom.Parse(c.ScaleBase); err != nil {
		return fmt.Errorf("scale_base: %w", err)
	}

	for _, b := range c.Bodies {
		mass, err := geom.Parse(b.Mass)
		if err != nil {
			return fmt.Errorf("body %q mass: %w", b.Name, err)
		}
		if mass.Sign() <= 0 {
			return fmt.Errorf("body %q mass must be positive, got %s", b.Name, b.Mass)
		}
		for i := 0; i < 3; i++ {
			if _, err := geom.Parse(b.Center[i]); err != nil {
				return fmt.Errorf("body %q center: %w", b.Name, err)
			}
			if _, err := geom.Parse(b.Velocity[i]); err != nil {
				return fmt.Errorf("body %q velocity: %w", b.Name, err)
			}
		}
	}
	return nil
}
