package world

import (
	"fmt"

	"github.com/san-kum/gravsim/internal/body"
	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/geom"
)

// NewEarthMoon builds the built-in Earth-Moon scenario: Earth at rest at
// the origin, the Moon at perigee distance with tangential velocity for a
// roughly periodic orbit.
func NewEarthMoon() *SpaceWorld {
	earth := body.MustNew("earth",
		geom.MustParse("5.965e24"),
		geom.Origin(),
		geom.ZeroVector(),
	).SetCosmetics(0.2, [3]float64{0.1, 0.1, 0.95})

	moon := body.MustNew("moon",
		geom.MustParse("7.35e22"),
		geom.NewPoint(geom.MustParse("0"), geom.MustParse("3.57e8"), geom.MustParse("0")),
		geom.NewVector(geom.MustParse("1022"), geom.MustParse("0"), geom.MustParse("0")),
	).SetCosmetics(0.12, [3]float64{0.25, 0.25, 0.25})

	return NewSpaceWorld("earth-moon", geom.MustParse("3.80e8"), earth, moon)
}

// FromConfig assembles a world from a scenario configuration. All decimal
// fields are validated here, synchronously, so a bad scenario never reaches
// the executor.
func FromConfig(cfg *config.Config) (*SpaceWorld, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	scaleBase, err := geom.Parse(cfg.ScaleBase)
	if err != nil {
		return nil, fmt.Errorf("scale_base: %w", err)
	}

	bodies := make([]*body.Body, 0, len(cfg.Bodies))
	for _, bc := range cfg.Bodies {
		mass, err := geom.Parse(bc.Mass)
		if err != nil {
			return nil, fmt.Errorf("body %q mass: %w", bc.Name, err)
		}
		center, err := geom.ParsePoint(bc.Center[0], bc.Center[1], bc.Center[2])
		if err != nil {
			return nil, fmt.Errorf("body %q center: %w", bc.Name, err)
		}
		velocity, err := geom.ParseVector(bc.Velocity[0], bc.Velocity[1], bc.Velocity[2])
		if err != nil {
			return nil, fmt.Errorf("body %q velocity: %w", bc.Name, err)
		}

		b, err := body.New(bc.Name, mass, center, velocity)
		if err != nil {
			return nil, err
		}
		b.SetCosmetics(bc.Radius, bc.Color)
		bodies = append(bodies, b)
	}

	return NewSpaceWorld(cfg.Scenario, scaleBase, bodies...), nil
}
