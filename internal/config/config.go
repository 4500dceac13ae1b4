// Package config provides YAML/TOML-based game configuration loading for
// the flappy simulation and its terminal host.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// FlappyConfig contains all tunable parameters of the game.
type FlappyConfig struct {
	Physics   FlappyPhysics   `yaml:"physics" toml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles" toml:"obstacles"`
	Avatar    FlappyAvatar    `yaml:"avatar" toml:"avatar"`
	Display   FlappyDisplay   `yaml:"display" toml:"display"`
}

// FlappyPhysics defines per-tick physics parameters in world units.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity" toml:"gravity"`
	FlapImpulse float64 `yaml:"flap_impulse" toml:"flap_impulse"` // Negative = up
	ScrollSpeed float64 `yaml:"scroll_speed" toml:"scroll_speed"`
}

// FlappyObstacles defines obstacle geometry and spawn parameters.
type FlappyObstacles struct {
	Width        float64 `yaml:"width" toml:"width"`
	GapHeight    float64 `yaml:"gap_height" toml:"gap_height"`
	SpawnSpacing float64 `yaml:"spawn_spacing" toml:"spawn_spacing"`
	MarginTop    float64 `yaml:"margin_top" toml:"margin_top"`
	MarginBottom float64 `yaml:"margin_bottom" toml:"margin_bottom"`
}

// FlappyAvatar defines the player avatar.
type FlappyAvatar struct {
	Radius    float64 `yaml:"radius" toml:"radius"`
	XFraction float64 `yaml:"x_fraction" toml:"x_fraction"` // Horizontal position as a share of view width
}

// FlappyDisplay defines how many world units one terminal cell covers.
type FlappyDisplay struct {
	CellWidth  float64 `yaml:"cell_width" toml:"cell_width"`
	CellHeight float64 `yaml:"cell_height" toml:"cell_height"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
		}
	}

	floats := []struct {
		name  string
		value float64
	}{
		{"physics.gravity", c.Physics.Gravity},
		{"physics.flap_impulse", c.Physics.FlapImpulse},
		{"physics.scroll_speed", c.Physics.ScrollSpeed},
		{"obstacles.width", c.Obstacles.Width},
		{"obstacles.gap_height", c.Obstacles.GapHeight},
		{"obstacles.spawn_spacing", c.Obstacles.SpawnSpacing},
		{"obstacles.margin_top", c.Obstacles.MarginTop},
		{"obstacles.margin_bottom", c.Obstacles.MarginBottom},
		{"avatar.radius", c.Avatar.Radius},
		{"avatar.x_fraction", c.Avatar.XFraction},
		{"display.cell_width", c.Display.CellWidth},
		{"display.cell_height", c.Display.CellHeight},
	}
	for _, f := range floats {
		check(core.Finite(f.value), "%s must be finite, got %v", f.name, f.value)
	}

	check(c.Obstacles.Width > 0, "obstacles.width must be positive, got %v", c.Obstacles.Width)
	check(c.Obstacles.GapHeight > 0, "obstacles.gap_height must be positive, got %v", c.Obstacles.GapHeight)
	check(c.Obstacles.SpawnSpacing > c.Obstacles.Width,
		"obstacles.spawn_spacing (%v) must exceed obstacles.width (%v)", c.Obstacles.SpawnSpacing, c.Obstacles.Width)
	check(c.Obstacles.MarginTop >= 0, "obstacles.margin_top must not be negative, got %v", c.Obstacles.MarginTop)
	check(c.Obstacles.MarginBottom >= 0, "obstacles.margin_bottom must not be negative, got %v", c.Obstacles.MarginBottom)
	check(c.Physics.ScrollSpeed > 0, "physics.scroll_speed must be positive, got %v", c.Physics.ScrollSpeed)
	check(c.Avatar.Radius > 0, "avatar.radius must be positive, got %v", c.Avatar.Radius)
	check(c.Avatar.XFraction > 0 && c.Avatar.XFraction < 1,
		"avatar.x_fraction must be in (0, 1), got %v", c.Avatar.XFraction)
	check(c.Display.CellWidth > 0, "display.cell_width must be positive, got %v", c.Display.CellWidth)
	check(c.Display.CellHeight > 0, "display.cell_height must be positive, got %v", c.Display.CellHeight)

	return errors.Join(errs...)
}
