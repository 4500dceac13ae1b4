package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// Units are abstract world units per tick, matching a 60 FPS host.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:     0.6,
			FlapImpulse: -10,
			ScrollSpeed: 2,
		},
		Obstacles: FlappyObstacles{
			Width:        50,
			GapHeight:    150,
			SpawnSpacing: 300,
			MarginTop:    50,
			MarginBottom: 50,
		},
		Avatar: FlappyAvatar{
			Radius:    20,
			XFraction: 0.25,
		},
		Display: FlappyDisplay{
			CellWidth:  8,
			CellHeight: 16,
		},
	}
}
