package core

// RuntimeConfig contains host-level settings passed to a session.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay, 0 = time based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Normalize fills in zero or invalid fields with defaults.
func (c RuntimeConfig) Normalize() RuntimeConfig {
	def := DefaultConfig()
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.ScreenW < 0 {
		c.ScreenW = 0
	}
	if c.ScreenH < 0 {
		c.ScreenH = 0
	}
	return c
}
