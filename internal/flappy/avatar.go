package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Avatar is the player-controlled circle. X is fixed once the game is
// constructed; the world scrolls past it.
type Avatar struct {
	X        float64
	Y        float64
	Velocity float64 // Vertical, positive = down
	Radius   float64
}

// Integrate applies one tick of gravity.
func (a *Avatar) Integrate(gravity float64) {
	a.Velocity += gravity
	a.Y += a.Velocity
}

// Flap replaces the current velocity with the impulse. It is not additive:
// the result is the same regardless of how fast the avatar was falling.
func (a *Avatar) Flap(impulse float64) {
	a.Velocity = impulse
}

// Bounds returns the avatar's bounding square used for collision.
func (a Avatar) Bounds() core.Box {
	return core.BoxAround(a.X, a.Y, a.Radius)
}
