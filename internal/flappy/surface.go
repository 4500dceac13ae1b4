package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Surface supplies the current viewport dimensions in world units.
// The game re-reads it on every tick and reset, so implementations may
// change size between calls.
type Surface interface {
	Size() (width, height float64)
}

// Viewport is a mutable Surface owned by a host. It is not safe for
// concurrent use; hosts resize it from the same goroutine that steps the game.
type Viewport struct {
	width  float64
	height float64
}

// NewViewport creates a viewport with the given size.
func NewViewport(width, height float64) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Size returns the current width and height.
func (v *Viewport) Size() (float64, float64) {
	return v.width, v.height
}

// Resize updates the viewport. Negative or non-finite values become zero.
func (v *Viewport) Resize(width, height float64) {
	v.width = sanitizeDim(width)
	v.height = sanitizeDim(height)
}

// sanitizeDim clamps a dimension to a finite, non-negative value.
func sanitizeDim(d float64) float64 {
	if !core.Finite(d) || d < 0 {
		return 0
	}
	return d
}
