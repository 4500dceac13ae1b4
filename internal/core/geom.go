// Package core provides fundamental types and utilities shared by the
// simulation and its hosts. It contains no external dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle in screen cells.
// Used by hosts for laying out overlays on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in world units.
// Edges may be infinite, which is how open-ended barriers are expressed.
type Box struct {
	Left, Top     float64
	Right, Bottom float64
}

// BoxAround returns the bounding square of a circle.
func BoxAround(cx, cy, radius float64) Box {
	return Box{
		Left:   cx - radius,
		Top:    cy - radius,
		Right:  cx + radius,
		Bottom: cy + radius,
	}
}

// Intersects returns true if the two boxes overlap.
// Touching edges do not count as an overlap.
func (b Box) Intersects(other Box) bool {
	if b.Left >= other.Right || other.Left >= b.Right {
		return false
	}
	if b.Top >= other.Bottom || other.Top >= b.Bottom {
		return false
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
// If max < min the range is degenerate and min wins.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}

// Finite reports whether f is neither NaN nor infinite.
func Finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
