package core

import (
	"math"
	"testing"
)

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        Box{0, 0, 10, 10},
			b:        Box{5, 5, 15, 15},
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        Box{0, 0, 10, 10},
			b:        Box{15, 0, 25, 10},
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        Box{0, 0, 10, 10},
			b:        Box{0, 15, 10, 25},
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        Box{0, 0, 10, 10},
			b:        Box{10, 0, 20, 10},
			expected: false,
		},
		{
			name:     "fractional overlap",
			a:        Box{0, 0, 10, 10},
			b:        Box{9.5, 9.5, 20, 20},
			expected: true,
		},
		{
			name:     "infinite barrier above",
			a:        BoxAround(50, 40, 20),
			b:        Box{Left: 40, Top: math.Inf(-1), Right: 90, Bottom: 30},
			expected: true,
		},
		{
			name:     "infinite barrier clear",
			a:        BoxAround(50, 80, 20),
			b:        Box{Left: 40, Top: math.Inf(-1), Right: 90, Bottom: 60},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestBoxAround(t *testing.T) {
	b := BoxAround(100, 50, 20)

	if b.Left != 80 || b.Right != 120 || b.Top != 30 || b.Bottom != 70 {
		t.Errorf("BoxAround() = %+v, expected {80 30 120 70}", b)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{30, 50, -100, 50}, // degenerate range collapses to min
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestFinite(t *testing.T) {
	if !Finite(1.5) {
		t.Error("Finite(1.5) should be true")
	}
	if Finite(math.Inf(1)) || Finite(math.NaN()) {
		t.Error("Finite should reject Inf and NaN")
	}
}
