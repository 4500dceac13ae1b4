package flappy

import "testing"

func TestHitsBoundary(t *testing.T) {
	const viewH = 600.0

	tests := []struct {
		name     string
		y        float64
		expected Collision
	}{
		{"middle", 300, CollisionNone},
		{"touching floor", 580, CollisionFloor},
		{"below floor", 700, CollisionFloor},
		{"touching ceiling", 20, CollisionCeiling},
		{"above ceiling", -5, CollisionCeiling},
		{"just clear of ceiling", 20.5, CollisionNone},
		{"just clear of floor", 579.5, CollisionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := Avatar{X: 100, Y: tc.y, Radius: 20}
			if got := HitsBoundary(a, viewH); got != tc.expected {
				t.Errorf("HitsBoundary(y=%v) = %v, expected %v", tc.y, got, tc.expected)
			}
		})
	}
}

func TestHitsObstacle(t *testing.T) {
	const width = 50.0
	o := Obstacle{X: 100, TopEdge: 200, BottomEdge: 350}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside gap", 125, 275, false},
		{"hits top barrier", 125, 210, true},
		{"hits bottom barrier", 125, 340, true},
		{"top edge exactly at barrier", 125, 220, false},
		{"bottom edge exactly at barrier", 125, 330, false},
		{"left of obstacle", 70, 50, false},
		{"touching left side", 80, 50, false},
		{"overlapping left side", 80.5, 50, true},
		{"right of obstacle", 171, 50, false},
		{"touching right side", 170, 50, false},
		{"overlapping right side", 169.5, 50, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := Avatar{X: tc.x, Y: tc.y, Radius: 20}
			if got := HitsObstacle(a, o, width); got != tc.expected {
				t.Errorf("HitsObstacle(x=%v, y=%v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestHitsObstacleUsesBoundingSquare(t *testing.T) {
	// The circle's corner region would miss the barrier corner, the
	// bounding square does not.
	o := Obstacle{X: 100, TopEdge: 200, BottomEdge: 350}
	a := Avatar{X: 85, Y: 215, Radius: 20}

	if !HitsObstacle(a, o, 50) {
		t.Error("bounding square approximation should report a hit at the corner")
	}
}

func TestDetectCollisionPrefersBoundary(t *testing.T) {
	a := Avatar{X: 100, Y: 590, Radius: 20}
	obstacles := []Obstacle{{X: 90, TopEdge: 0, BottomEdge: 150}}

	if got := detectCollision(a, obstacles, 50, 600); got != CollisionFloor {
		t.Errorf("detectCollision() = %v, expected floor", got)
	}
}

func TestCollisionString(t *testing.T) {
	names := map[Collision]string{
		CollisionNone:     "none",
		CollisionCeiling:  "ceiling",
		CollisionFloor:    "floor",
		CollisionObstacle: "obstacle",
	}
	for c, want := range names {
		if c.String() != want {
			t.Errorf("Collision(%d).String() = %q, expected %q", int(c), c.String(), want)
		}
	}
}
