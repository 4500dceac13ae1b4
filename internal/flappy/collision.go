package flappy

// Collision identifies what ended a run.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionCeiling
	CollisionFloor
	CollisionObstacle
)

// String returns a short name for logs and wire messages.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionCeiling:
		return "ceiling"
	case CollisionFloor:
		return "floor"
	case CollisionObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// MarshalText encodes the collision kind by name.
func (c Collision) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// HitsBoundary checks the avatar against the top and bottom of the view.
// Touching either edge counts as a collision.
func HitsBoundary(a Avatar, viewH float64) Collision {
	if a.Y+a.Radius >= viewH {
		return CollisionFloor
	}
	if a.Y-a.Radius <= 0 {
		return CollisionCeiling
	}
	return CollisionNone
}

// HitsObstacle checks the avatar's bounding square against both barriers of
// an obstacle. This is a box approximation of the circle.
func HitsObstacle(a Avatar, o Obstacle, width float64) bool {
	bounds := a.Bounds()
	return bounds.Intersects(o.TopBarrier(width)) || bounds.Intersects(o.BottomBarrier(width))
}

// detectCollision runs the boundary check first, then every obstacle.
func detectCollision(a Avatar, obstacles []Obstacle, width, viewH float64) Collision {
	if c := HitsBoundary(a, viewH); c != CollisionNone {
		return c
	}
	for _, o := range obstacles {
		if HitsObstacle(a, o, width) {
			return CollisionObstacle
		}
	}
	return CollisionNone
}
