package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a pair of vertical barriers sharing one horizontal position.
// The passable gap spans TopEdge..BottomEdge.
type Obstacle struct {
	X          float64 // Left edge
	TopEdge    float64 // Bottom edge of the upper barrier
	BottomEdge float64 // Top edge of the lower barrier
}

// TopBarrier returns the collision box of the upper barrier.
func (o Obstacle) TopBarrier(width float64) core.Box {
	return core.Box{Left: o.X, Top: math.Inf(-1), Right: o.X + width, Bottom: o.TopEdge}
}

// BottomBarrier returns the collision box of the lower barrier.
func (o Obstacle) BottomBarrier(width float64) core.Box {
	return core.Box{Left: o.X, Top: o.BottomEdge, Right: o.X + width, Bottom: math.Inf(1)}
}

// ObstacleManager handles spawning, movement, and removal of obstacles.
// Obstacles are kept oldest first; new ones are only appended at the tail.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.FlappyObstacles
	speed     float64
}

// NewObstacleManager creates a new obstacle manager with the given RNG seed.
func NewObstacleManager(seed int64, cfg config.FlappyObstacles, speed float64) *ObstacleManager {
	om := &ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
		cfg:       cfg,
		speed:     speed,
	}
	om.Reset(seed)
	return om
}

// Reset clears all obstacles and reseeds the RNG.
func (om *ObstacleManager) Reset(seed int64) {
	om.obstacles = om.obstacles[:0]
	om.rng = rand.New(rand.NewSource(seed))
}

// Update advances every obstacle, removes the ones that scrolled fully off
// the left edge and spawns a new one at the right edge when there is room.
// Returns the number of obstacles removed this tick, which is the score
// earned.
func (om *ObstacleManager) Update(viewW, viewH float64) int {
	for i := range om.obstacles {
		om.obstacles[i].X -= om.speed
	}

	// Keep survivors in order
	survivors := om.obstacles[:0]
	removed := 0
	for _, o := range om.obstacles {
		if o.X+om.cfg.Width < 0 {
			removed++
			continue
		}
		survivors = append(survivors, o)
	}
	om.obstacles = survivors

	if om.needsSpawn(viewW) {
		om.spawn(viewW, viewH)
	}

	return removed
}

// needsSpawn reports whether the tail obstacle is far enough from the right edge.
func (om *ObstacleManager) needsSpawn(viewW float64) bool {
	if len(om.obstacles) == 0 {
		return true
	}
	tail := om.obstacles[len(om.obstacles)-1]
	return tail.X < viewW-om.cfg.SpawnSpacing
}

// spawn appends a new obstacle at the right edge of the view.
func (om *ObstacleManager) spawn(viewW, viewH float64) {
	minTop := om.cfg.MarginTop
	maxTop := viewH - om.cfg.GapHeight - om.cfg.MarginBottom
	if maxTop < minTop {
		maxTop = minTop // Edge case for very small views
	}

	// Gap positions snap to whole units so BottomEdge-TopEdge stays exactly
	// GapHeight under float arithmetic. Each whole offset is equally likely.
	steps := math.Floor(maxTop - minTop)
	offset := core.ClampF(math.Floor(om.rng.Float64()*(steps+1)), 0, steps)
	top := minTop + offset

	om.obstacles = append(om.obstacles, Obstacle{
		X:          viewW,
		TopEdge:    top,
		BottomEdge: top + om.cfg.GapHeight,
	})
}

// Obstacles returns the active obstacles, oldest first.
// The slice is only valid until the next Update or Reset.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// Width returns the shared obstacle width.
func (om *ObstacleManager) Width() float64 {
	return om.cfg.Width
}

// Len returns the number of active obstacles.
func (om *ObstacleManager) Len() int {
	return len(om.obstacles)
}
