// Package flappy implements the Flappy Bird-style simulation core.
// The player controls a circular avatar that falls under gravity and must
// pass through gaps in a stream of scrolling obstacles.
//
// The package has no notion of time or rendering: hosts call Step once per
// frame, forward input as Flap/Start/Restart and read the public state back.
package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// RunState is the run-level state machine.
type RunState int

const (
	StateIdle RunState = iota // Before the first start
	StatePlaying
	StateGameOver
)

// String returns the wire/log name of the state.
func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name.
func (s RunState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State     RunState
	Score     int
	Scored    int       // Points earned during this tick
	Collision Collision // Set on the tick that ended the run
}

// Ended reports whether this tick caused the Playing -> GameOver transition.
// Schedulers must stop issuing ticks once it is true.
func (r StepResult) Ended() bool {
	return r.Collision != CollisionNone
}

// Game owns the whole simulation state for one player.
type Game struct {
	cfg       config.FlappyConfig
	surface   Surface
	seed      int64
	state     RunState
	avatar    Avatar
	obstacles *ObstacleManager
	score     int
	tickCount int
}

// New creates a game in the Idle state. The avatar's horizontal position is
// taken from the surface width now and never changes afterwards.
func New(cfg config.FlappyConfig, surface Surface, seed int64) *Game {
	g := &Game{
		cfg:       cfg,
		surface:   surface,
		seed:      seed,
		obstacles: NewObstacleManager(seed, cfg.Obstacles, cfg.Physics.ScrollSpeed),
	}

	w, h := g.viewSize()
	g.avatar = Avatar{
		X:      w * cfg.Avatar.XFraction,
		Y:      h / 2,
		Radius: cfg.Avatar.Radius,
	}
	return g
}

// SetSeed changes the RNG seed used by the next Start or Restart.
func (g *Game) SetSeed(seed int64) {
	g.seed = seed
}

// Start begins a run from any state.
func (g *Game) Start() {
	g.reset()
}

// Restart begins a new run from any state. Identical to Start.
func (g *Game) Restart() {
	g.reset()
}

// reset puts the game into a fresh Playing state.
func (g *Game) reset() {
	_, h := g.viewSize()
	g.avatar.Y = h / 2
	g.avatar.Velocity = 0
	g.obstacles.Reset(g.seed)
	g.score = 0
	g.tickCount = 0
	g.state = StatePlaying
}

// Flap gives the avatar its upward impulse. No-op unless playing.
func (g *Game) Flap() {
	if g.state != StatePlaying {
		return
	}
	g.avatar.Flap(g.cfg.Physics.FlapImpulse)
}

// Step advances the simulation by one tick: physics, then obstacles, then
// collision. No-op unless playing.
func (g *Game) Step() StepResult {
	if g.state != StatePlaying {
		return StepResult{State: g.state, Score: g.score}
	}

	w, h := g.viewSize()
	g.tickCount++

	g.avatar.Integrate(g.cfg.Physics.Gravity)

	scored := g.obstacles.Update(w, h)
	g.score += scored

	collision := detectCollision(g.avatar, g.obstacles.Obstacles(), g.obstacles.Width(), h)
	if collision != CollisionNone {
		g.state = StateGameOver
	}

	return StepResult{
		State:     g.state,
		Score:     g.score,
		Scored:    scored,
		Collision: collision,
	}
}

// viewSize reads the surface, tolerating a nil or degenerate one.
func (g *Game) viewSize() (float64, float64) {
	if g.surface == nil {
		return 0, 0
	}
	w, h := g.surface.Size()
	return sanitizeDim(w), sanitizeDim(h)
}

// IsActive returns true while a run is in progress.
func (g *Game) IsActive() bool {
	return g.state == StatePlaying
}

// Score returns the current run's score.
func (g *Game) Score() int {
	return g.score
}

// State returns the run state.
func (g *Game) State() RunState {
	return g.state
}

// Avatar returns a copy of the avatar.
func (g *Game) Avatar() Avatar {
	return g.avatar
}

// Obstacles returns the active obstacles, oldest first.
// The slice is only valid until the next Step, Start or Restart.
func (g *Game) Obstacles() []Obstacle {
	return g.obstacles.Obstacles()
}

// ObstacleWidth returns the shared obstacle width.
func (g *Game) ObstacleWidth() float64 {
	return g.obstacles.Width()
}

// Ticks returns the number of ticks in the current run.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}
