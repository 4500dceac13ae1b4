package web

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Client message types.
const (
	msgFlap    = "flap"
	msgTap     = "tap"
	msgStart   = "start"
	msgRestart = "restart"
	msgResize  = "resize"
)

// Server message types.
const (
	msgFrame    = "frame"
	msgGameOver = "gameOver"
)

// clientMessage is any message a browser sends. Width and Height are only
// read for resize.
type clientMessage struct {
	Type   string  `json:"type"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// action maps a client message to a game action.
func (m clientMessage) action() core.Action {
	switch m.Type {
	case msgFlap, msgTap:
		return core.ActionJump
	case msgStart:
		return core.ActionStart
	case msgRestart:
		return core.ActionRestart
	}
	return core.ActionNone
}

// frameMessage carries one rendered frame.
type frameMessage struct {
	Type string `json:"type"`
	flappy.Snapshot
}

// gameOverMessage is sent once when a run ends, after its final frame.
type gameOverMessage struct {
	Type      string           `json:"type"`
	Score     int              `json:"score"`
	Ticks     int              `json:"ticks"`
	Collision flappy.Collision `json:"collision"`
}
