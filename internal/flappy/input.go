package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// HandleAction applies a host-level action. Jump flaps while playing and
// starts a run otherwise, which is how a click on the game-over screen
// becomes a restart. Returns true if a new run began, so the host knows to
// resume its tick schedule.
func (g *Game) HandleAction(a core.Action) bool {
	switch a {
	case core.ActionJump:
		if g.IsActive() {
			g.Flap()
			return false
		}
		g.Restart()
		return true

	case core.ActionStart, core.ActionRestart:
		if g.IsActive() {
			return false
		}
		g.Restart()
		return true
	}

	return false
}
