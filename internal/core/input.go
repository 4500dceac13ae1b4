package core

// Action represents a semantic game action, abstracted from physical key
// presses, clicks and network messages. Hosts translate raw device events
// into actions; the simulation decides what each action means in its
// current state.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up, W, click/tap - flap, or start/restart when not playing
	ActionStart          // Enter - begin a run from the start screen
	ActionRestart        // R key - restart after game over
	ActionHelp           // ? - toggle full help
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
