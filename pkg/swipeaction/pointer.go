package swipeaction

import "time"

// PointerAction is the phase of a pointer sample.
type PointerAction uint8

const (
	PointerNone PointerAction = iota
	PointerDown
	PointerMove
	PointerUp
	PointerCancel
)

// String returns a string representation of the action.
func (a PointerAction) String() string {
	switch a {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "none"
	}
}

// PointerEvent is one sample from a single pointer, in screen coordinates.
type PointerEvent struct {
	Action PointerAction
	X, Y   float64
	Time   time.Time
}

// SessionState is where the current touch sequence is in its lifecycle.
type SessionState uint8

const (
	SessionIdle SessionState = iota
	SessionArmed
	SessionSwiping
	SessionResolving
	SessionAnimating
)

// String returns a string representation of the state.
func (s SessionState) String() string {
	switch s {
	case SessionArmed:
		return "armed"
	case SessionSwiping:
		return "swiping"
	case SessionResolving:
		return "resolving"
	case SessionAnimating:
		return "animating"
	default:
		return "idle"
	}
}
