package swipeaction

// List is the host list widget the engine collaborates with.
type List interface {
	// HitTest returns the row under a screen position.
	HitTest(x, y float64) (*SwipeRow, bool)
	// PositionOf returns the current adapter position of row, or -1.
	PositionOf(row *SwipeRow) int
	// Width is the width rows are laid out at.
	Width() int
	// RowHeight is the layout extent of the row at position.
	RowHeight(position int) int
	// IsScrolling reports whether a scroll gesture owns the pointer.
	IsScrolling() bool
}

// ActionCallbacks receives the outcome of swipes.
type ActionCallbacks interface {
	// HasActions decides whether the row at position can be swiped at all.
	HasActions(position int) bool
	// OnPreAction is asked once per committed swipe, after the row has slid
	// out. Returning false slides the row back instead of removing it.
	OnPreAction(position int, direction Direction) bool
	// OnAction delivers one drained batch. positions are strictly descending,
	// so removing them in order keeps the remaining indices valid.
	OnAction(positions []int, directions []Direction)
}
