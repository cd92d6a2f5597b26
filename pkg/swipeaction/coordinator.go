package swipeaction

import (
	"sort"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/internal"
)

// PendingDismiss is one resolved row waiting for the batch to drain.
type PendingDismiss struct {
	Position  int
	Direction Direction
	Row       *SwipeRow
	Extent    int // layout extent to restore once the batch is delivered
}

// Batch is what the host receives once every in-flight animation has
// finished. Positions are strictly descending and Directions is parallel to it.
type Batch struct {
	Positions  []int
	Directions []Direction
}

// DismissCoordinator joins any number of independent row animations into
// a single ordered callback. It is a counted barrier: each Begin must be
// matched by exactly one Complete, and the batch flushes when the count drains.
// It is not safe for concurrent use; it lives on the UI thread.
type DismissCoordinator struct {
	pending []PendingDismiss
	active  int

	onFlush    func(Batch)
	afterFlush []func()
}

// NewDismissCoordinator creates a coordinator that delivers batches to onFlush.
func NewDismissCoordinator(onFlush func(Batch)) *DismissCoordinator {
	return &DismissCoordinator{onFlush: onFlush}
}

// OnFlushed registers a hook run after every flush, once rows are reset.
func (c *DismissCoordinator) OnFlushed(fn func()) {
	c.afterFlush = append(c.afterFlush, fn)
}

// Begin registers an animation that is about to start.
func (c *DismissCoordinator) Begin() {
	c.active++
}

// Complete records entry and releases one in-flight animation. When it was
// the last one, the batch is flushed. Completing with nothing in flight is a
// sequencing defect and panics with an *InvariantViolationError.
func (c *DismissCoordinator) Complete(entry PendingDismiss) {
	if c.active <= 0 {
		panic(&InvariantViolationError{Op: "complete_animation", Err: ErrNoMatchingAnimation})
	}

	c.pending = append(c.pending, entry)
	c.active--

	if c.active == 0 {
		c.flush()
	}
}

// Active returns the number of animations still in flight.
func (c *DismissCoordinator) Active() int {
	return c.active
}

// Pending returns the number of entries waiting for the batch.
func (c *DismissCoordinator) Pending() int {
	return len(c.pending)
}

// Holds reports whether row belongs to the batch being collected.
func (c *DismissCoordinator) Holds(row *SwipeRow) bool {
	for _, p := range c.pending {
		if p.Row == row {
			return true
		}
	}
	return false
}

func (c *DismissCoordinator) flush() {
	entries := c.pending
	c.pending = nil

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Position > entries[j].Position
	})

	batch := Batch{
		Positions:  make([]int, len(entries)),
		Directions: make([]Direction, len(entries)),
	}
	for i, e := range entries {
		batch.Positions[i] = e.Position
		batch.Directions[i] = e.Direction
	}

	internal.GetInternalLogger().Debug("Flushing swipe batch", "size", len(entries), "positions", batch.Positions)

	if c.onFlush != nil {
		c.onFlush(batch)
	}

	for _, e := range entries {
		if e.Row != nil {
			e.Row.reset(e.Extent)
		}
	}

	for _, fn := range c.afterFlush {
		fn()
	}
}
