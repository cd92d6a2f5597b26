package swipeaction

import (
	"log/slog"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/constants"
	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/internal"
	"go.uber.org/atomic"
)

// session is the state of one touch sequence, from pointer-down until its
// terminal animation has been scheduled.
type session struct {
	state    SessionState
	position int
	row      *SwipeRow
	view     View // the layer that follows the finger
	stale    bool // a batch was delivered mid-gesture, position may have shifted
}

type dismissPhase uint8

const (
	phaseSlidingOut dismissPhase = iota
	phaseShrinking
	phaseSlidingBack
	phaseResolved
)

// dismissal follows one committed row through its two animation phases.
type dismissal struct {
	phase     dismissPhase
	position  int
	direction Direction
	right     bool
	row       *SwipeRow
	view      View
	extent    int
}

// Listener turns pointer events on a list into swipe actions. Feed it every
// pointer event for the list and call Tick on its animator each frame.
// Apart from SetEnabled and ScrollStateChanged it must be used from one goroutine.
type Listener struct {
	list      List
	callbacks ActionCallbacks
	cfg       *GeometryConfig
	anims     rowAnimations

	coordinator *DismissCoordinator
	classifier  *Classifier
	velocity    *VelocityTracker

	session   *session
	busy      map[*SwipeRow]struct{} // committed, held until the batch is delivered
	returning map[*SwipeRow]struct{} // sliding back to rest, untracked

	enabled   atomic.Bool
	scrolling atomic.Bool

	logger *slog.Logger
}

// NewListener wires a listener for list. A nil cfg uses the defaults.
func NewListener(list List, callbacks ActionCallbacks, animator Animator, cfg *GeometryConfig) *Listener {
	if cfg == nil {
		cfg = NewGeometryConfig()
	}

	l := &Listener{
		list:       list,
		callbacks:  callbacks,
		cfg:        cfg,
		anims:      rowAnimations{animator: animator, cfg: cfg},
		classifier: NewClassifier(cfg),
		velocity:   NewVelocityTracker(),
		busy:       make(map[*SwipeRow]struct{}),
		returning:  make(map[*SwipeRow]struct{}),
		logger:     internal.GetInternalLogger(),
	}
	l.enabled.Store(true)

	l.coordinator = NewDismissCoordinator(func(b Batch) {
		l.callbacks.OnAction(b.Positions, b.Directions)
	})
	l.coordinator.OnFlushed(l.afterFlush)

	return l
}

// Config returns the live configuration read by every session.
func (l *Listener) Config() *GeometryConfig {
	return l.cfg
}

// SetEnabled pauses or resumes gesture recognition. While paused, new
// touches are not armed and moves of an armed touch are ignored.
func (l *Listener) SetEnabled(enabled bool) {
	l.enabled.Store(enabled)
}

// Enabled reports whether the listener accepts new gestures.
func (l *Listener) Enabled() bool {
	return l.enabled.Load()
}

// ScrollStateChanged is the host's scroll notification. While the list is
// being scrolled by touch, pointer-downs are ignored; running animations are
// not affected.
func (l *Listener) ScrollStateChanged(scrolling bool) {
	l.scrolling.Store(scrolling)
}

// State returns the state of the current touch sequence.
func (l *Listener) State() SessionState {
	if l.session == nil {
		return SessionIdle
	}
	return l.session.state
}

// InFlight returns the number of tracked row animations still running.
func (l *Listener) InFlight() int {
	return l.coordinator.Active()
}

// Pending returns the number of resolved rows waiting for the batch.
func (l *Listener) Pending() int {
	return l.coordinator.Pending()
}

// HandlePointer processes one pointer event. It returns true when the event
// was consumed by a swipe and should not be handled by the list itself.
func (l *Listener) HandlePointer(ev PointerEvent) bool {
	switch ev.Action {
	case PointerDown:
		return l.down(ev)
	case PointerMove:
		return l.move(ev)
	case PointerUp:
		return l.up(ev)
	case PointerCancel:
		return l.cancel()
	default:
		return false
	}
}

func (l *Listener) down(ev PointerEvent) bool {
	if l.session != nil {
		// A down without an up for the previous sequence: abandon it.
		l.cancel()
	}

	if !l.enabled.Load() || l.scrolling.Load() || l.list.IsScrolling() {
		return false
	}

	row, ok := l.list.HitTest(ev.X, ev.Y)
	if !ok || row == nil {
		return false
	}
	if l.animating(row) {
		l.logger.Debug("Ignoring touch on row with animation in flight")
		return false
	}

	position := l.list.PositionOf(row)
	if position < 0 || !l.callbacks.HasActions(position) {
		return false
	}

	view := row.Frame()
	if l.cfg.FixedBackgrounds() {
		view = row.Content()
	} else {
		row.TranslateBackgrounds()
	}

	l.classifier.Down(ev.X, ev.Y)
	l.velocity.Clear()
	l.velocity.Add(ev.X, ev.Y, ev.Time)

	l.session = &session{
		state:    SessionArmed,
		position: position,
		row:      row,
		view:     view,
	}
	l.logger.Debug("Swipe session armed", "position", position)

	return false
}

func (l *Listener) move(ev PointerEvent) bool {
	s := l.session
	if s == nil || !l.enabled.Load() {
		return false
	}

	l.velocity.Add(ev.X, ev.Y, ev.Time)

	wasFar := l.classifier.Far()
	update := l.classifier.Move(ev.X, ev.Y, l.list.Width())
	if update.Started {
		s.state = SessionSwiping
		l.logger.Debug("Swipe started", "position", s.position)
	}
	if !update.Swiping {
		return false
	}
	if far := l.classifier.Far(); far != wasFar {
		l.logger.Debug("Far zone changed", "position", s.position, "far", far)
	}

	s.row.ShowBackground(update.Direction, update.Dimmed)
	s.view.SetTranslationX(update.TranslationX)
	if l.cfg.FadeOut() {
		s.view.SetAlpha(update.Alpha)
	}

	return true
}

func (l *Listener) up(ev PointerEvent) bool {
	s := l.session
	if s == nil {
		return false
	}
	l.session = nil

	l.velocity.Add(ev.X, ev.Y, ev.Time)
	vx, vy := l.velocity.Velocity(constants.VelocityUnits)
	swiping := l.classifier.Swiping()

	s.state = SessionResolving
	res := l.classifier.Up(ev.X, vx, vy, l.list.Width())
	l.logger.Debug("Swipe resolved",
		"position", s.position, "commit", res.Commit, "right", res.DismissRight,
		"direction", res.Direction.String(), "stale", s.stale)

	if res.Commit && !s.stale {
		l.dismiss(s, res)
	} else {
		l.reappear(s)
	}
	s.state = SessionAnimating

	return swiping
}

func (l *Listener) cancel() bool {
	s := l.session
	if s == nil {
		return false
	}
	l.session = nil

	swiping := l.classifier.Swiping()
	s.state = SessionResolving
	l.classifier.Cancel()
	l.reappear(s)
	s.state = SessionAnimating

	return swiping
}

// reappear returns a cancelled row to rest. The row never reached the
// coordinator, so nothing is reported for it, but it is not re-armed until
// it is back at rest.
func (l *Listener) reappear(s *session) {
	row := s.row
	if s.view.TranslationX() == 0 && s.view.Alpha() == 1 {
		row.HideBackgrounds()
		return
	}

	l.returning[row] = struct{}{}
	l.anims.reappear(s.view, func() {
		delete(l.returning, row)
		row.HideBackgrounds()
	})
}

// animating reports whether row has a running animation of its own.
func (l *Listener) animating(row *SwipeRow) bool {
	if _, ok := l.busy[row]; ok {
		return true
	}
	_, ok := l.returning[row]
	return ok
}

func (l *Listener) dismiss(s *session, res Resolution) {
	extent := l.list.RowHeight(s.position)
	if extent <= 0 {
		extent = s.row.Frame().LayoutExtent()
	}

	d := &dismissal{
		phase:     phaseSlidingOut,
		position:  s.position,
		direction: res.Direction,
		right:     res.DismissRight,
		row:       s.row,
		view:      s.view,
		extent:    extent,
	}

	l.busy[s.row] = struct{}{}
	l.coordinator.Begin()
	l.anims.slideOut(d.view, d.right, l.list.Width(), func() { l.advance(d) })
}

// advance moves a dismissal to its next phase when an animation completes.
func (l *Listener) advance(d *dismissal) {
	switch d.phase {
	case phaseSlidingOut:
		if l.callbacks.OnPreAction(d.position, d.direction) {
			d.phase = phaseShrinking
			l.anims.shrink(d.row.Frame(), d.extent, func() { l.advance(d) })
			return
		}
		l.logger.Debug("Swipe vetoed", "position", d.position, "direction", d.direction.String())
		d.phase = phaseSlidingBack
		l.anims.reappear(d.view, func() { l.advance(d) })

	case phaseShrinking, phaseSlidingBack:
		d.phase = phaseResolved
		l.coordinator.Complete(PendingDismiss{
			Position:  d.position,
			Direction: d.direction,
			Row:       d.row,
			Extent:    d.extent,
		})

	default:
		panic(&InvariantViolationError{Op: "advance_dismissal", Err: ErrNoMatchingAnimation})
	}
}

func (l *Listener) afterFlush() {
	clear(l.busy)
	if l.session != nil {
		l.session.stale = true
	}
}
