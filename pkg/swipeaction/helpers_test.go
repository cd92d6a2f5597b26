package swipeaction

import (
	"testing"
	"time"
)

const (
	testRowWidth  = 400
	testRowHeight = 50
	testFrame     = 16 * time.Millisecond
)

type fakeView struct {
	x      float64
	alpha  float64
	extent int

	minExtent int
}

func newFakeView(extent int) *fakeView {
	return &fakeView{alpha: 1, extent: extent, minExtent: extent}
}

func (v *fakeView) TranslationX() float64     { return v.x }
func (v *fakeView) SetTranslationX(x float64) { v.x = x }
func (v *fakeView) Alpha() float64            { return v.alpha }
func (v *fakeView) SetAlpha(a float64)        { v.alpha = a }
func (v *fakeView) LayoutExtent() int         { return v.extent }
func (v *fakeView) SetLayoutExtent(e int) {
	v.extent = e
	if e < v.minExtent {
		v.minExtent = e
	}
}

type fakeBackground struct {
	fakeView
	visible bool
	dimmed  bool
	width   int
}

func newFakeBackground() *fakeBackground {
	return &fakeBackground{fakeView: *newFakeView(testRowHeight), width: testRowWidth}
}

func (b *fakeBackground) SetVisible(v bool) { b.visible = v }
func (b *fakeBackground) SetDimmed(d bool)  { b.dimmed = d }
func (b *fakeBackground) Width() int        { return b.width }

type testRow struct {
	row     *SwipeRow
	frame   *fakeView
	content *fakeView
	bgs     map[Direction]*fakeBackground
}

type fakeList struct {
	rows      []*testRow
	scrolling bool
}

func (l *fakeList) HitTest(x, y float64) (*SwipeRow, bool) {
	if x < 0 || x >= testRowWidth || y < 0 {
		return nil, false
	}
	i := int(y) / testRowHeight
	if i >= len(l.rows) {
		return nil, false
	}
	return l.rows[i].row, true
}

func (l *fakeList) PositionOf(row *SwipeRow) int {
	for i, r := range l.rows {
		if r.row == row {
			return i
		}
	}
	return -1
}

func (l *fakeList) Width() int        { return testRowWidth }
func (l *fakeList) RowHeight(int) int { return testRowHeight }
func (l *fakeList) IsScrolling() bool { return l.scrolling }

func (l *fakeList) rowY(position int) float64 {
	return float64(position*testRowHeight + testRowHeight/2)
}

type preAction struct {
	position  int
	direction Direction
}

type recorder struct {
	noActions  map[int]bool
	veto       map[int]bool
	preActions []preAction
	batches    []Batch
}

func newRecorder() *recorder {
	return &recorder{noActions: map[int]bool{}, veto: map[int]bool{}}
}

func (r *recorder) HasActions(position int) bool { return !r.noActions[position] }

func (r *recorder) ShouldDismiss(position int, d Direction) bool {
	r.preActions = append(r.preActions, preAction{position, d})
	return !r.veto[position]
}

func (r *recorder) OnSwipe(positions []int, directions []Direction) {
	r.batches = append(r.batches, Batch{Positions: positions, Directions: directions})
}

// harness wires a Listener to fakes through an Adapter.
type harness struct {
	t        *testing.T
	list     *fakeList
	app      *recorder
	adapter  *Adapter
	listener *Listener
	animator *FrameAnimator
	now      time.Time
}

func newHarness(t *testing.T, rows int) *harness {
	t.Helper()

	h := &harness{
		t:        t,
		list:     &fakeList{},
		app:      newRecorder(),
		animator: NewFrameAnimator(),
		now:      time.Unix(1700000000, 0),
	}

	h.adapter = NewAdapter(nil).SetSwipeActionListener(h.app)
	for _, d := range []Direction{DirectionNormalLeft, DirectionFarLeft, DirectionNormalRight, DirectionFarRight} {
		h.adapter.AddBackground(d, func(Direction) Background { return newFakeBackground() })
	}

	for i := 0; i < rows; i++ {
		frame := newFakeView(testRowHeight)
		content := newFakeView(testRowHeight)
		row := h.adapter.NewRow(frame, content)
		tr := &testRow{row: row, frame: frame, content: content, bgs: map[Direction]*fakeBackground{}}
		for _, d := range AllDirections() {
			if bg, ok := row.Background(d); ok {
				tr.bgs[d] = bg.(*fakeBackground)
			}
		}
		h.list.rows = append(h.list.rows, tr)
	}

	h.listener = h.adapter.Attach(h.list, h.animator)
	return h
}

func (h *harness) advance(d time.Duration) {
	h.now = h.now.Add(d)
}

func (h *harness) pointer(action PointerAction, x, y float64) bool {
	return h.listener.HandlePointer(PointerEvent{Action: action, X: x, Y: y, Time: h.now})
}

// drag presses on a row, moves by dx in steps one frame apart and holds the
// final position long enough for the release velocity to settle at zero.
func (h *harness) drag(position int, dx float64, steps int) (x, y float64) {
	x, y = 100, h.list.rowY(position)
	h.pointer(PointerDown, x, y)
	for i := 1; i <= steps; i++ {
		h.advance(testFrame)
		h.pointer(PointerMove, x+dx*float64(i)/float64(steps), y)
	}
	for i := 0; i < 8; i++ {
		h.advance(testFrame)
		h.pointer(PointerMove, x+dx, y)
	}
	return x + dx, y
}

// swipe is a drag followed by a release at the final position.
func (h *harness) swipe(position int, dx float64) {
	x, y := h.drag(position, dx, 6)
	h.advance(testFrame)
	h.pointer(PointerUp, x, y)
}

func (h *harness) tick() {
	h.advance(testFrame)
	h.animator.Tick(h.now)
}

// settle ticks until every animation has finished.
func (h *harness) settle() {
	h.t.Helper()
	for i := 0; h.animator.Active() > 0; i++ {
		if i > 1000 {
			h.t.Fatal("animations never settled")
		}
		h.tick()
	}
}
