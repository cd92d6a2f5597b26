package main

import (
	"math"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction"
)

// Terminal cells are mapped onto a pixel grid so the engine's pixel
// thresholds keep their usual feel.
const (
	cellWidth  = 8
	cellHeight = 16
)

type cellView struct {
	x      float64
	alpha  float64
	extent int
}

func newCellView() *cellView {
	return &cellView{alpha: 1, extent: cellHeight}
}

func (v *cellView) TranslationX() float64     { return v.x }
func (v *cellView) SetTranslationX(x float64) { v.x = x }
func (v *cellView) Alpha() float64            { return v.alpha }
func (v *cellView) SetAlpha(a float64)        { v.alpha = a }
func (v *cellView) LayoutExtent() int         { return v.extent }
func (v *cellView) SetLayoutExtent(e int)     { v.extent = e }

type cellBackground struct {
	cellView
	visible bool
	dimmed  bool
	list    *tuiList
}

func (b *cellBackground) SetVisible(v bool) { b.visible = v }
func (b *cellBackground) SetDimmed(d bool)  { b.dimmed = d }
func (b *cellBackground) Width() int        { return b.list.Width() }

type tuiRow struct {
	frame       *cellView
	content     *cellView
	backgrounds map[swipeaction.Direction]*cellBackground
	swipe       *swipeaction.SwipeRow
}

// lines is how many terminal lines the row occupies. A row collapses to
// nothing once it has shrunk below half a cell.
func (r *tuiRow) lines() int {
	if r.frame.extent < cellHeight/2 {
		return 0
	}
	return 1
}

// tuiList lays rows out one per terminal line starting at line top.
type tuiList struct {
	adapter *swipeaction.Adapter
	rows    []*tuiRow
	columns int
	top     int
}

func newTUIList(adapter *swipeaction.Adapter, columns, top int) *tuiList {
	l := &tuiList{adapter: adapter, columns: columns, top: top}
	for _, d := range swipeaction.AllDirections() {
		if d == swipeaction.DirectionNeutral {
			continue
		}
		adapter.AddBackground(d, func(swipeaction.Direction) swipeaction.Background {
			return &cellBackground{cellView: *newCellView(), list: l}
		})
	}
	return l
}

func (l *tuiList) append() {
	frame, content := newCellView(), newCellView()
	row := &tuiRow{
		frame:       frame,
		content:     content,
		backgrounds: make(map[swipeaction.Direction]*cellBackground),
		swipe:       l.adapter.NewRow(frame, content),
	}
	for _, d := range swipeaction.AllDirections() {
		if bg, ok := row.swipe.Background(d); ok {
			row.backgrounds[d] = bg.(*cellBackground)
		}
	}
	l.rows = append(l.rows, row)
}

func (l *tuiList) remove(position int) {
	if position >= 0 && position < len(l.rows) {
		l.rows = append(l.rows[:position], l.rows[position+1:]...)
	}
}

// pointer converts a terminal cell to the centre of its pixel box.
func (l *tuiList) pointer(column, line int) (x, y float64) {
	return float64(column*cellWidth + cellWidth/2), float64(line*cellHeight + cellHeight/2)
}

func (l *tuiList) HitTest(x, y float64) (*swipeaction.SwipeRow, bool) {
	if x < 0 || x >= float64(l.Width()) {
		return nil, false
	}
	line := int(math.Floor(y/cellHeight)) - l.top
	if line < 0 {
		return nil, false
	}
	for _, row := range l.rows {
		n := row.lines()
		if line < n {
			return row.swipe, true
		}
		line -= n
	}
	return nil, false
}

func (l *tuiList) PositionOf(row *swipeaction.SwipeRow) int {
	for i, r := range l.rows {
		if r.swipe == row {
			return i
		}
	}
	return -1
}

func (l *tuiList) Width() int        { return l.columns * cellWidth }
func (l *tuiList) RowHeight(int) int { return cellHeight }
func (l *tuiList) IsScrolling() bool { return false }
