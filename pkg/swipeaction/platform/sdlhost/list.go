package sdlhost

import (
	"math"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction"
	"github.com/veandco/go-sdl2/sdl"
)

const DefaultRowHeight = 64

// Layer is a View whose state the list reads back when drawing.
type Layer struct {
	x      float64
	alpha  float64
	extent int
}

func newLayer(extent int) *Layer {
	return &Layer{alpha: 1, extent: extent}
}

func (l *Layer) TranslationX() float64     { return l.x }
func (l *Layer) SetTranslationX(x float64) { l.x = x }
func (l *Layer) Alpha() float64            { return l.alpha }
func (l *Layer) SetAlpha(a float64)        { l.alpha = a }
func (l *Layer) LayoutExtent() int         { return l.extent }
func (l *Layer) SetLayoutExtent(e int)     { l.extent = e }

// BackgroundLayer is the zone background for one row and direction.
type BackgroundLayer struct {
	Layer
	direction swipeaction.Direction
	visible   bool
	dimmed    bool
	list      *List
}

func (b *BackgroundLayer) SetVisible(v bool) { b.visible = v }
func (b *BackgroundLayer) SetDimmed(d bool)  { b.dimmed = d }
func (b *BackgroundLayer) Width() int        { return int(b.list.width) }

// Row is one labelled list row.
type Row struct {
	Label string

	frame       *Layer
	content     *Layer
	backgrounds map[swipeaction.Direction]*BackgroundLayer
	swipe       *swipeaction.SwipeRow
}

// List is a vertical list of rows filling the window width. It implements
// swipeaction.List.
type List struct {
	adapter   *swipeaction.Adapter
	rows      []*Row
	width     int32
	top       int32
	rowHeight int
	scrolling bool
}

// NewList creates an empty list whose rows get a background for every side
// and zone.
func NewList(adapter *swipeaction.Adapter, width int32, rowHeight int) *List {
	if rowHeight <= 0 {
		rowHeight = DefaultRowHeight
	}
	l := &List{adapter: adapter, width: width, rowHeight: rowHeight}

	for _, d := range swipeaction.AllDirections() {
		if d == swipeaction.DirectionNeutral {
			continue
		}
		adapter.AddBackground(d, func(d swipeaction.Direction) swipeaction.Background {
			return &BackgroundLayer{Layer: *newLayer(rowHeight), direction: d, list: l}
		})
	}
	return l
}

// Append adds a row at the bottom of the list.
func (l *List) Append(label string) *Row {
	frame, content := newLayer(l.rowHeight), newLayer(l.rowHeight)
	row := &Row{
		Label:       label,
		frame:       frame,
		content:     content,
		backgrounds: make(map[swipeaction.Direction]*BackgroundLayer),
		swipe:       l.adapter.NewRow(frame, content),
	}
	for _, d := range swipeaction.AllDirections() {
		if bg, ok := row.swipe.Background(d); ok {
			row.backgrounds[d] = bg.(*BackgroundLayer)
		}
	}
	l.rows = append(l.rows, row)
	return row
}

// Remove deletes the row at position.
func (l *List) Remove(position int) {
	if position < 0 || position >= len(l.rows) {
		return
	}
	l.rows = append(l.rows[:position], l.rows[position+1:]...)
}

// Row returns the row at position.
func (l *List) Row(position int) *Row {
	return l.rows[position]
}

func (l *List) Len() int { return len(l.rows) }

// SetWidth follows window resizes.
func (l *List) SetWidth(width int32) { l.width = width }

// SetScrolling marks the list as being scrolled.
func (l *List) SetScrolling(scrolling bool) { l.scrolling = scrolling }

func (l *List) HitTest(x, y float64) (*swipeaction.SwipeRow, bool) {
	if x < 0 || x >= float64(l.width) {
		return nil, false
	}
	top := float64(l.top)
	for _, row := range l.rows {
		bottom := top + float64(row.frame.extent)
		if y >= top && y < bottom {
			return row.swipe, true
		}
		top = bottom
	}
	return nil, false
}

func (l *List) PositionOf(row *swipeaction.SwipeRow) int {
	for i, r := range l.rows {
		if r.swipe == row {
			return i
		}
	}
	return -1
}

func (l *List) Width() int        { return int(l.width) }
func (l *List) RowHeight(int) int { return l.rowHeight }
func (l *List) IsScrolling() bool { return l.scrolling }

// Painter draws a List with an SDL renderer.
type Painter struct {
	Renderer    *sdl.Renderer
	Textures    *TextureCache
	Backgrounds *swipeaction.BackgroundRenderer
	Labels      *LabelCache
}

// Draw paints every row top to bottom. Zone backgrounds are rendered at the
// full row height and clipped while a row collapses, so a shrinking row
// reuses one texture.
func (p *Painter) Draw(l *List) error {
	theme := swipeaction.CurrentTheme()
	y := l.top

	for _, row := range l.rows {
		h := int32(row.frame.extent)
		if h <= 0 {
			continue
		}
		frameX := int32(math.Round(row.frame.x))

		if bg, ok := row.backgrounds[row.swipe.VisibleBackground()]; ok && bg.visible {
			img, err := p.Backgrounds.Render(bg.direction, int(l.width), l.rowHeight, bg.dimmed)
			if err != nil {
				return err
			}
			tex, err := p.Textures.Get(img)
			if err != nil {
				return err
			}
			src := clip(l.width, int32(l.rowHeight), h)
			dst := &sdl.Rect{X: frameX + int32(math.Round(bg.x)), Y: y, W: l.width, H: src.H}
			p.Renderer.Copy(tex, src, dst)
		}

		x := frameX + int32(math.Round(row.content.x))
		alpha := uint8(math.Round(255 * row.frame.alpha * row.content.alpha))

		p.Renderer.SetDrawColor(theme.RowColor.R, theme.RowColor.G, theme.RowColor.B, alpha)
		p.Renderer.FillRect(&sdl.Rect{X: x, Y: y, W: l.width, H: h})

		if err := p.drawLabel(row.Label, x, y, h, alpha, theme); err != nil {
			return err
		}

		y += h
	}

	return nil
}

func (p *Painter) drawLabel(text string, x, y, h int32, alpha uint8, theme swipeaction.Theme) error {
	img := p.Labels.Render(text, theme.TextColor)
	lw, lh := int32(img.Bounds().Dx())*labelScale, int32(img.Bounds().Dy())*labelScale
	if lh > h {
		return nil
	}

	tex, err := p.Textures.Get(img)
	if err != nil {
		return err
	}
	tex.SetAlphaMod(alpha)
	p.Renderer.Copy(tex, nil, &sdl.Rect{X: x + 16, Y: y + (h-lh)/2, W: lw, H: lh})
	return nil
}

// clip returns the vertically centred part of a full-height image that fits
// in h.
func clip(width, full, h int32) *sdl.Rect {
	if h >= full {
		return &sdl.Rect{W: width, H: full}
	}
	return &sdl.Rect{Y: (full - h) / 2, W: width, H: h}
}
