package swipeaction

// View is the visual capability the engine drives on a host widget.
type View interface {
	TranslationX() float64
	SetTranslationX(x float64)
	Alpha() float64
	SetAlpha(alpha float64)
	LayoutExtent() int
	SetLayoutExtent(extent int)
}

// Background is a host widget revealed behind a row while it is swiped.
type Background interface {
	View
	SetVisible(visible bool)
	SetDimmed(dimmed bool)
	Width() int
}

// SwipeRow wraps one list row: the frame that is laid out in the list, the
// content drawn on top, and a background per direction. Each row owns its own
// background map; nothing is shared between rows.
type SwipeRow struct {
	frame       View
	content     View
	backgrounds map[Direction]Background
	visible     Direction
}

// NewSwipeRow creates a row. content may equal frame for rows without a
// separate content layer.
func NewSwipeRow(frame, content View) *SwipeRow {
	if content == nil {
		content = frame
	}
	return &SwipeRow{
		frame:       frame,
		content:     content,
		backgrounds: make(map[Direction]Background),
	}
}

func (r *SwipeRow) Frame() View   { return r.frame }
func (r *SwipeRow) Content() View { return r.content }

// SetContent swaps the content view, e.g. when the host rebinds a recycled row.
func (r *SwipeRow) SetContent(content View) {
	if content == nil {
		content = r.frame
	}
	r.content = content
}

// AddBackground registers bg for d, replacing any previous one. Directions
// outside AllDirections are ignored. The background starts hidden.
func (r *SwipeRow) AddBackground(d Direction, bg Background) *SwipeRow {
	if !d.Valid() || bg == nil {
		return r
	}
	if old, ok := r.backgrounds[d]; ok && old != bg {
		old.SetVisible(false)
	}
	bg.SetVisible(false)
	r.backgrounds[d] = bg
	return r
}

// Background returns the background registered for d.
func (r *SwipeRow) Background(d Direction) (Background, bool) {
	bg, ok := r.backgrounds[d]
	return bg, ok
}

// ShowBackground makes the background for d the only visible one. A direction
// without a registered background leaves the row untouched.
func (r *SwipeRow) ShowBackground(d Direction, dimmed bool) {
	bg, ok := r.backgrounds[d]
	if !ok {
		return
	}
	if r.visible != d {
		if prev, ok := r.backgrounds[r.visible]; ok {
			prev.SetVisible(false)
		}
	}
	bg.SetDimmed(dimmed)
	bg.SetVisible(true)
	r.visible = d
}

// VisibleBackground returns the direction whose background is showing.
func (r *SwipeRow) VisibleBackground() Direction {
	return r.visible
}

// HideBackgrounds hides every background.
func (r *SwipeRow) HideBackgrounds() {
	for _, d := range allDirections {
		if bg, ok := r.backgrounds[d]; ok {
			bg.SetVisible(false)
			bg.SetDimmed(false)
		}
	}
	r.visible = DirectionNeutral
}

// TranslateBackgrounds parks each background just past the edge it slides
// in from, so it follows the row instead of being fixed in place.
func (r *SwipeRow) TranslateBackgrounds() {
	for _, d := range allDirections {
		if bg, ok := r.backgrounds[d]; ok {
			bg.SetTranslationX(float64(-d.Sign() * bg.Width()))
		}
	}
}

// reset restores the row to its resting presentation.
func (r *SwipeRow) reset(extent int) {
	for _, v := range []View{r.frame, r.content} {
		v.SetAlpha(1)
		v.SetTranslationX(0)
	}
	r.frame.SetLayoutExtent(extent)
	r.HideBackgrounds()
}
