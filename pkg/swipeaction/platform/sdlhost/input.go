package sdlhost

import (
	"math"
	"time"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction"
	"github.com/veandco/go-sdl2/sdl"
)

// touchMouseID is SDL_TOUCH_MOUSEID, the device id SDL gives mouse events it
// synthesises from touches. Those are dropped in favour of the finger events.
const touchMouseID = math.MaxUint32

// Clock maps SDL millisecond ticks onto wall-clock time.
type Clock struct {
	epoch time.Time
}

// NewClock anchors SDL tick zero at the current time. Call it right after sdl.Init.
func NewClock() Clock {
	return Clock{epoch: time.Now().Add(-time.Duration(sdl.GetTicks64()) * time.Millisecond)}
}

// At converts an SDL timestamp in milliseconds.
func (c Clock) At(ticks uint64) time.Time {
	return c.epoch.Add(time.Duration(ticks) * time.Millisecond)
}

// Now returns the current SDL tick as a time.
func (c Clock) Now() time.Time {
	return c.At(sdl.GetTicks64())
}

// Translator turns SDL input into pointer events. The left mouse button and
// the first finger down are followed; further fingers are ignored until that
// finger lifts.
type Translator struct {
	clock         Clock
	width, height float64

	mouseDown  bool
	fingerDown bool
	fingerID   sdl.FingerID
}

// NewTranslator creates a translator for a window of the given size.
func NewTranslator(clock Clock, width, height int32) *Translator {
	t := &Translator{clock: clock}
	t.Resize(width, height)
	return t
}

// Resize updates the size used to scale normalised finger coordinates.
func (t *Translator) Resize(width, height int32) {
	t.width, t.height = float64(width), float64(height)
}

// Tracking reports whether a pointer is currently held down.
func (t *Translator) Tracking() bool {
	return t.mouseDown || t.fingerDown
}

// Translate converts event. The second result is false for events that do
// not map to a pointer sample.
func (t *Translator) Translate(event sdl.Event) (swipeaction.PointerEvent, bool) {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if e.Which == touchMouseID || e.Button != sdl.BUTTON_LEFT || t.fingerDown {
			return swipeaction.PointerEvent{}, false
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			t.mouseDown = true
			return t.pointer(swipeaction.PointerDown, float64(e.X), float64(e.Y), e.Timestamp), true
		}
		if !t.mouseDown {
			return swipeaction.PointerEvent{}, false
		}
		t.mouseDown = false
		return t.pointer(swipeaction.PointerUp, float64(e.X), float64(e.Y), e.Timestamp), true

	case *sdl.MouseMotionEvent:
		if e.Which == touchMouseID || !t.mouseDown {
			return swipeaction.PointerEvent{}, false
		}
		return t.pointer(swipeaction.PointerMove, float64(e.X), float64(e.Y), e.Timestamp), true

	case *sdl.TouchFingerEvent:
		return t.translateFinger(e)

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			t.Resize(e.Data1, e.Data2)
		case sdl.WINDOWEVENT_FOCUS_LOST:
			if t.Tracking() {
				t.mouseDown, t.fingerDown = false, false
				return t.pointer(swipeaction.PointerCancel, 0, 0, e.Timestamp), true
			}
		}
	}

	return swipeaction.PointerEvent{}, false
}

func (t *Translator) translateFinger(e *sdl.TouchFingerEvent) (swipeaction.PointerEvent, bool) {
	x, y := float64(e.X)*t.width, float64(e.Y)*t.height

	switch e.Type {
	case sdl.FINGERDOWN:
		if t.fingerDown || t.mouseDown {
			return swipeaction.PointerEvent{}, false
		}
		t.fingerDown = true
		t.fingerID = e.FingerID
		return t.pointer(swipeaction.PointerDown, x, y, e.Timestamp), true

	case sdl.FINGERMOTION:
		if !t.fingerDown || e.FingerID != t.fingerID {
			return swipeaction.PointerEvent{}, false
		}
		return t.pointer(swipeaction.PointerMove, x, y, e.Timestamp), true

	case sdl.FINGERUP:
		if !t.fingerDown || e.FingerID != t.fingerID {
			return swipeaction.PointerEvent{}, false
		}
		t.fingerDown = false
		return t.pointer(swipeaction.PointerUp, x, y, e.Timestamp), true
	}

	return swipeaction.PointerEvent{}, false
}

func (t *Translator) pointer(action swipeaction.PointerAction, x, y float64, ts uint32) swipeaction.PointerEvent {
	return swipeaction.PointerEvent{Action: action, X: x, Y: y, Time: t.clock.At(uint64(ts))}
}
