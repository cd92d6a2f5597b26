// Package evdevtouch reads a Linux touchscreen directly through evdev and
// produces pointer events for a swipeaction.Listener. It is meant for
// handhelds where the display server does not forward touch input.
package evdevtouch

import (
	"time"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction"
	"github.com/holoplot/go-evdev"
)

// Axis is the raw range a device reports for one coordinate.
type Axis struct {
	Min, Max int32
}

func (a Axis) scale(raw int32, size float64) float64 {
	if a.Max <= a.Min {
		return 0
	}
	return float64(raw-a.Min) / float64(a.Max-a.Min) * size
}

// Decoder assembles kernel input events into pointer events. Events are
// buffered until SYN_REPORT closes a frame. Only the first contact (slot 0)
// is followed.
type Decoder struct {
	x, y          Axis
	width, height float64

	slot       int32
	rawX, rawY int32
	touching   bool // contact state last reported
	pressed    bool // contact state in the current frame
	moved      bool
}

// NewDecoder maps the device ranges x and y onto a screen of width x height.
func NewDecoder(x, y Axis, width, height int) *Decoder {
	return &Decoder{x: x, y: y, width: float64(width), height: float64(height)}
}

// Feed consumes one event. It returns a pointer event when the frame it
// completes changed the contact.
func (d *Decoder) Feed(ev evdev.InputEvent) (swipeaction.PointerEvent, bool) {
	switch ev.Type {
	case evdev.EV_ABS:
		d.abs(ev.Code, ev.Value)

	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH {
			d.pressed = ev.Value != 0
		}

	case evdev.EV_SYN:
		switch ev.Code {
		case evdev.SYN_REPORT:
			return d.report(eventTime(ev))
		case evdev.SYN_DROPPED:
			// The kernel buffer overflowed; the contact state is unknown.
			d.pressed, d.moved = false, false
			if d.touching {
				d.touching = false
				return d.pointer(swipeaction.PointerCancel, eventTime(ev)), true
			}
		}
	}

	return swipeaction.PointerEvent{}, false
}

func (d *Decoder) abs(code evdev.EvCode, value int32) {
	switch code {
	case evdev.ABS_MT_SLOT:
		d.slot = value
	case evdev.ABS_MT_TRACKING_ID:
		if d.slot == 0 {
			d.pressed = value >= 0
		}
	case evdev.ABS_MT_POSITION_X:
		if d.slot == 0 {
			d.rawX, d.moved = value, true
		}
	case evdev.ABS_MT_POSITION_Y:
		if d.slot == 0 {
			d.rawY, d.moved = value, true
		}
	case evdev.ABS_X:
		d.rawX, d.moved = value, true
	case evdev.ABS_Y:
		d.rawY, d.moved = value, true
	}
}

func (d *Decoder) report(t time.Time) (swipeaction.PointerEvent, bool) {
	moved := d.moved
	d.moved = false

	switch {
	case d.pressed && !d.touching:
		d.touching = true
		return d.pointer(swipeaction.PointerDown, t), true
	case d.pressed && moved:
		return d.pointer(swipeaction.PointerMove, t), true
	case !d.pressed && d.touching:
		d.touching = false
		return d.pointer(swipeaction.PointerUp, t), true
	}

	return swipeaction.PointerEvent{}, false
}

func (d *Decoder) pointer(action swipeaction.PointerAction, t time.Time) swipeaction.PointerEvent {
	return swipeaction.PointerEvent{
		Action: action,
		X:      d.x.scale(d.rawX, d.width),
		Y:      d.y.scale(d.rawY, d.height),
		Time:   t,
	}
}

func eventTime(ev evdev.InputEvent) time.Time {
	return time.Unix(int64(ev.Time.Sec), int64(ev.Time.Usec)*1000)
}
