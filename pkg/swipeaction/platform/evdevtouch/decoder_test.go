package evdevtouch

import (
	"syscall"
	"testing"
	"time"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction"
	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(ms int64, typ evdev.EvType, code evdev.EvCode, value int32) evdev.InputEvent {
	return evdev.InputEvent{
		Time:  syscall.NsecToTimeval(ms * int64(time.Millisecond)),
		Type:  typ,
		Code:  code,
		Value: value,
	}
}

// feed runs events through d and returns every pointer event produced.
func feed(d *Decoder, events ...evdev.InputEvent) []swipeaction.PointerEvent {
	var out []swipeaction.PointerEvent
	for _, ev := range events {
		if pe, ok := d.Feed(ev); ok {
			out = append(out, pe)
		}
	}
	return out
}

func syn(ms int64) evdev.InputEvent {
	return event(ms, evdev.EV_SYN, evdev.SYN_REPORT, 0)
}

func TestDecoderMultiTouchSequence(t *testing.T) {
	d := NewDecoder(Axis{Min: 0, Max: 1000}, Axis{Min: 0, Max: 500}, 800, 400)

	got := feed(d,
		event(10, evdev.EV_ABS, evdev.ABS_MT_SLOT, 0),
		event(10, evdev.EV_ABS, evdev.ABS_MT_TRACKING_ID, 7),
		event(10, evdev.EV_ABS, evdev.ABS_MT_POSITION_X, 500),
		event(10, evdev.EV_ABS, evdev.ABS_MT_POSITION_Y, 250),
		event(10, evdev.EV_KEY, evdev.BTN_TOUCH, 1),
		syn(10),
		event(26, evdev.EV_ABS, evdev.ABS_MT_POSITION_X, 750),
		syn(26),
		syn(30),
		event(42, evdev.EV_ABS, evdev.ABS_MT_TRACKING_ID, -1),
		event(42, evdev.EV_KEY, evdev.BTN_TOUCH, 0),
		syn(42),
	)

	require.Len(t, got, 3)

	assert.Equal(t, swipeaction.PointerDown, got[0].Action)
	assert.InDelta(t, 400, got[0].X, 1e-9)
	assert.InDelta(t, 200, got[0].Y, 1e-9)
	assert.Equal(t, time.Unix(0, int64(10*time.Millisecond)), got[0].Time)

	assert.Equal(t, swipeaction.PointerMove, got[1].Action)
	assert.InDelta(t, 600, got[1].X, 1e-9)

	assert.Equal(t, swipeaction.PointerUp, got[2].Action)
	assert.InDelta(t, 600, got[2].X, 1e-9, "release keeps the last position")
}

func TestDecoderSingleTouchDevice(t *testing.T) {
	d := NewDecoder(Axis{Min: 100, Max: 4100}, Axis{Min: 100, Max: 4100}, 400, 400)

	got := feed(d,
		event(0, evdev.EV_ABS, evdev.ABS_X, 2100),
		event(0, evdev.EV_ABS, evdev.ABS_Y, 100),
		event(0, evdev.EV_KEY, evdev.BTN_TOUCH, 1),
		syn(0),
		event(5, evdev.EV_KEY, evdev.BTN_TOUCH, 0),
		syn(5),
	)

	require.Len(t, got, 2)
	assert.Equal(t, swipeaction.PointerDown, got[0].Action)
	assert.InDelta(t, 200, got[0].X, 1e-9)
	assert.InDelta(t, 0, got[0].Y, 1e-9)
	assert.Equal(t, swipeaction.PointerUp, got[1].Action)
}

func TestDecoderIgnoresOtherSlots(t *testing.T) {
	d := NewDecoder(Axis{Max: 100}, Axis{Max: 100}, 100, 100)

	got := feed(d,
		event(0, evdev.EV_ABS, evdev.ABS_MT_TRACKING_ID, 1),
		event(0, evdev.EV_ABS, evdev.ABS_MT_POSITION_X, 10),
		syn(0),
		event(5, evdev.EV_ABS, evdev.ABS_MT_SLOT, 1),
		event(5, evdev.EV_ABS, evdev.ABS_MT_TRACKING_ID, 2),
		event(5, evdev.EV_ABS, evdev.ABS_MT_POSITION_X, 90),
		syn(5),
		event(9, evdev.EV_ABS, evdev.ABS_MT_TRACKING_ID, -1),
		syn(9),
	)

	require.Len(t, got, 1, "second finger neither moves nor lifts the first")
	assert.Equal(t, swipeaction.PointerDown, got[0].Action)
	assert.InDelta(t, 10, got[0].X, 1e-9)
}

func TestDecoderDroppedEventsCancel(t *testing.T) {
	d := NewDecoder(Axis{Max: 100}, Axis{Max: 100}, 100, 100)

	feed(d, event(0, evdev.EV_KEY, evdev.BTN_TOUCH, 1), syn(0))
	got := feed(d, event(3, evdev.EV_SYN, evdev.SYN_DROPPED, 0))

	require.Len(t, got, 1)
	assert.Equal(t, swipeaction.PointerCancel, got[0].Action)

	assert.Empty(t, feed(d, syn(4)), "no release after the cancel")
}

func TestAxisScaleDegenerate(t *testing.T) {
	assert.Zero(t, Axis{Min: 5, Max: 5}.scale(5, 100))
}

func TestPickAxis(t *testing.T) {
	infos := map[evdev.EvCode]evdev.AbsInfo{
		evdev.ABS_X:             {Minimum: 0, Maximum: 255},
		evdev.ABS_MT_POSITION_X: {Minimum: 0, Maximum: 0},
	}

	a, ok := axis(infos, evdev.ABS_MT_POSITION_X, evdev.ABS_X)
	require.True(t, ok)
	assert.Equal(t, Axis{Min: 0, Max: 255}, a)

	_, ok = axis(infos, evdev.ABS_Y)
	assert.False(t, ok)
}
