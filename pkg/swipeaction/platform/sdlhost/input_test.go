package sdlhost

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func newTestTranslator() *Translator {
	return NewTranslator(Clock{epoch: time.Unix(100, 0)}, 800, 600)
}

func TestTranslatorMouseDrag(t *testing.T) {
	tr := newTestTranslator()

	_, ok := tr.Translate(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 10, Y: 10})
	assert.False(t, ok, "motion without a button held")

	ev, ok := tr.Translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 100, Y: 50, Timestamp: 20})
	require.True(t, ok)
	assert.Equal(t, swipeaction.PointerDown, ev.Action)
	assert.Equal(t, 100.0, ev.X)
	assert.Equal(t, 50.0, ev.Y)
	assert.Equal(t, time.Unix(100, 0).Add(20*time.Millisecond), ev.Time)

	ev, ok = tr.Translate(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 140, Y: 52, Timestamp: 36})
	require.True(t, ok)
	assert.Equal(t, swipeaction.PointerMove, ev.Action)

	ev, ok = tr.Translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT, X: 150, Y: 52, Timestamp: 52})
	require.True(t, ok)
	assert.Equal(t, swipeaction.PointerUp, ev.Action)
	assert.False(t, tr.Tracking())
}

func TestTranslatorIgnoresOtherButtonsAndSynthesisedMouse(t *testing.T) {
	tr := newTestTranslator()

	_, ok := tr.Translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_RIGHT})
	assert.False(t, ok)

	_, ok = tr.Translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, Which: touchMouseID})
	assert.False(t, ok)

	_, ok = tr.Translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT})
	assert.False(t, ok, "release without press")
}

func TestTranslatorFollowsFirstFinger(t *testing.T) {
	tr := newTestTranslator()

	ev, ok := tr.Translate(&sdl.TouchFingerEvent{Type: sdl.FINGERDOWN, FingerID: 1, X: 0.5, Y: 0.25})
	require.True(t, ok)
	assert.Equal(t, swipeaction.PointerDown, ev.Action)
	assert.InDelta(t, 400, ev.X, 1e-3)
	assert.InDelta(t, 150, ev.Y, 1e-3)

	_, ok = tr.Translate(&sdl.TouchFingerEvent{Type: sdl.FINGERDOWN, FingerID: 2, X: 0.1, Y: 0.1})
	assert.False(t, ok, "second finger")

	_, ok = tr.Translate(&sdl.TouchFingerEvent{Type: sdl.FINGERMOTION, FingerID: 2, X: 0.2, Y: 0.1})
	assert.False(t, ok)

	ev, ok = tr.Translate(&sdl.TouchFingerEvent{Type: sdl.FINGERMOTION, FingerID: 1, X: 0.75, Y: 0.25})
	require.True(t, ok)
	assert.Equal(t, swipeaction.PointerMove, ev.Action)
	assert.InDelta(t, 600, ev.X, 1e-3)

	_, ok = tr.Translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT})
	assert.False(t, ok, "mouse ignored while a finger is down")

	ev, ok = tr.Translate(&sdl.TouchFingerEvent{Type: sdl.FINGERUP, FingerID: 1, X: 0.75, Y: 0.25})
	require.True(t, ok)
	assert.Equal(t, swipeaction.PointerUp, ev.Action)
}

func TestTranslatorFocusLossCancels(t *testing.T) {
	tr := newTestTranslator()

	_, ok := tr.Translate(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_LOST})
	assert.False(t, ok, "nothing to cancel")

	tr.Translate(&sdl.TouchFingerEvent{Type: sdl.FINGERDOWN, FingerID: 1, X: 0.5, Y: 0.5})
	ev, ok := tr.Translate(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_LOST})
	require.True(t, ok)
	assert.Equal(t, swipeaction.PointerCancel, ev.Action)
	assert.False(t, tr.Tracking())
}

func TestTranslatorResize(t *testing.T) {
	tr := newTestTranslator()
	tr.Translate(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 1000, Data2: 500})

	ev, ok := tr.Translate(&sdl.TouchFingerEvent{Type: sdl.FINGERDOWN, FingerID: 3, X: 0.5, Y: 0.5})
	require.True(t, ok)
	assert.InDelta(t, 500, ev.X, 1e-3)
	assert.InDelta(t, 250, ev.Y, 1e-3)
}
