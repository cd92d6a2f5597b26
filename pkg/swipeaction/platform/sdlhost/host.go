package sdlhost

import (
	"context"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction"
	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Host owns the frame loop for one list in one window.
type Host struct {
	Window   *Window
	List     *List
	Listener *swipeaction.Listener
	Animator *swipeaction.FrameAnimator

	// Touches optionally carries pointer events from another input source,
	// such as an evdev touchscreen.
	Touches <-chan swipeaction.PointerEvent

	// OnFrame, if set, runs after input and animation for every frame.
	OnFrame func()

	clock      Clock
	translator *Translator
	painter    *Painter
}

// NewHost wires a list and its listener to window.
func NewHost(window *Window, list *List, listener *swipeaction.Listener, animator *swipeaction.FrameAnimator) *Host {
	clock := NewClock()
	w, h := window.Size()
	list.SetWidth(w)

	return &Host{
		Window:     window,
		List:       list,
		Listener:   listener,
		Animator:   animator,
		clock:      clock,
		translator: NewTranslator(clock, w, h),
		painter: &Painter{
			Renderer:    window.Renderer,
			Textures:    NewTextureCacheWithSize(window.Renderer, 64),
			Backgrounds: swipeaction.NewBackgroundRenderer(),
			Labels:      NewLabelCache(64),
		},
	}
}

// Run processes input, ticks animations and draws until the window is closed
// or ctx is cancelled.
func (h *Host) Run(ctx context.Context) error {
	defer h.painter.Textures.Destroy()

	logger := internal.GetInternalLogger()

	for {
		if ctx.Err() != nil {
			return nil
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					h.List.SetWidth(e.Data1)
				}
			}

			if pe, ok := h.translator.Translate(event); ok {
				h.Listener.HandlePointer(pe)
			}
		}

		h.drainTouches()

		h.Animator.Tick(h.clock.Now())

		if h.OnFrame != nil {
			h.OnFrame()
		}

		h.Window.Renderer.SetDrawColor(0, 0, 0, 255)
		h.Window.Renderer.Clear()
		if err := h.painter.Draw(h.List); err != nil {
			logger.Error("Failed to draw list", "error", err)
			return err
		}
		h.Window.Present()
	}
}

func (h *Host) drainTouches() {
	if h.Touches == nil {
		return
	}
	for {
		select {
		case pe, ok := <-h.Touches:
			if !ok {
				h.Touches = nil
				return
			}
			h.Listener.HandlePointer(pe)
		default:
			return
		}
	}
}
