// Package sdlhost runs a swipe list inside an SDL window. It feeds mouse and
// touch input to a swipeaction.Listener, ticks the animator from SDL's clock
// and draws rows with rendered zone backgrounds.
package sdlhost

import (
	"os"
	"strconv"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction"
	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/constants"
	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// WindowOptions selects how the window is shown. The zero value opens a
// borderless display-sized window on a device and a resizable one in dev mode.
type WindowOptions struct {
	Fullscreen bool // SDL_WINDOW_FULLSCREEN_DESKTOP, wins over Resizable
	Resizable  bool
}

func (o WindowOptions) flags() uint32 {
	var flags uint32 = sdl.WINDOW_SHOWN

	switch {
	case o.Fullscreen:
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	case o.Resizable || constants.IsDevMode():
		flags |= sdl.WINDOW_RESIZABLE
	default:
		flags |= sdl.WINDOW_BORDERLESS
	}

	return flags
}

// Window wraps the SDL window and renderer.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Title    string

	hasVSync        bool
	lastPresentTime uint64
}

// OpenWindow initialises SDL video and opens a window. On a device the window
// takes the display size; in dev mode it opens at WINDOW_WIDTH x WINDOW_HEIGHT
// (default 1024x768).
func OpenWindow(title string, winOpts WindowOptions) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, swipeaction.NewInfrastructureError("sdl_init", err)
	}

	var width, height int32 = 1024, 768
	x, y := int32(0), int32(0)

	if constants.IsDevMode() {
		x, y = 50, 50
		width = envSize(constants.WindowWidthEnvVar, width)
		height = envSize(constants.WindowHeightEnvVar, height)
	} else if mode, err := sdl.GetCurrentDisplayMode(0); err == nil {
		width, height = mode.W, mode.H
	} else {
		internal.GetInternalLogger().Error("Failed to get display mode", "error", err)
	}

	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, winOpts.flags())
	if err != nil {
		sdl.Quit()
		return nil, swipeaction.NewInfrastructureError("create_window", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, swipeaction.NewInfrastructureError("create_renderer", err)
	}

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}, nil
}

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		internal.GetInternalLogger().Warn("Invalid window size; using default", "name", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (w *Window) Size() (int32, int32) {
	return w.Window.GetSize()
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available.
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		frame := uint64(constants.FrameInterval.Milliseconds())
		if elapsed := now - w.lastPresentTime; elapsed < frame {
			sdl.Delay(uint32(frame - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

// Close destroys the renderer and window and shuts SDL down.
func (w *Window) Close() {
	w.Renderer.Destroy()
	w.Window.Destroy()
	sdl.Quit()
}
