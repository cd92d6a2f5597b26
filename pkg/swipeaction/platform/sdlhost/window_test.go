package sdlhost

import (
	"testing"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/constants"
	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestWindowOptionsFlags(t *testing.T) {
	tests := []struct {
		name string
		dev  bool
		opts WindowOptions
		want uint32
	}{
		{name: "device default", want: sdl.WINDOW_SHOWN | sdl.WINDOW_BORDERLESS},
		{name: "dev default", dev: true, want: sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE},
		{name: "resizable on device", opts: WindowOptions{Resizable: true}, want: sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE},
		{name: "fullscreen", opts: WindowOptions{Fullscreen: true}, want: sdl.WINDOW_SHOWN | sdl.WINDOW_FULLSCREEN_DESKTOP},
		{name: "fullscreen wins", dev: true, opts: WindowOptions{Fullscreen: true, Resizable: true}, want: sdl.WINDOW_SHOWN | sdl.WINDOW_FULLSCREEN_DESKTOP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := ""
			if tt.dev {
				env = constants.Development
			}
			t.Setenv("ENVIRONMENT", env)

			assert.Equal(t, tt.want, tt.opts.flags())
		})
	}
}
