package main

import (
	"context"
	"os"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction"
	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/constants"
	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/platform/evdevtouch"
	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/platform/sdlhost"
	"github.com/spf13/cobra"
)

var (
	touchDevice string
	windowOpts  sdlhost.WindowOptions
)

var sdlCmd = &cobra.Command{
	Use:   "sdl",
	Short: "Run the demo in an SDL window",
	Long: `Run the demo in an SDL window.

Rows follow the mouse and touch events SDL delivers. On handhelds whose
display server does not forward touches, pass the touchscreen device with
--touch-device (or SWIPE_TOUCH_DEVICE) to read it directly.`,
	RunE: runSDL,
}

func init() {
	sdlCmd.Flags().BoolVar(&windowOpts.Fullscreen, "fullscreen", false, "take over the whole display")
	sdlCmd.Flags().BoolVar(&windowOpts.Resizable, "resizable", false, "open a resizable window instead of a borderless one")
	sdlCmd.Flags().StringVar(&touchDevice, "touch-device", os.Getenv(constants.TouchDeviceEnvVar), "evdev touchscreen, e.g. /dev/input/event1")
	rootCmd.AddCommand(sdlCmd)
}

func runSDL(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging(opts)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := applyTheme(opts.theme); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	logger := swipeaction.GetLogger()
	cfg, err := buildConfig(ctx, cmd, opts, func(err error) {
		logger.Error("Settings reload failed", "error", err)
	})
	if err != nil {
		return err
	}

	window, err := sdlhost.OpenWindow("Swipe demo", windowOpts)
	if err != nil {
		return err
	}
	defer window.Close()

	app := newInbox(sampleItems(opts.rows), opts.lang)
	adapter := swipeaction.NewAdapter(cfg).SetSwipeActionListener(app)

	width, height := window.Size()
	list := sdlhost.NewList(adapter, width, sdlhost.DefaultRowHeight)
	for _, item := range app.items {
		list.Append(item)
	}
	app.remove = list.Remove

	animator := swipeaction.NewFrameAnimator()
	host := sdlhost.NewHost(window, list, adapter.Attach(list, animator), animator)

	reported := 0
	host.OnFrame = func() {
		for _, msg := range app.messages[reported:] {
			logger.Info(msg)
		}
		reported = len(app.messages)
	}

	if touchDevice != "" {
		dev, err := evdevtouch.Open(touchDevice, int(width), int(height))
		if err != nil {
			return err
		}
		touches := make(chan swipeaction.PointerEvent, 64)
		go func() {
			if err := dev.Run(ctx, touches); err != nil {
				logger.Error("Touchscreen stopped", "device", touchDevice, "error", err)
			}
		}()
		host.Touches = touches
	}

	return host.Run(ctx)
}
