package evdevtouch

import (
	"context"
	"errors"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction"
	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/internal"
	"github.com/holoplot/go-evdev"
)

var errNoAxes = errors.New("device reports no absolute position axes")

// Device is an open touchscreen.
type Device struct {
	dev     *evdev.InputDevice
	path    string
	decoder *Decoder
}

// Open opens the touchscreen at path (e.g. /dev/input/event1) and maps its
// coordinates onto a screen of width x height pixels.
func Open(path string, width, height int) (*Device, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, swipeaction.NewInfrastructureError("open_device", err)
	}

	infos, err := dev.AbsInfos()
	if err != nil {
		dev.Close()
		return nil, swipeaction.NewInfrastructureError("open_device", err)
	}

	x, okX := axis(infos, evdev.ABS_MT_POSITION_X, evdev.ABS_X)
	y, okY := axis(infos, evdev.ABS_MT_POSITION_Y, evdev.ABS_Y)
	if !okX || !okY {
		dev.Close()
		return nil, swipeaction.NewInfrastructureError("open_device", errNoAxes)
	}

	name, _ := dev.Name()
	internal.GetInternalLogger().Debug("Opened touchscreen",
		"path", path, "name", name, "x_min", x.Min, "x_max", x.Max, "y_min", y.Min, "y_max", y.Max)

	return &Device{
		dev:     dev,
		path:    path,
		decoder: NewDecoder(x, y, width, height),
	}, nil
}

func axis(infos map[evdev.EvCode]evdev.AbsInfo, codes ...evdev.EvCode) (Axis, bool) {
	for _, code := range codes {
		if info, ok := infos[code]; ok && info.Maximum > info.Minimum {
			return Axis{Min: info.Minimum, Max: info.Maximum}, true
		}
	}
	return Axis{}, false
}

// Run reads events and sends decoded pointer events to out until ctx is
// cancelled or the device fails. The device is closed when Run returns.
func (d *Device) Run(ctx context.Context, out chan<- swipeaction.PointerEvent) error {
	stop := make(chan struct{})
	defer close(stop)

	// ReadOne blocks; closing the device is what unblocks it on cancel.
	go func() {
		select {
		case <-ctx.Done():
			d.dev.Close()
		case <-stop:
		}
	}()
	defer d.dev.Close()

	for {
		ev, err := d.dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return swipeaction.NewInfrastructureError("read_device", err)
		}

		pe, ok := d.decoder.Feed(*ev)
		if !ok {
			continue
		}

		select {
		case out <- pe:
		case <-ctx.Done():
			return nil
		}
	}
}

// Close releases the device.
func (d *Device) Close() error {
	return d.dev.Close()
}
