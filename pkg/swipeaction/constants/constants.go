// Package constants defines shared constants, environment variables and
// default tunables used throughout the swipeaction engine.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the engine and the bundled hosts.
const (
	DebugEnvVar  = "SWIPE_DEBUG"  // enables internal debug logging
	ConfigEnvVar = "SWIPE_CONFIG" // default settings file for the demo host
	LangEnvVar   = "SWIPE_LANG"   // default language for direction labels

	TouchDeviceEnvVar  = "SWIPE_TOUCH_DEVICE" // evdev touchscreen path for handheld hosts
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Default geometry. Values mirror common touch-toolkit defaults expressed in pixels.
const (
	DefaultSlop                  = 8                      // touch slop before a drag counts as a swipe
	DefaultPlatformMinFling      = 50.0                   // platform minimum fling velocity, px/s
	DefaultMinFlingVelocityScale = 16.0                   // multiplier applied to the platform minimum fling
	DefaultMaxFlingVelocity      = 8000.0                 // px/s
	DefaultAnimationDuration     = 200 * time.Millisecond // every row animation runs for this long
	DefaultNormalSwipeFraction   = 0.25
	DefaultFarSwipeFraction      = 0.5
)

// VelocityHorizon is how far back the velocity tracker looks when estimating a fling.
const VelocityHorizon = 100 * time.Millisecond

// VelocityUnits normalises tracker output to pixels per second.
const VelocityUnits = 1000 * time.Millisecond

// MinRowExtent is the layout extent a dismissed row shrinks down to.
const MinRowExtent = 1

// DefaultConfigDebounce is the delay applied to settings file change notifications.
const DefaultConfigDebounce = 100 * time.Millisecond

// FrameInterval paces host frame loops that have no vsync.
const FrameInterval = 16 * time.Millisecond
