// Package swipeaction adds swipe actions to the rows of a scrollable list.
//
// Horizontal drags on a row are classified into a side and a zone (normal or
// far). On release the engine either commits the swipe, sliding the row out
// and collapsing it, or returns the row to rest. Any number of rows may be
// animating at once; their outcomes are joined and delivered to the
// application as one batch, ordered by descending position, once the last
// animation has finished.
//
// The engine draws nothing itself. Hosts implement View and Background for
// their widgets and List for their list, feed PointerEvents into a Listener
// and tick a FrameAnimator from their frame loop. Adapters for SDL and Linux
// evdev touchscreens live under platform/.
package swipeaction

import (
	"io"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/constants"
	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/internal"
)

// Options configures logging and theming for the engine.
type Options struct {
	LogPath  string // Full path for log file including filename (creates parent directories)
	LogLevel string // Application log level ("debug", "info", "warn", "error")
	Theme    *Theme // Zone palette, nil keeps the current one
}

// Init applies options. Call it before creating listeners so early
// diagnostics land in the right place. Setting SWIPE_DEBUG enables engine
// debug logging.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if options.Theme != nil {
		internal.SetTheme(*options.Theme)
	}
}

// Close releases the log file, if one was opened.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogOutput sends all log records to w instead of stdout and the log
// file. It only takes effect before the first record is logged.
func SetLogOutput(w io.Writer) {
	internal.SetLogOutput(w)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetInternalLogLevel sets the level of the engine's own diagnostics.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}
