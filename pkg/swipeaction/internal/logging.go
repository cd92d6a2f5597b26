package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile *os.File
	logPath string

	setupOnce sync.Once
	logOutput io.Writer = os.Stdout

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   = &slog.LevelVar{}
)

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created on first use. An empty path logs to stdout only.
func SetLogPath(path string) {
	logPath = path
}

// SetLogOutput replaces the log destination. It must be called before the
// first logger is requested; hosts that own the terminal (the demo) use it to
// keep JSON records off the screen.
func SetLogOutput(w io.Writer) {
	setupOnce.Do(func() {
		logOutput = w
	})
}

func setup() {
	setupOnce.Do(func() {
		if logPath == "" {
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Can't open log file, fall back to console-only
			return
		}
		logFile = f
		logOutput = io.MultiWriter(os.Stdout, logFile)
	})
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		setup()
		logger = slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{Level: levelVar}))
	})
	return logger
}

// GetInternalLogger returns the engine logger. It defaults to error level so
// gesture diagnostics stay quiet unless asked for.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		setup()
		if internalLevelVar.Level() == slog.LevelInfo {
			internalLevelVar.Set(slog.LevelError)
		}
		internalLogger = slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{Level: internalLevelVar}))
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// ParseLevel maps a raw level name to a slog level. Unknown names map to info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(rawLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	levelVar.Set(ParseLevel(rawLevel))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
