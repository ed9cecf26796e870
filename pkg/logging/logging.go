// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logger := logging.Setup(cfg.App.LogLevel, cfg.App.IsDev())
//
// Levels: debug, info, warn, error (default: info).
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs a tint logger at the named level as the slog default and
// returns it. Colors and source locations are only enabled in development.
func Setup(level string, dev bool) *slog.Logger {
	logger := New(os.Stderr, ParseLevel(level), dev)
	slog.SetDefault(logger)
	return logger
}

// New builds a tint logger writing to w.
func New(w io.Writer, level slog.Level, dev bool) *slog.Logger {
	return slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  dev,
			NoColor:    !dev,
		}),
	)
}

// ParseLevel maps a level name to a slog.Level, defaulting to INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
