// Package logging configures structured logging for log/slog.
//
// Usage:
//
//	logging.Setup("info", "text")  // colored output via tint
//	logging.Setup("debug", "json") // JSON lines, for log collectors
//
// The level falls back to the LOG_LEVEL environment variable when empty.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs the default slog logger writing to stderr.
func Setup(level, format string) {
	slog.SetDefault(New(os.Stderr, level, format))
}

// New builds a logger for w. format is "json" or anything else for colored text.
func New(w io.Writer, level, format string) *slog.Logger {
	lvl := ParseLevel(level)
	if level == "" {
		lvl = ParseLevel(os.Getenv("LOG_LEVEL"))
	}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	}))
}

// ParseLevel maps debug, warn and error to their slog levels; anything else is INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
