// Package log provides structured logging for go-sonarbot.
// It wraps slog with sensible defaults and can mirror output to a serial port.
package log

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	logger *slog.Logger
	once   sync.Once
)

// ParseLevel maps a level name to a slog level.
// Valid levels: "debug", "info", "warn", "error". Anything else is info.
func ParseLevel(level string) slog.Level {
	switch level {
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

// New builds a logger writing to w at the given level.
// Uses JSON in production, text in development.
func New(w io.Writer, level string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	if os.Getenv("GO_ENV") == "production" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Init initializes the global logger with the specified level.
// Extra writers (a serial port, a file) receive a copy of every record.
func Init(level string, extra ...io.Writer) {
	once.Do(func() {
		var w io.Writer = os.Stdout
		if len(extra) > 0 {
			w = io.MultiWriter(append([]io.Writer{os.Stdout}, extra...)...)
		}
		logger = New(w, level)
		slog.SetDefault(logger)
	})
}

// L returns the global logger instance.
// Only the command entry points use it; packages take a *slog.Logger.
func L() *slog.Logger {
	if logger == nil {
		Init("info")
	}
	return logger
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Discard()
	}
	return l
}

// Info logs at info level.
func Info(msg string, args ...any) {
	L().Info(msg, args...)
}

// With returns a logger with the given attributes.
func With(args ...any) *slog.Logger {
	return L().With(args...)
}
