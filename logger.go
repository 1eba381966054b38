package collections

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with list-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithCapacity adds an initial capacity field to the logger.
func (l *Logger) WithCapacity(capacity int) *Logger {
	return &Logger{
		Logger: l.Logger.With("capacity", capacity),
	}
}

// WithElemSize adds an element size field to the logger.
func (l *Logger) WithElemSize(size int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("elem_size", size),
	}
}

// LogGrow logs a capacity growth step.
func (l *Logger) LogGrow(op string, from, to int, err error) {
	if err != nil {
		l.Warn("grow failed",
			"op", op,
			"from", from,
			"to", to,
			"error", err,
		)
	} else {
		l.Debug("grow completed",
			"op", op,
			"from", from,
			"to", to,
		)
	}
}

// LogError logs a rejected operation.
func (l *Logger) LogError(op string, err error) {
	l.Debug("operation failed",
		"op", op,
		"error", err,
	)
}

// LogDestroy logs the release of a list's storage.
func (l *Logger) LogDestroy(capacity int, released int64) {
	l.Debug("list destroyed",
		"capacity", capacity,
		"released_bytes", released,
	)
}
