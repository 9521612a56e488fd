package tilecode

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with tilecode-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithNumTilings adds a num_tilings field to the logger.
func (l *Logger) WithNumTilings(numTilings int) *Logger {
	return &Logger{
		Logger: l.Logger.With("num_tilings", numTilings),
	}
}

// WithTableSize adds a table size field to the logger.
func (l *Logger) WithTableSize(size int) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", size),
	}
}

// LogEncode logs an encode operation.
func (l *Logger) LogEncode(numTilings, dimensions int, err error) {
	if err != nil {
		l.Error("encode failed",
			"num_tilings", numTilings,
			"dimensions", dimensions,
			"error", err,
		)
	} else {
		l.Debug("encode completed",
			"num_tilings", numTilings,
			"dimensions", dimensions,
		)
	}
}
