package iht

import (
	"log/slog"

	"github.com/hupe1980/tilecode/internal/keyhash"
)

// Options configures an IHT.
type Options struct {
	// Hasher resolves unseen keys once the table is full. Must be pure.
	Hasher Hasher

	// Logger receives the one-time table-full warning.
	Logger *slog.Logger

	// OnFull is called exactly once, on the first overflow event, with the
	// table capacity. Use it to surface undersizing to telemetry.
	OnFull func(size int)
}

func defaultOptions() Options {
	return Options{
		Hasher: keyhash.Sum,
		Logger: slog.Default(),
	}
}

// WithHasher overrides the overflow hash function. All tables (and
// stateless encoders) that must agree on collision slots have to share the
// same hasher.
func WithHasher(h Hasher) func(*Options) {
	return func(o *Options) {
		if h != nil {
			o.Hasher = h
		}
	}
}

// WithLogger overrides the logger used for the table-full warning.
func WithLogger(l *slog.Logger) func(*Options) {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnFull registers a hook fired once, on the first overflow event.
func WithOnFull(fn func(size int)) func(*Options) {
	return func(o *Options) {
		o.OnFull = fn
	}
}
