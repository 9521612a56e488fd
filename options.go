package tilecode

import "github.com/hupe1980/tilecode/iht"

type options struct {
	logger  *Logger
	metrics MetricsCollector
	hasher  iht.Hasher
}

// Option configures an Encoder.
type Option func(*options)

// WithLogger configures the logger used for encode diagnostics.
//
// If nil is passed, the default (noop) logger is kept.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics configures a metrics collector. The collector is invoked
// synchronously on the encode path; implementations should be cheap.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithHasher configures the hash used on the stateless encode path.
// Tables carry their own hasher (iht.WithHasher); this option only affects
// EncodeStateless.
func WithHasher(h iht.Hasher) Option {
	return func(o *options) {
		if h != nil {
			o.hasher = h
		}
	}
}
