package tilecode

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordEncode is called after each encode operation.
	// numTilings is the number of indices produced, duration the total
	// time taken, err is nil if successful.
	RecordEncode(numTilings int, duration time.Duration, err error)

	// RecordOverflow is called when an encode operation caused table
	// overflow events. events is the number of collided keys in that call.
	RecordOverflow(events int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordEncode(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordOverflow(int)                     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	EncodeCount      atomic.Int64
	EncodeErrors     atomic.Int64
	EncodeTotalNanos atomic.Int64
	IndicesProduced  atomic.Int64
	OverflowEvents   atomic.Int64
}

// RecordEncode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEncode(numTilings int, duration time.Duration, err error) {
	b.EncodeCount.Add(1)
	b.EncodeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EncodeErrors.Add(1)
	} else {
		b.IndicesProduced.Add(int64(numTilings))
	}
}

// RecordOverflow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOverflow(events int) {
	b.OverflowEvents.Add(int64(events))
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector counters.
type BasicMetricsStats struct {
	EncodeCount     int64
	EncodeErrors    int64
	EncodeAvgNanos  int64
	IndicesProduced int64
	OverflowEvents  int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		EncodeCount:     b.EncodeCount.Load(),
		EncodeErrors:    b.EncodeErrors.Load(),
		IndicesProduced: b.IndicesProduced.Load(),
		OverflowEvents:  b.OverflowEvents.Load(),
	}
	if stats.EncodeCount > 0 {
		stats.EncodeAvgNanos = b.EncodeTotalNanos.Load() / stats.EncodeCount
	}
	return stats
}
