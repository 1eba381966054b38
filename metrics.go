package collections

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting list metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordGrow is called after each growth attempt.
	// from and to are capacities in slots, err is nil if successful.
	RecordGrow(from, to int, err error)

	// RecordShift is called after Insert or Remove moved elements.
	// moved is the number of elements that changed slot.
	RecordShift(op string, moved int)

	// RecordError is called whenever an operation is rejected.
	RecordError(op string, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, int, error) {}
func (NoopMetricsCollector) RecordShift(string, int)    {}
func (NoopMetricsCollector) RecordError(string, error)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GrowCount     atomic.Int64
	GrowErrors    atomic.Int64
	SlotsGrown    atomic.Int64
	ShiftCount    atomic.Int64
	ElementsMoved atomic.Int64
	ErrorCount    atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(from, to int, err error) {
	b.GrowCount.Add(1)
	if err != nil {
		b.GrowErrors.Add(1)
		return
	}
	b.SlotsGrown.Add(int64(to - from))
}

// RecordShift implements MetricsCollector.
func (b *BasicMetricsCollector) RecordShift(_ string, moved int) {
	b.ShiftCount.Add(1)
	b.ElementsMoved.Add(int64(moved))
}

// RecordError implements MetricsCollector.
func (b *BasicMetricsCollector) RecordError(string, error) {
	b.ErrorCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:     b.GrowCount.Load(),
		GrowErrors:    b.GrowErrors.Load(),
		SlotsGrown:    b.SlotsGrown.Load(),
		ShiftCount:    b.ShiftCount.Load(),
		ElementsMoved: b.ElementsMoved.Load(),
		ErrorCount:    b.ErrorCount.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowCount     int64
	GrowErrors    int64
	SlotsGrown    int64
	ShiftCount    int64
	ElementsMoved int64
	ErrorCount    int64
}
