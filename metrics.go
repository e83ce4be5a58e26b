package hashtable

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordInsert is called after each insert operation. duration is the
	// total time taken, err is nil if successful.
	RecordInsert(duration time.Duration, err error)

	// RecordMatch is called after each match operation. found is the number
	// of objects returned.
	RecordMatch(found int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector. It is
// the default for new tables.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error)     {}
func (NoopMetricsCollector) RecordMatch(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection. Useful
// for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertErrors     atomic.Int64
	InsertTotalNanos atomic.Int64
	MatchCount       atomic.Int64
	MatchErrors      atomic.Int64
	MatchFound       atomic.Int64
	MatchTotalNanos  atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordMatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMatch(found int, duration time.Duration, err error) {
	b.MatchCount.Add(1)
	b.MatchFound.Add(int64(found))
	b.MatchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.MatchErrors.Add(1)
	}
}
