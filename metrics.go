package bitkit

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSave is called after each snapshot save.
	RecordSave(bits uint64, duration time.Duration, err error)

	// RecordLoad is called after each snapshot load, including each file of LoadAll.
	RecordLoad(bits uint64, duration time.Duration, err error)

	// RecordMap is called after each Map call.
	RecordMap(bits uint64, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSave(uint64, time.Duration, error) {}
func (NoopMetricsCollector) RecordLoad(uint64, time.Duration, error) {}
func (NoopMetricsCollector) RecordMap(uint64, error)                 {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	SaveCount      atomic.Int64
	SaveErrors     atomic.Int64
	SaveBits       atomic.Uint64
	SaveTotalNanos atomic.Int64
	LoadCount      atomic.Int64
	LoadErrors     atomic.Int64
	LoadBits       atomic.Uint64
	LoadTotalNanos atomic.Int64
	MapCount       atomic.Int64
	MapErrors      atomic.Int64
}

// RecordSave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSave(bits uint64, duration time.Duration, err error) {
	b.SaveCount.Add(1)
	b.SaveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SaveErrors.Add(1)
		return
	}
	b.SaveBits.Add(bits)
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(bits uint64, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.LoadBits.Add(bits)
}

// RecordMap implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMap(_ uint64, err error) {
	b.MapCount.Add(1)
	if err != nil {
		b.MapErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SaveCount:    b.SaveCount.Load(),
		SaveErrors:   b.SaveErrors.Load(),
		SaveBits:     b.SaveBits.Load(),
		SaveAvgNanos: avg(b.SaveTotalNanos.Load(), b.SaveCount.Load()),
		LoadCount:    b.LoadCount.Load(),
		LoadErrors:   b.LoadErrors.Load(),
		LoadBits:     b.LoadBits.Load(),
		LoadAvgNanos: avg(b.LoadTotalNanos.Load(), b.LoadCount.Load()),
		MapCount:     b.MapCount.Load(),
		MapErrors:    b.MapErrors.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SaveCount    int64
	SaveErrors   int64
	SaveBits     uint64
	SaveAvgNanos int64
	LoadCount    int64
	LoadErrors   int64
	LoadBits     uint64
	LoadAvgNanos int64
	MapCount     int64
	MapErrors    int64
}
