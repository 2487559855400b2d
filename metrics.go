package succinct

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/succinct/codec"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordBuild is called after each rank index build.
	// bits is the length of the indexed vector.
	RecordBuild(bits int, duration time.Duration)

	// RecordEncode is called after each snapshot encode.
	// size is the snapshot size in bytes, err is nil if successful.
	RecordEncode(kind codec.Kind, size int, duration time.Duration, err error)

	// RecordDecode is called after each snapshot decode.
	// size is the input size in bytes, err is nil if successful.
	RecordDecode(kind codec.Kind, size int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration)                     {}
func (NoopMetricsCollector) RecordEncode(codec.Kind, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordDecode(codec.Kind, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	BuildCount       atomic.Int64
	BuildBits        atomic.Int64
	BuildTotalNanos  atomic.Int64
	EncodeCount      atomic.Int64
	EncodeErrors     atomic.Int64
	EncodeBytes      atomic.Int64
	EncodeTotalNanos atomic.Int64
	DecodeCount      atomic.Int64
	DecodeErrors     atomic.Int64
	DecodeBytes      atomic.Int64
	DecodeTotalNanos atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(bits int, duration time.Duration) {
	b.BuildCount.Add(1)
	b.BuildBits.Add(int64(bits))
	b.BuildTotalNanos.Add(duration.Nanoseconds())
}

// RecordEncode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEncode(_ codec.Kind, size int, duration time.Duration, err error) {
	b.EncodeCount.Add(1)
	b.EncodeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EncodeErrors.Add(1)
		return
	}
	b.EncodeBytes.Add(int64(size))
}

// RecordDecode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecode(_ codec.Kind, size int, duration time.Duration, err error) {
	b.DecodeCount.Add(1)
	b.DecodeBytes.Add(int64(size))
	b.DecodeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DecodeErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:     b.BuildCount.Load(),
		BuildBits:      b.BuildBits.Load(),
		BuildAvgNanos:  average(b.BuildTotalNanos.Load(), b.BuildCount.Load()),
		EncodeCount:    b.EncodeCount.Load(),
		EncodeErrors:   b.EncodeErrors.Load(),
		EncodeBytes:    b.EncodeBytes.Load(),
		EncodeAvgNanos: average(b.EncodeTotalNanos.Load(), b.EncodeCount.Load()),
		DecodeCount:    b.DecodeCount.Load(),
		DecodeErrors:   b.DecodeErrors.Load(),
		DecodeBytes:    b.DecodeBytes.Load(),
		DecodeAvgNanos: average(b.DecodeTotalNanos.Load(), b.DecodeCount.Load()),
	}
}

func average(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount     int64
	BuildBits      int64
	BuildAvgNanos  int64
	EncodeCount    int64
	EncodeErrors   int64
	EncodeBytes    int64
	EncodeAvgNanos int64
	DecodeCount    int64
	DecodeErrors   int64
	DecodeBytes    int64
	DecodeAvgNanos int64
}
