package bitkit

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/bitkit/internal/resource"
	"github.com/hupe1980/bitkit/persistence"
)

// Compression selects how snapshot payloads are compressed.
type Compression = persistence.Compression

const (
	// CompressionNone stores payloads as is.
	CompressionNone = persistence.CompressionNone
	// CompressionLZ4 is fast block compression (default).
	CompressionLZ4 = persistence.CompressionLZ4
	// CompressionZSTD gives a better ratio for cold data.
	CompressionZSTD = persistence.CompressionZSTD
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	compression      Compression
	parallelism      int
	resources        resource.Config
}

// Option configures Save, Load, LoadAll and Map.
type Option func(*options)

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := bitkit.NewJSONLogger(slog.LevelInfo)
//	_ = bitkit.Save(ctx, "bits.bka", arr, bitkit.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithCompression selects the payload compression used by Save.
// Load detects the compression from the file header.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithParallelism bounds the number of files LoadAll reads concurrently.
// Values below 1 select runtime.GOMAXPROCS(0).
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithResourceLimits bounds a single Load or LoadAll call. memoryBytes caps
// the total size of the decoded arrays; ioBytesPerSec throttles file reads.
// Zero disables the respective limit.
func WithResourceLimits(memoryBytes, ioBytesPerSec int64) Option {
	return func(o *options) {
		o.resources = resource.Config{
			MemoryLimitBytes:   memoryBytes,
			IOLimitBytesPerSec: ioBytesPerSec,
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		compression:      CompressionLZ4,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.parallelism < 1 {
		o.parallelism = runtime.GOMAXPROCS(0)
	}
	return o
}
