package succinct

import (
	"log/slog"

	"github.com/hupe1980/succinct/codec"
	"github.com/hupe1980/succinct/internal/fs"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	codecOptions     []func(*codec.Options)
	fileSystem       fs.FileSystem
}

// Option configures BuildRank, Encode and Decode.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &succinct.BasicMetricsCollector{}
//	idx := succinct.BuildRank(bits, succinct.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Builds: %d, Avg latency: %dns\n", stats.BuildCount, stats.BuildAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
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

// WithCompression selects the snapshot compression used by Encode.
func WithCompression(c codec.Compression) Option {
	return func(o *options) {
		o.codecOptions = append(o.codecOptions, func(co *codec.Options) {
			co.Compression = c
		})
	}
}

// WithChecksum selects the snapshot checksum used by Encode.
func WithChecksum(c codec.Checksum) Option {
	return func(o *options) {
		o.codecOptions = append(o.codecOptions, func(co *codec.Options) {
			co.Checksum = c
		})
	}
}

// withFileSystem replaces the filesystem used by WriteFile.
func withFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		o.fileSystem = fsys
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		fileSystem:       fs.Default,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
