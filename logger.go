package succinct

import (
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/succinct/codec"
	"github.com/hupe1980/succinct/rank"
)

// Logger wraps slog.Logger with consistent field names for succinct
// operations.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithKind adds a snapshot kind field to the logger.
func (l *Logger) WithKind(kind codec.Kind) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", kind.String()),
	}
}

// LogBuild logs a completed rank index build.
func (l *Logger) LogBuild(stats rank.Stats, duration time.Duration) {
	l.Debug("rank index ready",
		"bits", stats.Bits,
		"ones", stats.Ones,
		"overhead", stats.Overhead(),
		"duration", duration,
	)
}

// LogEncode logs a snapshot encode.
func (l *Logger) LogEncode(kind codec.Kind, size int, err error) {
	if err != nil {
		l.Error("encode failed",
			"kind", kind.String(),
			"error", err,
		)
	} else {
		l.Debug("encode completed",
			"kind", kind.String(),
			"bytes", size,
		)
	}
}

// LogDecode logs a snapshot decode.
func (l *Logger) LogDecode(kind codec.Kind, size int, err error) {
	if err != nil {
		l.Warn("decode failed",
			"kind", kind.String(),
			"bytes", size,
			"error", err,
		)
	} else {
		l.Debug("decode completed",
			"kind", kind.String(),
			"bytes", size,
		)
	}
}
