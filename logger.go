package bitkit

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitkit-specific context.
// This provides structured logging with consistent field names.
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
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithPath adds a path field to the logger.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("path", path),
	}
}

// WithBits adds a bit length field to the logger.
func (l *Logger) WithBits(n uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("bits", n),
	}
}

// LogSave logs a snapshot save.
func (l *Logger) LogSave(ctx context.Context, path string, bits uint64, compression Compression, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"path", path,
			"bits", bits,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot saved",
			"path", path,
			"bits", bits,
			"compression", compression.String(),
		)
	}
}

// LogLoad logs a snapshot load.
func (l *Logger) LogLoad(ctx context.Context, path string, bits uint64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"path", path,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "snapshot loaded",
			"path", path,
			"bits", bits,
		)
	}
}

// LogLoadAll logs a batch load.
func (l *Logger) LogLoadAll(ctx context.Context, count int, err error) {
	if err != nil {
		l.WarnContext(ctx, "batch load aborted",
			"count", count,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "batch load completed",
			"count", count,
		)
	}
}

// LogMap logs opening or closing a mapping.
func (l *Logger) LogMap(ctx context.Context, op, path string, bits uint64, err error) {
	if err != nil {
		l.ErrorContext(ctx, op+" failed",
			"path", path,
			"bits", bits,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, op+" completed",
			"path", path,
			"bits", bits,
		)
	}
}
