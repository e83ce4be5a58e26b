package hashtable

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with table-specific helpers so operations log with
// consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. If handler is nil, a
// default text handler to stderr is used.
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

// NewTextLogger creates a Logger that writes human-readable text logs to
// stderr. level sets the minimum log level.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that writes JSON-formatted logs to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all output. This is the default
// for new tables.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithKey adds a key field to the logger.
func (l *Logger) WithKey(key string) *Logger {
	return &Logger{
		Logger: l.Logger.With("key", key),
	}
}

// WithBucket adds a bucket index field to the logger.
func (l *Logger) WithBucket(index uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("bucket", index),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(key string, err error) {
	if err != nil {
		l.Error("insert failed",
			"key", key,
			"error", err,
		)
	} else {
		l.Debug("insert completed",
			"key", key,
		)
	}
}

// LogMatch logs a match operation.
func (l *Logger) LogMatch(key string, limit, found int, err error) {
	if err != nil {
		l.Error("match failed",
			"key", key,
			"limit", limit,
			"error", err,
		)
	} else {
		l.Debug("match completed",
			"key", key,
			"limit", limit,
			"found", found,
		)
	}
}

// LogClose logs a teardown, with the number of objects handed to the release
// function.
func (l *Logger) LogClose(released int) {
	l.Debug("table closed",
		"released", released,
	)
}
