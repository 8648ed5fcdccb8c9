package scancontext

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with field helpers for the detector's
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithQueryIndex adds a query_index field to the logger.
func (l *Logger) WithQueryIndex(index int) *Logger {
	return &Logger{
		Logger: l.Logger.With("query_index", index),
	}
}

// WithPoints adds a points field to the logger (input cloud size).
func (l *Logger) WithPoints(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("points", n),
	}
}

// LogIngest logs an ingest operation.
func (l *Logger) LogIngest(ctx context.Context, nodeIndex, numPoints int) {
	l.DebugContext(ctx, "ingest completed",
		"node_index", nodeIndex,
		"points", numPoints,
	)
}

// LogQuery logs a detect operation and its outcome.
func (l *Logger) LogQuery(ctx context.Context, queryIndex, matchIndex int, distance, yawDeg float64) {
	if matchIndex < 0 {
		l.DebugContext(ctx, "detect completed: no loop",
			"query_index", queryIndex,
			"distance", distance,
		)
		return
	}
	l.InfoContext(ctx, "detect completed: loop closure",
		"query_index", queryIndex,
		"match_index", matchIndex,
		"distance", distance,
		"yaw_deg", yawDeg,
	)
}

// LogRebuild logs a k-d tree rebuild.
func (l *Logger) LogRebuild(ctx context.Context, searchViewSize int) {
	l.DebugContext(ctx, "tree rebuild completed",
		"search_view_size", searchViewSize,
	)
}
