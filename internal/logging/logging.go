// SPDX-License-Identifier: MIT

// Package logging wraps log/slog with lvarray-specific field helpers.
//
// The engine logs only one-off configuration decisions (segment sizing,
// segmented allocations) at debug level; element operations never log.
package logging

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithDomain adds the scalar domain name.
func (l *Logger) WithDomain(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("domain", name),
	}
}

// WithCount adds an element count field.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogSegmentSize logs the resolved segment size for one element size.
func (l *Logger) LogSegmentSize(cacheBytes int64, elementSize uintptr, segmentSize int) {
	l.Debug("segment size resolved",
		"cache_bytes", cacheBytes,
		"element_size", elementSize,
		"segment_size", segmentSize,
	)
}

// LogSegmented logs an allocation that was split into segments.
func (l *Logger) LogSegmented(count, segmentSize, segments int) {
	l.Debug("segmented store allocated",
		"count", count,
		"segment_size", segmentSize,
		"segments", segments,
	)
}
