package mocks

import (
	"context"
	"sync"

	"github.com/MnFeN/Triggernometry/internal/ports"
)

// LogEntry is one message captured by Logger.
type LogEntry struct {
	Level   ports.Level
	Message string
	Fields  map[string]interface{}
}

type logSink struct {
	mu      sync.RWMutex
	entries []LogEntry
	level   ports.Level
}

// Logger is a thread-safe ports.Logger that records every entry.
// Loggers derived with With share the parent's entries.
type Logger struct {
	sink   *logSink
	fields []ports.Field
}

// NewLogger creates a recording logger at debug level.
func NewLogger() *Logger {
	return &Logger{sink: &logSink{level: ports.LevelDebug}}
}

func (l *Logger) log(level ports.Level, msg string, fields []ports.Field) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	if level < l.sink.level {
		return
	}
	all := make(map[string]interface{}, len(l.fields)+len(fields))
	for _, f := range l.fields {
		all[f.Key] = f.Value
	}
	for _, f := range fields {
		all[f.Key] = f.Value
	}
	l.sink.entries = append(l.sink.entries, LogEntry{Level: level, Message: msg, Fields: all})
}

// Debug records a debug entry.
func (l *Logger) Debug(_ context.Context, msg string, fields ...ports.Field) {
	l.log(ports.LevelDebug, msg, fields)
}

// Info records an info entry.
func (l *Logger) Info(_ context.Context, msg string, fields ...ports.Field) {
	l.log(ports.LevelInfo, msg, fields)
}

// Warn records a warning entry.
func (l *Logger) Warn(_ context.Context, msg string, fields ...ports.Field) {
	l.log(ports.LevelWarn, msg, fields)
}

// Error records an error entry.
func (l *Logger) Error(_ context.Context, msg string, fields ...ports.Field) {
	l.log(ports.LevelError, msg, fields)
}

// With returns a logger that adds fields to every entry.
func (l *Logger) With(fields ...ports.Field) ports.Logger {
	merged := make([]ports.Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)
	return &Logger{sink: l.sink, fields: merged}
}

// Level returns the minimum recorded level.
func (l *Logger) Level() ports.Level {
	l.sink.mu.RLock()
	defer l.sink.mu.RUnlock()
	return l.sink.level
}

// SetLevel sets the minimum recorded level.
func (l *Logger) SetLevel(level ports.Level) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.level = level
}

// Entries returns a copy of every recorded entry.
func (l *Logger) Entries() []LogEntry {
	l.sink.mu.RLock()
	defer l.sink.mu.RUnlock()
	out := make([]LogEntry, len(l.sink.entries))
	copy(out, l.sink.entries)
	return out
}

// EntriesAt returns the recorded entries of one level.
func (l *Logger) EntriesAt(level ports.Level) []LogEntry {
	var out []LogEntry
	for _, e := range l.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Ensure Logger implements ports.Logger.
var _ ports.Logger = (*Logger)(nil)
