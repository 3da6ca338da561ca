package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MnFeN/Triggernometry/internal/ports"
)

var levelColors = map[ports.Level]lipgloss.AdaptiveColor{
	ports.LevelDebug: {Light: "#6c6f85", Dark: "#6c7086"},
	ports.LevelInfo:  {Light: "#1e66f5", Dark: "#89b4fa"},
	ports.LevelWarn:  {Light: "#df8e1d", Dark: "#f9e2af"},
	ports.LevelError: {Light: "#d20f39", Dark: "#f38ba8"},
}

// sink is shared by a logger and every logger derived from it with With,
// so they agree on level and never interleave lines.
type sink struct {
	mu           sync.Mutex
	out          io.Writer
	level        ports.Level
	jsonFormat   bool
	includeTime  bool
	includeLevel bool
	color        bool
	now          func() time.Time
}

// ConsoleLogger logs structured messages to the console.
type ConsoleLogger struct {
	sink   *sink
	fields []ports.Field
}

// ConsoleLoggerOption configures the console logger.
type ConsoleLoggerOption func(*sink)

// WithOutput sets the output writer (default: os.Stderr).
func WithOutput(w io.Writer) ConsoleLoggerOption {
	return func(s *sink) {
		s.out = w
	}
}

// WithLevel sets the minimum log level (default: Info).
func WithLevel(level ports.Level) ConsoleLoggerOption {
	return func(s *sink) {
		s.level = level
	}
}

// WithJSONFormat enables JSON output format.
func WithJSONFormat(enabled bool) ConsoleLoggerOption {
	return func(s *sink) {
		s.jsonFormat = enabled
	}
}

// WithTimestamp includes timestamp in log entries.
func WithTimestamp(enabled bool) ConsoleLoggerOption {
	return func(s *sink) {
		s.includeTime = enabled
	}
}

// WithLevelLabel includes level label in log entries.
func WithLevelLabel(enabled bool) ConsoleLoggerOption {
	return func(s *sink) {
		s.includeLevel = enabled
	}
}

// WithColor colors the level label of text entries.
func WithColor(enabled bool) ConsoleLoggerOption {
	return func(s *sink) {
		s.color = enabled
	}
}

// withClock fixes the timestamp source.
func withClock(now func() time.Time) ConsoleLoggerOption {
	return func(s *sink) {
		s.now = now
	}
}

// NewConsoleLogger creates a new console logger.
func NewConsoleLogger(opts ...ConsoleLoggerOption) *ConsoleLogger {
	s := &sink{
		out:          os.Stderr,
		level:        ports.LevelInfo,
		includeTime:  true,
		includeLevel: true,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return &ConsoleLogger{sink: s}
}

// Debug logs a debug message.
func (l *ConsoleLogger) Debug(ctx context.Context, msg string, fields ...ports.Field) {
	l.log(ctx, ports.LevelDebug, msg, fields)
}

// Info logs an informational message.
func (l *ConsoleLogger) Info(ctx context.Context, msg string, fields ...ports.Field) {
	l.log(ctx, ports.LevelInfo, msg, fields)
}

// Warn logs a warning message.
func (l *ConsoleLogger) Warn(ctx context.Context, msg string, fields ...ports.Field) {
	l.log(ctx, ports.LevelWarn, msg, fields)
}

// Error logs an error message.
func (l *ConsoleLogger) Error(ctx context.Context, msg string, fields ...ports.Field) {
	l.log(ctx, ports.LevelError, msg, fields)
}

// With returns a new logger with additional fields.
func (l *ConsoleLogger) With(fields ...ports.Field) ports.Logger {
	newFields := make([]ports.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	return &ConsoleLogger{sink: l.sink, fields: newFields}
}

// Level returns the minimum log level.
func (l *ConsoleLogger) Level() ports.Level {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	return l.sink.level
}

// SetLevel sets the minimum log level for this logger and all loggers
// derived from the same root.
func (l *ConsoleLogger) SetLevel(level ports.Level) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.level = level
}

// log writes a log entry if the level is enabled.
func (l *ConsoleLogger) log(_ context.Context, level ports.Level, msg string, fields []ports.Field) {
	s := l.sink
	s.mu.Lock()
	defer s.mu.Unlock()

	if level < s.level {
		return
	}

	allFields := make([]ports.Field, len(l.fields)+len(fields))
	copy(allFields, l.fields)
	copy(allFields[len(l.fields):], fields)

	if s.jsonFormat {
		s.writeJSON(level, msg, allFields)
	} else {
		s.writeText(level, msg, allFields)
	}
}

// writeJSON writes a JSON-formatted log entry.
func (s *sink) writeJSON(level ports.Level, msg string, fields []ports.Field) {
	entry := make(map[string]interface{}, len(fields)+3)

	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			entry[f.Key] = err.Error()
			continue
		}
		entry[f.Key] = f.Value
	}
	if s.includeTime {
		entry["time"] = s.now().UTC().Format(time.RFC3339)
	}
	if s.includeLevel {
		entry["level"] = level.String()
	}
	entry["msg"] = msg

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = fmt.Fprintln(s.out, string(data))
}

// writeText writes a human-readable log entry.
func (s *sink) writeText(level ports.Level, msg string, fields []ports.Field) {
	var b strings.Builder

	if s.includeTime {
		b.WriteString(s.now().Format("15:04:05"))
		b.WriteByte(' ')
	}
	if s.includeLevel {
		label := fmt.Sprintf("[%s]", level.String())
		if s.color {
			label = lipgloss.NewStyle().Bold(true).Foreground(levelColors[level]).Render(label)
		}
		b.WriteString(label)
		b.WriteByte(' ')
	}
	b.WriteString(msg)

	for _, f := range fields {
		b.WriteByte(' ')
		b.WriteString(f.Key)
		b.WriteByte('=')
		b.WriteString(formatValue(f.Value))
	}

	_, _ = fmt.Fprintln(s.out, b.String())
}

// formatValue quotes values that contain spaces, which Windows paths
// usually do.
func formatValue(v interface{}) string {
	str := fmt.Sprint(v)
	if str == "" || strings.ContainsAny(str, " \t\n\"=") {
		return fmt.Sprintf("%q", str)
	}
	return str
}

// Ensure ConsoleLogger implements Logger.
var _ ports.Logger = (*ConsoleLogger)(nil)
