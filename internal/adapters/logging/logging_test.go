package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MnFeN/Triggernometry/internal/ports"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
}

func TestConsoleLogger_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewConsoleLogger(WithOutput(&buf), withClock(fixedClock))

	logger.Info(context.Background(), "plugin inserted", ports.F("index", 1), ports.F("file", "MlmTriggernometry.dll"))

	assert.Equal(t, "09:26:53 [INFO] plugin inserted index=1 file=MlmTriggernometry.dll\n", buf.String())
}

func TestConsoleLogger_QuotesValuesWithSpaces(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewConsoleLogger(WithOutput(&buf), WithTimestamp(false), WithLevelLabel(false))

	logger.Info(context.Background(), "writing", ports.F("path", `C:\ACT\Advanced Combat Tracker.config.xml`), ports.F("empty", ""))

	assert.Equal(t, `writing path="C:\\ACT\\Advanced Combat Tracker.config.xml" empty=""`+"\n", buf.String())
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewConsoleLogger(WithOutput(&buf), WithLevel(ports.LevelWarn), WithTimestamp(false))
	ctx := context.Background()

	logger.Debug(ctx, "debug")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{"[WARN] warn", "[ERROR] error"}, lines)
}

func TestConsoleLogger_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewConsoleLogger(WithOutput(&buf), WithJSONFormat(true), withClock(fixedClock))

	logger.Warn(context.Background(), "download failed", ports.F("err", errors.New("GET: 404 Not Found")), ports.F("attempt", 2))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "download failed", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "2026-03-14T09:26:53Z", entry["time"])
	assert.Equal(t, "GET: 404 Not Found", entry["err"])
	assert.InDelta(t, 2, entry["attempt"], 0)
}

func TestConsoleLogger_WithSharesLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	root := NewConsoleLogger(WithOutput(&buf), WithTimestamp(false), WithLevelLabel(false))
	child := root.With(ports.F("run", "abc"))
	grandchild := child.With(ports.F("phase", "commit"))

	root.SetLevel(ports.LevelError)
	child.Info(context.Background(), "hidden")
	assert.Empty(t, buf.String())
	assert.Equal(t, ports.LevelError, grandchild.Level())

	root.SetLevel(ports.LevelDebug)
	grandchild.Debug(context.Background(), "shown")
	root.Debug(context.Background(), "root")

	assert.Equal(t, "shown run=abc phase=commit\nroot\n", buf.String())
}

func TestConsoleLogger_Color(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewConsoleLogger(WithOutput(&buf), WithTimestamp(false), WithColor(true))

	logger.Error(context.Background(), "boom")

	out := buf.String()
	assert.Contains(t, out, "[ERROR]")
	assert.True(t, strings.HasSuffix(out, " boom\n"))
}

func TestConsoleLogger_ConcurrentWrites(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewConsoleLogger(WithOutput(&buf), WithTimestamp(false), WithLevelLabel(false))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			logger.With(ports.F("worker", i)).Info(context.Background(), "tick")
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 20)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "tick worker="), line)
	}
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNopLogger()
	logger.Error(context.Background(), "ignored")
	assert.Same(t, logger, logger.With(ports.F("k", "v")))

	logger.SetLevel(ports.LevelDebug)
	assert.Equal(t, ports.LevelDebug, logger.Level())
}
