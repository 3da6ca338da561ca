package mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MnFeN/Triggernometry/internal/ports"
)

func TestCommandRunner_AddResult(t *testing.T) {
	t.Parallel()

	runner := NewCommandRunner()
	runner.AddResult("xdg-open", []string{"https://example.com"}, ports.CommandResult{Stdout: "opened"})

	result, err := runner.Run(context.Background(), "xdg-open", "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "opened", result.Stdout)
	assert.True(t, result.Success())
}

func TestCommandRunner_AddSuccess(t *testing.T) {
	t.Parallel()

	runner := NewCommandRunner()
	runner.AddSuccess("rundll32", "url.dll,FileProtocolHandler", "https://example.com")

	result, err := runner.Run(context.Background(), "rundll32", "url.dll,FileProtocolHandler", "https://example.com")
	require.NoError(t, err)
	assert.True(t, result.Success())
}

func TestCommandRunner_AddError(t *testing.T) {
	t.Parallel()

	boom := errors.New("exec: not found")
	runner := NewCommandRunner()
	runner.AddError("open", []string{"x"}, boom)

	_, err := runner.Run(context.Background(), "open", "x")
	assert.ErrorIs(t, err, boom)
}

func TestCommandRunner_NotFound(t *testing.T) {
	t.Parallel()

	runner := NewCommandRunner()
	_, err := runner.Run(context.Background(), "unknown", "command")
	assert.Error(t, err)
}

func TestCommandRunner_ArgumentsAreNotJoined(t *testing.T) {
	t.Parallel()

	runner := NewCommandRunner()
	runner.AddSuccess("open", "a:b")

	_, err := runner.Run(context.Background(), "open", "a", "b")
	assert.Error(t, err)
}

func TestCommandRunner_RecordsCalls(t *testing.T) {
	t.Parallel()

	runner := NewCommandRunner()
	runner.AddSuccess("open", "one")
	runner.AddSuccess("open", "two")

	_, _ = runner.Run(context.Background(), "open", "one")
	_, _ = runner.Run(context.Background(), "open", "two")

	calls := runner.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "open", calls[0].Command)
	assert.Equal(t, []string{"one"}, calls[0].Args)
	assert.Equal(t, []string{"two"}, calls[1].Args)
}

func TestCommandRunner_Reset(t *testing.T) {
	t.Parallel()

	runner := NewCommandRunner()
	runner.AddSuccess("open", "x")
	_, _ = runner.Run(context.Background(), "open", "x")

	runner.Reset()

	assert.Empty(t, runner.Calls())
	_, err := runner.Run(context.Background(), "open", "x")
	assert.Error(t, err)
}

func TestCommandRunner_ThreadSafety(t *testing.T) {
	t.Parallel()

	runner := NewCommandRunner()
	for i := 0; i < 10; i++ {
		runner.AddSuccess("cmd", fmt.Sprint(i))
	}

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_, _ = runner.Run(context.Background(), "cmd", fmt.Sprint(idx%10))
			_ = runner.Calls()
		}(i)
	}
	wg.Wait()

	assert.Len(t, runner.Calls(), 100)
}
