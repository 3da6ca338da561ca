package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MnFeN/Triggernometry/internal/domain/registry"
)

func TestRootCommand_UseLine(t *testing.T) {
	assert.Equal(t, "triginstall", rootCmd.Use)
}

func TestRootCommand_HasPersistentFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	for _, name := range []string{"settings", "verbose", "quiet", "log-json"} {
		t.Run(name, func(t *testing.T) {
			require.NotNil(t, flags.Lookup(name))
		})
	}
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"install", "list", "profiles", "version"} {
		assert.True(t, names[want], want)
	}
}

func TestFormatError(t *testing.T) {
	t.Cleanup(resetFlags)

	t.Run("plain error", func(t *testing.T) {
		verbose = false
		assert.Equal(t, "boom", formatError(errBoom))
	})

	t.Run("suggestion", func(t *testing.T) {
		verbose = false
		err := &staticError{msg: "bad", suggestion: "do this", cause: errBoom}
		assert.Equal(t, "bad\n\nSuggestion: do this", formatError(err))
	})

	t.Run("suggestion through wrapping", func(t *testing.T) {
		verbose = false
		err := fmt.Errorf("install: %w", &registry.MissingDependencyError{Plugin: "Overlay", Description: "ngld OverlayPlugin"})
		assert.Contains(t, formatError(err), "Suggestion: ")
	})

	t.Run("verbose shows cause", func(t *testing.T) {
		verbose = true
		err := &staticError{msg: "bad", suggestion: "do this", cause: errBoom}
		assert.Equal(t, "bad\n\nSuggestion: do this\n\nTechnical details: boom", formatError(err))
	})

	t.Run("verbose without cause", func(t *testing.T) {
		verbose = true
		assert.Equal(t, "boom", formatError(errors.New("boom")))
	})
}

func TestPrintErrorTo(t *testing.T) {
	t.Cleanup(resetFlags)
	verbose = false

	var buf bytes.Buffer
	printErrorTo(&buf, errBoom)

	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestVersionCommand(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("version"))

	assert.Contains(t, h.out.String(), "triginstall dev")
	assert.Contains(t, h.out.String(), "commit:")
}
