package ports

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"~/ACT/Plugins", filepath.Join(home, "ACT/Plugins")},
		{`~\ACT`, filepath.Join(home, "ACT")},
		{"/absolute/path", "/absolute/path"},
		{`C:\ACT\Plugins`, `C:\ACT\Plugins`},
		{"/path/with~tilde", "/path/with~tilde"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ExpandPath(tt.input), "ExpandPath(%q)", tt.input)
	}
}
