// Package desktop reaches the user's desktop session: the clipboard and the
// default browser.
package desktop

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/MnFeN/Triggernometry/internal/ports"
)

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct {
	write func(string) error
}

// NewSystemClipboard creates a SystemClipboard.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{write: clipboard.WriteAll}
}

// Supported reports whether a clipboard utility is available.
func (c *SystemClipboard) Supported() bool {
	return !clipboard.Unsupported
}

// WriteAll replaces the clipboard content with text.
func (c *SystemClipboard) WriteAll(text string) error {
	if err := c.write(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}

var _ ports.Clipboard = (*SystemClipboard)(nil)
