package mocks

import (
	"context"
	"sync"

	"github.com/MnFeN/Triggernometry/internal/ports"
)

// Clipboard is a thread-safe test double for ports.Clipboard.
type Clipboard struct {
	mu      sync.RWMutex
	content string
	writes  int
	err     error
}

// NewClipboard creates a new Clipboard mock.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// SetError makes subsequent writes fail with err.
func (c *Clipboard) SetError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

// WriteAll stores text as the clipboard content.
func (c *Clipboard) WriteAll(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.content = text
	c.writes++
	return nil
}

// Content returns the last text written.
func (c *Clipboard) Content() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.content
}

// Writes returns the number of successful writes.
func (c *Clipboard) Writes() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.writes
}

// URLOpener is a thread-safe test double for ports.URLOpener.
type URLOpener struct {
	mu     sync.RWMutex
	opened []string
	err    error
}

// NewURLOpener creates a new URLOpener mock.
func NewURLOpener() *URLOpener {
	return &URLOpener{}
}

// SetError makes subsequent opens fail with err.
func (o *URLOpener) SetError(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.err = err
}

// Open records url.
func (o *URLOpener) Open(_ context.Context, url string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return o.err
	}
	o.opened = append(o.opened, url)
	return nil
}

// Opened returns every opened URL in order.
func (o *URLOpener) Opened() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make([]string, len(o.opened))
	copy(out, o.opened)
	return out
}

var (
	_ ports.Clipboard = (*Clipboard)(nil)
	_ ports.URLOpener = (*URLOpener)(nil)
)
