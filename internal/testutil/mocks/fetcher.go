package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/MnFeN/Triggernometry/internal/ports"
)

// Fetcher is a thread-safe test double for ports.Fetcher.
// Unregistered URLs fail like a 404.
type Fetcher struct {
	mu        sync.RWMutex
	responses map[string][]byte
	errors    map[string]error
	calls     []string
}

// NewFetcher creates a new Fetcher mock.
func NewFetcher() *Fetcher {
	return &Fetcher{
		responses: make(map[string][]byte),
		errors:    make(map[string]error),
	}
}

// AddResponse registers the body returned for url.
func (f *Fetcher) AddResponse(url string, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[url] = []byte(body)
}

// AddError registers a failure for url.
func (f *Fetcher) AddError(url string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors[url] = err
}

// Fetch records the request and returns the registered outcome.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, url)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := f.errors[url]; ok {
		return nil, err
	}
	if body, ok := f.responses[url]; ok {
		out := make([]byte, len(body))
		copy(out, body)
		return out, nil
	}
	return nil, fmt.Errorf("GET %s: 404 Not Found", url)
}

// Calls returns every requested URL in order.
func (f *Fetcher) Calls() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

// Ensure Fetcher implements ports.Fetcher.
var _ ports.Fetcher = (*Fetcher)(nil)
