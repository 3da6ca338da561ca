package desktop

import (
	"context"
	"fmt"
	"strings"

	"github.com/MnFeN/Triggernometry/internal/domain/platform"
	"github.com/MnFeN/Triggernometry/internal/ports"
)

// BrowserOpener opens URLs with the platform's URL handler.
type BrowserOpener struct {
	runner   ports.CommandRunner
	platform *platform.Platform
}

// NewBrowserOpener creates a BrowserOpener.
func NewBrowserOpener(runner ports.CommandRunner, p *platform.Platform) *BrowserOpener {
	return &BrowserOpener{runner: runner, platform: p}
}

// Open launches the default browser on url.
func (o *BrowserOpener) Open(ctx context.Context, url string) error {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("refusing to open non-web URL %q", url)
	}

	cmd, args := o.platform.OpenerCommand(url)
	result, err := o.runner.Run(ctx, cmd, args...)
	if err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	if !result.Success() {
		msg := strings.TrimSpace(result.Stderr)
		if msg == "" {
			msg = fmt.Sprintf("exit code %d", result.ExitCode)
		}
		return fmt.Errorf("open %s: %s: %s", url, cmd, msg)
	}
	return nil
}

var _ ports.URLOpener = (*BrowserOpener)(nil)
