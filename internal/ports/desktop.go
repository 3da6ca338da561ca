package ports

import "context"

// Clipboard places text on the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// URLOpener opens a URL in the user's default browser.
type URLOpener interface {
	Open(ctx context.Context, url string) error
}
