package ports

import "context"

// Fetcher retrieves the body of a remote resource.
// Implementations return an error for transport failures and for any
// non-2xx response.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
