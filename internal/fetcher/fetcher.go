package fetcher

import "context"

// Fetcher retrieves a text fragment for the page.
type Fetcher interface {
	// Name returns a human-readable name for the source.
	Name() string
	// Fetch performs a single request and returns the response body as text.
	Fetch(ctx context.Context) (string, error)
}
