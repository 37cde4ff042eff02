package urth

import "context"

// Fetcher retrieves remote input documents.
type Fetcher interface {
	// Fetch returns the document body at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources.
	Close() error
}
