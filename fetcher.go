package dochub

import "context"

// Fetcher retrieves the raw source text of a document.
type Fetcher interface {
	// Fetch returns the content stored at location, which is a URL or a
	// path, depending on the implementation.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, location string) (string, error)

	// Close releases resources held by the fetcher.
	Close() error
}
