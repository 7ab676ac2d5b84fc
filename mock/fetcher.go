package mock

import (
	"context"

	"github.com/fwojciec/dochub"
)

var _ dochub.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of dochub.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, location string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, location string) (string, error) {
	return f.FetchFn(ctx, location)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
