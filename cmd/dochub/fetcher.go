package main

import (
	"context"
	"errors"
	"strings"

	"github.com/fwojciec/dochub"
	"github.com/fwojciec/dochub/fs"
	dochubhttp "github.com/fwojciec/dochub/http"
)

// Ensure RoutingFetcher implements dochub.Fetcher at compile time.
var _ dochub.Fetcher = (*RoutingFetcher)(nil)

// RoutingFetcher sends http(s) locations to Remote and everything else to
// Local.
type RoutingFetcher struct {
	Remote dochub.Fetcher
	Local  dochub.Fetcher
}

// hostRate bounds requests per second to one documentation host.
const hostRate = 5

func newFetcher(root string) (*RoutingFetcher, error) {
	local, err := fs.NewFetcher(root)
	if err != nil {
		return nil, err
	}
	return &RoutingFetcher{
		Remote: dochubhttp.NewFetcher(dochubhttp.WithHostRate(hostRate)),
		Local:  local,
	}, nil
}

// IsRemote reports whether location is fetched over HTTP.
func IsRemote(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

// Fetch delegates to the fetcher responsible for location.
func (f *RoutingFetcher) Fetch(ctx context.Context, location string) (string, error) {
	if IsRemote(location) {
		return f.Remote.Fetch(ctx, location)
	}
	return f.Local.Fetch(ctx, location)
}

// Close closes both fetchers.
func (f *RoutingFetcher) Close() error {
	return errors.Join(f.Remote.Close(), f.Local.Close())
}
