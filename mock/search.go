package mock

import (
	"context"

	"github.com/fwojciec/dochub"
)

var _ dochub.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of dochub.SearchService.
type SearchService struct {
	EnsureIndexFn  func(ctx context.Context) error
	ReadyFn        func() bool
	SearchFn       func(ctx context.Context, query string) ([]*dochub.SearchResult, error)
	FindSectionsFn func(ctx context.Context, documentID string) ([]*dochub.Section, error)
}

func (s *SearchService) EnsureIndex(ctx context.Context) error {
	return s.EnsureIndexFn(ctx)
}

func (s *SearchService) Ready() bool {
	return s.ReadyFn()
}

func (s *SearchService) Search(ctx context.Context, query string) ([]*dochub.SearchResult, error) {
	return s.SearchFn(ctx, query)
}

func (s *SearchService) FindSections(ctx context.Context, documentID string) ([]*dochub.Section, error) {
	return s.FindSectionsFn(ctx, documentID)
}
