package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/dochub"
)

// Ensure LoggingSearchService implements dochub.SearchService.
var _ dochub.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with logging.
type LoggingSearchService struct {
	next   dochub.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next dochub.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// EnsureIndex logs calls that had to wait for a build or failed.
func (s *LoggingSearchService) EnsureIndex(ctx context.Context) (err error) {
	if s.next.Ready() {
		return s.next.EnsureIndex(ctx)
	}
	defer func(begin time.Time) {
		s.logger.Info("ensure index",
			"ready", s.next.Ready(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.EnsureIndex(ctx)
}

// Ready delegates to the wrapped service.
func (s *LoggingSearchService) Ready() bool {
	return s.next.Ready()
}

// Search logs the query, result count and duration.
func (s *LoggingSearchService) Search(ctx context.Context, query string) (results []*dochub.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("search",
			"query", query,
			"results", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}

// FindSections delegates to the wrapped service.
func (s *LoggingSearchService) FindSections(ctx context.Context, documentID string) ([]*dochub.Section, error) {
	return s.next.FindSections(ctx, documentID)
}
