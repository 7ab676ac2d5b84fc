package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/dochub"
)

// Ensure LoggingDocumentService implements dochub.DocumentService.
var _ dochub.DocumentService = (*LoggingDocumentService)(nil)

// LoggingDocumentService wraps a DocumentService and logs registry changes.
// Reads are not logged.
type LoggingDocumentService struct {
	next   dochub.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next dochub.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

// CreateDocument logs the registered document.
func (s *LoggingDocumentService) CreateDocument(ctx context.Context, doc *dochub.Document) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create document",
			"id", doc.ID,
			"title", doc.Title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateDocument(ctx, doc)
}

// FindDocumentByID delegates to the wrapped service.
func (s *LoggingDocumentService) FindDocumentByID(ctx context.Context, id string) (*dochub.Document, error) {
	return s.next.FindDocumentByID(ctx, id)
}

// FindDocuments delegates to the wrapped service.
func (s *LoggingDocumentService) FindDocuments(ctx context.Context, filter dochub.DocumentFilter) ([]*dochub.Document, error) {
	return s.next.FindDocuments(ctx, filter)
}

// DeleteDocument logs the removed document.
func (s *LoggingDocumentService) DeleteDocument(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete document",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteDocument(ctx, id)
}
