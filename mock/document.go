package mock

import (
	"context"

	"github.com/fwojciec/dochub"
)

var _ dochub.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of dochub.DocumentService.
type DocumentService struct {
	CreateDocumentFn   func(ctx context.Context, doc *dochub.Document) error
	FindDocumentByIDFn func(ctx context.Context, id string) (*dochub.Document, error)
	FindDocumentsFn    func(ctx context.Context, filter dochub.DocumentFilter) ([]*dochub.Document, error)
	DeleteDocumentFn   func(ctx context.Context, id string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *dochub.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*dochub.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter dochub.DocumentFilter) ([]*dochub.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}
