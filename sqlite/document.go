package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/dochub"
	"github.com/ncruces/go-sqlite3"
)

// Compile-time interface verification.
var _ dochub.DocumentService = (*DocumentService)(nil)

const documentColumns = "id, title, markdown_path, page_path, color, format, position, created_at"

// DocumentService implements dochub.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// CreateDocument registers a document after the existing ones. An empty ID
// is derived from the title.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *dochub.Document) error {
	if doc.ID == "" {
		doc.ID = dochub.DocumentID(doc.Title)
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.Format = strings.ToLower(doc.Format)
	doc.CreatedAt = time.Now().UTC().Truncate(time.Second)

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO documents (id, title, markdown_path, page_path, color, format, position, created_at)
		SELECT ?, ?, ?, ?, ?, ?, COALESCE(MAX(position) + 1, 0), ? FROM documents
		RETURNING position
	`, doc.ID, doc.Title, doc.MarkdownPath, doc.PagePath, doc.Color, doc.Format,
		formatTime(doc.CreatedAt)).Scan(&doc.Position)

	var serr *sqlite3.Error
	if errors.As(err, &serr) && serr.ExtendedCode() == sqlite3.CONSTRAINT_PRIMARYKEY {
		return dochub.Errorf(dochub.ECONFLICT, "document %q already exists", doc.ID)
	}
	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*dochub.Document, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+documentColumns+" FROM documents WHERE id = ?", id)

	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, dochub.Errorf(dochub.ENOTFOUND, "document %q not found", id)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocuments retrieves documents matching the filter in registration order.
func (s *DocumentService) FindDocuments(ctx context.Context, filter dochub.DocumentFilter) ([]*dochub.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + documentColumns + " FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}

	query.WriteString(" ORDER BY position ASC, id ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*dochub.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return dochub.Errorf(dochub.ENOTFOUND, "document %q not found", id)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (*dochub.Document, error) {
	var doc dochub.Document
	var createdAt string

	if err := row.Scan(&doc.ID, &doc.Title, &doc.MarkdownPath, &doc.PagePath,
		&doc.Color, &doc.Format, &doc.Position, &createdAt); err != nil {
		return nil, err
	}

	var err error
	doc.CreatedAt, err = parseTime(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
