package dochub

import (
	"context"
	"regexp"
	"strings"
	"time"
)

// Document formats.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Document represents a registered documentation source.
type Document struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	MarkdownPath string    `json:"markdownPath"`
	PagePath     string    `json:"pagePath"`
	Color        string    `json:"color,omitempty"`
	Format       string    `json:"format,omitempty"`
	Position     int       `json:"position"`
	CreatedAt    time.Time `json:"createdAt"`
}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidColor reports whether s is a #rrggbb hex color.
func ValidColor(s string) bool {
	return hexColorRe.MatchString(s)
}

// DocumentID derives a document ID from a title: its slug with hyphens removed.
func DocumentID(title string) string {
	return strings.ReplaceAll(Slugify(title), "-", "")
}

// IsHTML reports whether the document source must be converted before parsing.
func (d *Document) IsHTML() bool {
	return strings.EqualFold(d.Format, FormatHTML)
}

// URL returns the page location of the given anchor within the document.
func (d *Document) URL(anchor string) string {
	if anchor == "" {
		return d.PagePath
	}
	return d.PagePath + "#" + anchor
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.ID == "" {
		return Errorf(EINVALID, "document ID required")
	}
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if d.MarkdownPath == "" {
		return Errorf(EINVALID, "document markdown path required")
	}
	if d.Color != "" && !ValidColor(d.Color) {
		return Errorf(EINVALID, "document color %q is not a #rrggbb hex color", d.Color)
	}
	switch strings.ToLower(d.Format) {
	case "", FormatMarkdown, FormatHTML:
	default:
		return Errorf(EINVALID, "document format %q not supported", d.Format)
	}
	return nil
}

// DocumentService represents a registry of documents.
type DocumentService interface {
	// CreateDocument registers a new document.
	// Returns ECONFLICT if a document with the same ID exists.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter in registration order.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document from the registry.
	// Returns ENOTFOUND if document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID *string `json:"id"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
