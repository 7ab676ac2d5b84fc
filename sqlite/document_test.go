package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/dochub"
	"github.com/fwojciec/dochub/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestDocument(t *testing.T, svc *sqlite.DocumentService, title string) *dochub.Document {
	t.Helper()
	doc := &dochub.Document{
		Title:        title,
		MarkdownPath: "/content/" + dochub.Slugify(title) + ".md",
		PagePath:     "/" + dochub.Slugify(title),
	}
	require.NoError(t, svc.CreateDocument(context.Background(), doc))
	return doc
}

func TestDocumentService_CreateDocument(t *testing.T) {
	t.Parallel()

	t.Run("derives ID from title and sets timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)

		doc := &dochub.Document{
			Title:        "User Guide",
			MarkdownPath: "/content/guide.md",
			PagePath:     "/guide",
			Color:        "#ff8800",
			Format:       "Markdown",
		}

		err := svc.CreateDocument(context.Background(), doc)
		require.NoError(t, err)

		assert.Equal(t, "userguide", doc.ID)
		assert.Equal(t, dochub.FormatMarkdown, doc.Format)
		assert.Equal(t, 0, doc.Position)
		assert.False(t, doc.CreatedAt.IsZero(), "CreatedAt should be set")
	})

	t.Run("keeps explicit ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)

		doc := &dochub.Document{ID: "ref", Title: "API Reference", MarkdownPath: "/ref.md"}
		require.NoError(t, svc.CreateDocument(context.Background(), doc))
		assert.Equal(t, "ref", doc.ID)
	})

	t.Run("returns error for invalid document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)

		err := svc.CreateDocument(context.Background(), &dochub.Document{Title: "No Path"})
		require.Error(t, err)
		assert.Equal(t, dochub.EINVALID, dochub.ErrorCode(err))

		err = svc.CreateDocument(context.Background(), &dochub.Document{})
		assert.Equal(t, dochub.EINVALID, dochub.ErrorCode(err))
	})

	t.Run("returns ECONFLICT for duplicate ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		createTestDocument(t, svc, "Guide")

		err := svc.CreateDocument(context.Background(), &dochub.Document{Title: "Guide", MarkdownPath: "/other.md"})
		require.Error(t, err)
		assert.Equal(t, dochub.ECONFLICT, dochub.ErrorCode(err))
	})

	t.Run("assigns increasing positions", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)

		a := createTestDocument(t, svc, "Alpha")
		b := createTestDocument(t, svc, "Beta")
		require.NoError(t, svc.DeleteDocument(context.Background(), a.ID))
		c := createTestDocument(t, svc, "Gamma")

		assert.Equal(t, 0, a.Position)
		assert.Equal(t, 1, b.Position)
		assert.Equal(t, 2, c.Position)
	})
}

func TestDocumentService_FindDocumentByID(t *testing.T) {
	t.Parallel()

	t.Run("returns document when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		doc := &dochub.Document{
			Title:        "Handbook",
			MarkdownPath: "https://example.com/handbook.html",
			PagePath:     "/handbook",
			Color:        "#123abc",
			Format:       dochub.FormatHTML,
		}
		require.NoError(t, svc.CreateDocument(ctx, doc))

		found, err := svc.FindDocumentByID(ctx, doc.ID)
		require.NoError(t, err)
		assert.Equal(t, doc.ID, found.ID)
		assert.Equal(t, doc.Title, found.Title)
		assert.Equal(t, doc.MarkdownPath, found.MarkdownPath)
		assert.Equal(t, doc.PagePath, found.PagePath)
		assert.Equal(t, doc.Color, found.Color)
		assert.True(t, found.IsHTML())
		assert.True(t, doc.CreatedAt.Equal(found.CreatedAt))
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)

		_, err := svc.FindDocumentByID(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, dochub.ENOTFOUND, dochub.ErrorCode(err))
	})
}

func TestDocumentService_FindDocuments(t *testing.T) {
	t.Parallel()

	t.Run("returns documents in registration order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		for _, title := range []string{"Zeta", "Alpha", "Mu"} {
			createTestDocument(t, svc, title)
		}

		docs, err := svc.FindDocuments(context.Background(), dochub.DocumentFilter{})
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, "zeta", docs[0].ID)
		assert.Equal(t, "alpha", docs[1].ID)
		assert.Equal(t, "mu", docs[2].ID)
	})

	t.Run("filters by ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		createTestDocument(t, svc, "Alpha")
		createTestDocument(t, svc, "Beta")

		id := "beta"
		docs, err := svc.FindDocuments(context.Background(), dochub.DocumentFilter{ID: &id})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "Beta", docs[0].Title)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		for i := range 5 {
			createTestDocument(t, svc, fmt.Sprintf("Doc %d", i))
		}

		docs, err := svc.FindDocuments(context.Background(), dochub.DocumentFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "doc1", docs[0].ID)
		assert.Equal(t, "doc2", docs[1].ID)
	})

	t.Run("applies offset without limit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		for i := range 4 {
			createTestDocument(t, svc, fmt.Sprintf("Doc %d", i))
		}

		docs, err := svc.FindDocuments(context.Background(), dochub.DocumentFilter{Offset: 3})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "doc3", docs[0].ID)
	})

	t.Run("returns empty result for empty registry", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)

		docs, err := svc.FindDocuments(context.Background(), dochub.DocumentFilter{})
		require.NoError(t, err)
		assert.Empty(t, docs)
	})
}

func TestDocumentService_DeleteDocument(t *testing.T) {
	t.Parallel()

	t.Run("removes document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		doc := createTestDocument(t, svc, "Guide")

		require.NoError(t, svc.DeleteDocument(context.Background(), doc.ID))

		_, err := svc.FindDocumentByID(context.Background(), doc.ID)
		assert.Equal(t, dochub.ENOTFOUND, dochub.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)

		err := svc.DeleteDocument(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, dochub.ENOTFOUND, dochub.ErrorCode(err))
	})
}
