package http

import (
	"fmt"
	"net/http"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/dochub"
	"github.com/go-chi/chi/v5"
)

// handlePage renders a document to an HTML fragment whose heading ids match
// the anchors in search results. The ETag is the hash of the markdown.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, err := s.DocumentService.FindDocumentByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		Error(w, r, err)
		return
	}

	markdown, err := s.Fetcher.Fetch(ctx, doc.MarkdownPath)
	if err != nil {
		Error(w, r, err)
		return
	}
	if doc.IsHTML() {
		if s.Converter == nil {
			Error(w, r, dochub.Errorf(dochub.EINVALID, "no converter for HTML document %q", doc.ID))
			return
		}
		if markdown, err = s.Converter.Convert(markdown); err != nil {
			Error(w, r, err)
			return
		}
	}

	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64String(markdown))
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	html, err := s.Renderer.Render(markdown)
	if err != nil {
		Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		loggerFromContext(ctx).Debug("write page", "err", err)
	}
}
