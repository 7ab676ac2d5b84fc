package http

import (
	"net/http"
	"strconv"

	"github.com/fwojciec/dochub"
	"github.com/go-chi/chi/v5"
)

// DocumentIndexResponse is the body of GET /api/documents.
type DocumentIndexResponse struct {
	Documents []*dochub.Document `json:"documents"`
}

// TOCResponse is the body of GET /api/documents/{id}/toc.
type TOCResponse struct {
	Document       *dochub.Document   `json:"document"`
	ReadingMinutes int                `json:"readingMinutes"`
	Entries        []*dochub.TOCEntry `json:"entries"`
}

func (s *Server) handleDocumentIndex(w http.ResponseWriter, r *http.Request) {
	var filter dochub.DocumentFilter
	var err error
	if v := r.URL.Query().Get("limit"); v != "" {
		if filter.Limit, err = strconv.Atoi(v); err != nil || filter.Limit < 0 {
			Error(w, r, dochub.Errorf(dochub.EINVALID, "invalid limit %q", v))
			return
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if filter.Offset, err = strconv.Atoi(v); err != nil || filter.Offset < 0 {
			Error(w, r, dochub.Errorf(dochub.EINVALID, "invalid offset %q", v))
			return
		}
	}

	docs, err := s.DocumentService.FindDocuments(r.Context(), filter)
	if err != nil {
		Error(w, r, err)
		return
	}
	if docs == nil {
		docs = []*dochub.Document{}
	}

	writeJSON(w, r, http.StatusOK, &DocumentIndexResponse{Documents: docs})
}

func (s *Server) handleDocumentView(w http.ResponseWriter, r *http.Request) {
	doc, err := s.DocumentService.FindDocumentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		Error(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, doc)
}

// handleDocumentTOC returns the nested table of contents of a document,
// optionally filtered by the q parameter into a flat list.
func (s *Server) handleDocumentTOC(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, err := s.DocumentService.FindDocumentByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		Error(w, r, err)
		return
	}

	if err := s.SearchService.EnsureIndex(ctx); err != nil {
		Error(w, r, err)
		return
	}

	sections, err := s.SearchService.FindSections(ctx, doc.ID)
	if err != nil {
		Error(w, r, err)
		return
	}

	entries := dochub.BuildTOC(sections)
	if q := r.URL.Query().Get("q"); q != "" {
		entries = dochub.FilterTOC(entries, q)
	}
	if entries == nil {
		entries = []*dochub.TOCEntry{}
	}

	writeJSON(w, r, http.StatusOK, &TOCResponse{
		Document:       doc,
		ReadingMinutes: dochub.ReadingTime(sections),
		Entries:        entries,
	})
}
