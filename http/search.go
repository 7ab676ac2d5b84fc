package http

import (
	"net/http"

	"github.com/fwojciec/dochub"
)

// SearchResponse is the body of GET /api/search.
type SearchResponse struct {
	Query  string             `json:"query"`
	Ready  bool               `json:"ready"`
	Count  int                `json:"count"`
	Groups []*dochub.HitGroup `json:"groups"`
}

// handleSearch builds the index on first use and returns hits grouped by
// document.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if s.Limiter != nil && !s.Limiter.Allow() {
		w.Header().Set("Retry-After", "1")
		writeJSON(w, r, http.StatusTooManyRequests, &ErrorResponse{Error: "too many search requests"})
		return
	}

	ctx := r.Context()
	query := r.URL.Query().Get("q")

	if err := s.SearchService.EnsureIndex(ctx); err != nil {
		Error(w, r, err)
		return
	}

	results, err := s.SearchService.Search(ctx, query)
	if err != nil {
		Error(w, r, err)
		return
	}

	groups := dochub.GroupResults(results, query)
	if groups == nil {
		groups = []*dochub.HitGroup{}
	}

	writeJSON(w, r, http.StatusOK, &SearchResponse{
		Query:  query,
		Ready:  s.SearchService.Ready(),
		Count:  len(results),
		Groups: groups,
	})
}
