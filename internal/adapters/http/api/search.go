// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/okian/davos/internal/domain/model"
	"github.com/okian/davos/internal/domain/types"
)

// SearchDependencies defines the interface for keyword search.
type SearchDependencies interface {
	Search(ctx context.Context, query string, topK int) ([]model.ScoredEvent, error)
}

// SearchHandler handles keyword search requests.
type SearchHandler struct {
	deps    SearchDependencies
	maxTopK int
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(deps SearchDependencies, maxTopK int) *SearchHandler {
	return &SearchHandler{deps: deps, maxTopK: maxTopK}
}

// searchResponse is the success envelope for GET /api/search.
type searchResponse struct {
	Success bool                 `json:"success"`
	Query   string               `json:"query"`
	Count   int                  `json:"count"`
	Results []types.SearchResult `json:"results"`
}

// HandleSearch handles GET /api/search?q=...&limit=N requests.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, ErrMissingQuery)
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, ErrBadRequest)
			return
		}
		limit = n
	}
	if limit > h.maxTopK {
		writeError(w, http.StatusBadRequest, ErrLimitExceeded)
		return
	}

	scored, err := h.deps.Search(r.Context(), query, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	results := make([]types.SearchResult, 0, len(scored))
	for i := range scored {
		results = append(results, types.SearchResultFromModel(&scored[i]))
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Success: true,
		Query:   query,
		Count:   len(results),
		Results: results,
	})
}
