// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/davos/internal/adapters/tracklog"
)

// HistoryDependencies defines the interface for interaction log reads.
type HistoryDependencies interface {
	History(ctx context.Context) []tracklog.Entry
}

// HistoryHandler handles interaction log requests.
type HistoryHandler struct {
	deps HistoryDependencies
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(deps HistoryDependencies) *HistoryHandler {
	return &HistoryHandler{deps: deps}
}

// historyResponse is the success envelope for GET /api/history.
type historyResponse struct {
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	History []tracklog.Entry `json:"history"`
}

// HandleHistory handles GET /api/history requests.
func (h *HistoryHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	entries := h.deps.History(r.Context())
	if entries == nil {
		entries = []tracklog.Entry{}
	}
	writeJSON(w, http.StatusOK, historyResponse{Success: true, Count: len(entries), History: entries})
}
