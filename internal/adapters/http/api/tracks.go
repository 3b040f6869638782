// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/davos/internal/domain/types"
)

// TracksDependencies defines the interface for track aggregation.
type TracksDependencies interface {
	Tracks(ctx context.Context) ([]types.TrackCount, error)
}

// TracksHandler handles track listing requests.
type TracksHandler struct {
	deps TracksDependencies
}

// NewTracksHandler creates a new tracks handler.
func NewTracksHandler(deps TracksDependencies) *TracksHandler {
	return &TracksHandler{deps: deps}
}

// tracksResponse is the success envelope for GET /api/tracks.
type tracksResponse struct {
	Success bool               `json:"success"`
	Tracks  []types.TrackCount `json:"tracks"`
}

// HandleTracks handles GET /api/tracks requests.
func (h *TracksHandler) HandleTracks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	tracks, err := h.deps.Tracks(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, tracksResponse{Success: true, Tracks: tracks})
}
