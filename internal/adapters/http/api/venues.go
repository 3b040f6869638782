// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/davos/internal/domain/types"
)

// VenuesDependencies defines the interface for venue aggregation.
type VenuesDependencies interface {
	Venues(ctx context.Context) ([]types.VenueGroup, error)
}

// VenuesHandler handles venue listing requests.
type VenuesHandler struct {
	deps VenuesDependencies
}

// NewVenuesHandler creates a new venues handler.
func NewVenuesHandler(deps VenuesDependencies) *VenuesHandler {
	return &VenuesHandler{deps: deps}
}

// venuesResponse is the success envelope for GET /api/venues.
type venuesResponse struct {
	Success bool               `json:"success"`
	Count   int                `json:"count"`
	Venues  []types.VenueGroup `json:"venues"`
}

// HandleVenues handles GET /api/venues requests.
func (h *VenuesHandler) HandleVenues(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	venues, err := h.deps.Venues(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, venuesResponse{Success: true, Count: len(venues), Venues: venues})
}
