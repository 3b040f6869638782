// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/okian/davos/internal/adapters/repository"
	"github.com/okian/davos/internal/domain/model"
	"github.com/okian/davos/internal/domain/types"
)

// EventsDependencies defines the interface for catalog reads.
type EventsDependencies interface {
	Event(ctx context.Context, id string) (*model.Event, error)
	Events(ctx context.Context) ([]model.Event, error)
}

// EventsHandler handles catalog listing and single-event lookups.
type EventsHandler struct {
	deps EventsDependencies
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(deps EventsDependencies) *EventsHandler {
	return &EventsHandler{deps: deps}
}

// eventsResponse is the success envelope for GET /api/events.
type eventsResponse struct {
	Success bool          `json:"success"`
	Count   int           `json:"count"`
	Events  []types.Event `json:"events"`
}

// eventResponse is the success envelope for GET /api/events/{id}.
type eventResponse struct {
	Success bool        `json:"success"`
	Event   types.Event `json:"event"`
}

// HandleListEvents handles GET /api/events requests.
func (h *EventsHandler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	events, err := h.deps.Events(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]types.Event, 0, len(events))
	for i := range events {
		out = append(out, types.FromModel(&events[i]))
	}
	writeJSON(w, http.StatusOK, eventsResponse{Success: true, Count: len(out), Events: out})
}

// HandleGetEvent handles GET /api/events/{id} requests.
func (h *EventsHandler) HandleGetEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/events/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, ErrBadRequest)
		return
	}

	event, err := h.deps.Event(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Errorf("event %s not found", id))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, eventResponse{Success: true, Event: types.FromModel(event)})
}
