// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/davos/pkg/metrics"
)

// HealthDependencies feeds the health endpoint.
type HealthDependencies interface {
	EventCount() int
	UsingFixtures() bool
}

// HealthHandler handles health check and metrics requests.
type HealthHandler struct {
	deps HealthDependencies
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(deps HealthDependencies) *HealthHandler {
	return &HealthHandler{deps: deps}
}

// healthResponse is the body for GET /healthz.
type healthResponse struct {
	Status       string `json:"status"`
	EventsLoaded int    `json:"events_loaded"`
	Fixture      bool   `json:"fixture_catalog"`
}

// HandleHealth handles GET /healthz requests.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:       "healthy",
		EventsLoaded: h.deps.EventCount(),
		Fixture:      h.deps.UsingFixtures(),
	})
}

// HandleMetrics serves Prometheus metrics from the custom registry.
func (h *HealthHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}).ServeHTTP(w, r)
}
