// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/okian/davos/internal/adapters/tracklog"
	"github.com/okian/davos/internal/domain/model"
	"github.com/okian/davos/internal/domain/profile"
	"github.com/okian/davos/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Recommend ranks the catalog against profile text. topK <= 0
	// selects the service default.
	Recommend(ctx context.Context, profileText string, topK int, excludeIDs []string) ([]model.Recommendation, profile.Profile, error)

	// Search ranks the catalog against a raw keyword query.
	Search(ctx context.Context, query string, topK int) ([]model.ScoredEvent, error)

	// Read operations over the current catalog snapshot.
	Event(ctx context.Context, id string) (*model.Event, error)
	Events(ctx context.Context) ([]model.Event, error)
	Tracks(ctx context.Context) ([]types.TrackCount, error)
	Venues(ctx context.Context) ([]types.VenueGroup, error)

	// History returns the recorded interactions, oldest first.
	History(ctx context.Context) []tracklog.Entry

	// EventCount and UsingFixtures feed the health endpoint.
	EventCount() int
	UsingFixtures() bool
}

// Request validation bounds.
const (
	// defaultMaxTopK bounds how many results a single request may ask for.
	defaultMaxTopK = 50

	// defaultMaxInputChars bounds profile and chat message length.
	defaultMaxInputChars = 8192
)

// Server wires HTTP routes for the business API.
type Server struct {
	recommendHandler *RecommendHandler
	searchHandler    *SearchHandler
	eventsHandler    *EventsHandler
	tracksHandler    *TracksHandler
	venuesHandler    *VenuesHandler
	chatHandler      *ChatHandler
	historyHandler   *HistoryHandler
	statsHandler     *StatsHandler
	healthHandler    *HealthHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...ServerOption) *Server {
	cfg := serverConfig{maxTopK: defaultMaxTopK, maxInputChars: defaultMaxInputChars}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Server{
		recommendHandler: NewRecommendHandler(deps, cfg.maxTopK, cfg.maxInputChars),
		searchHandler:    NewSearchHandler(deps, cfg.maxTopK),
		eventsHandler:    NewEventsHandler(deps),
		tracksHandler:    NewTracksHandler(deps),
		venuesHandler:    NewVenuesHandler(deps),
		chatHandler:      NewChatHandler(deps, cfg.maxInputChars),
		historyHandler:   NewHistoryHandler(deps),
		statsHandler:     NewStatsHandler(statsProvider),
		healthHandler:    NewHealthHandler(deps),
	}
}

// serverConfig holds tunable server settings.
type serverConfig struct {
	maxTopK       int
	maxInputChars int
}

// ServerOption adjusts server construction.
type ServerOption func(*serverConfig)

// WithMaxTopK bounds the per-request result count.
func WithMaxTopK(n int) ServerOption {
	return func(c *serverConfig) {
		if n > 0 {
			c.maxTopK = n
		}
	}
}

// WithMaxInputChars bounds accepted profile and chat message length.
func WithMaxInputChars(n int) ServerOption {
	return func(c *serverConfig) {
		if n > 0 {
			c.maxInputChars = n
		}
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/recommend", MetricsMiddleware(s.recommendHandler.HandleRecommend, "recommend"))
	mux.HandleFunc("/api/search", MetricsMiddleware(s.searchHandler.HandleSearch, "search"))
	mux.HandleFunc("/api/events", MetricsMiddleware(s.eventsHandler.HandleListEvents, "events"))
	mux.HandleFunc("/api/events/", MetricsMiddleware(s.eventsHandler.HandleGetEvent, "event"))
	mux.HandleFunc("/api/tracks", MetricsMiddleware(s.tracksHandler.HandleTracks, "tracks"))
	mux.HandleFunc("/api/venues", MetricsMiddleware(s.venuesHandler.HandleVenues, "venues"))
	mux.HandleFunc("/api/chat", MetricsMiddleware(s.chatHandler.HandleChat, "chat"))
	mux.HandleFunc("/api/history", MetricsMiddleware(s.historyHandler.HandleHistory, "history"))
}

// errorResponse is the uniform failure envelope.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Success: false, Error: msg})
}
