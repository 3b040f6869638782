// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/okian/davos/internal/domain/model"
	"github.com/okian/davos/internal/domain/profile"
	"github.com/okian/davos/internal/domain/types"
)

// Chat response types.
const (
	chatTypeLinkedIn = "linkedin_recommendations"
	chatTypeSearch   = "search_results"
	chatTypeProfile  = "recommendations"

	// chatTopK bounds the results returned from a chat turn.
	chatTopK = 5

	// chatMaxSkills bounds how many detected skills the reply names.
	chatMaxSkills = 3
)

// searchKeywords mark a chat message as a search query rather than a
// profile description. Matching is case-insensitive substring.
var searchKeywords = []string{"find", "search", "looking for", "where", "show me", "events about"}

// ChatDependencies defines the interface for the conversational endpoint.
type ChatDependencies interface {
	Recommend(ctx context.Context, profileText string, topK int, excludeIDs []string) ([]model.Recommendation, profile.Profile, error)
	Search(ctx context.Context, query string, topK int) ([]model.ScoredEvent, error)
}

// ChatHandler routes free-form messages to search or recommendation.
type ChatHandler struct {
	deps          ChatDependencies
	maxInputChars int
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(deps ChatDependencies, maxInputChars int) *ChatHandler {
	return &ChatHandler{deps: deps, maxInputChars: maxInputChars}
}

// chatRequest mirrors the OpenAPI schema for POST /api/chat.
type chatRequest struct {
	Message string `json:"message"`
}

// chatEvent is the trimmed event card a chat reply carries.
type chatEvent struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Venue           string  `json:"venue"`
	Address         string  `json:"address"`
	Track           string  `json:"track,omitempty"`
	MatchPercentage float64 `json:"match_percentage,omitempty"`
	Score           float64 `json:"score,omitempty"`
	Explanation     string  `json:"explanation,omitempty"`
	Website         string  `json:"website"`
	Lat             float64 `json:"lat"`
	Lon             float64 `json:"lon"`
}

// chatResponse is the success envelope for POST /api/chat.
type chatResponse struct {
	Success           bool               `json:"success"`
	Type              string             `json:"type"`
	Message           string             `json:"message"`
	Profile           *types.ProfileView `json:"profile,omitempty"`
	DetectedInterests []string           `json:"detected_interests,omitempty"`
	Recommendations   []chatEvent        `json:"recommendations,omitempty"`
	Results           []chatEvent        `json:"results,omitempty"`
}

// HandleChat handles POST /api/chat requests. The intent decision runs
// in order: LinkedIn URL, then search keywords, then profile text.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrBadRequest)
		return
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeError(w, http.StatusBadRequest, ErrMissingMessage)
		return
	}
	if len(message) > h.maxInputChars {
		writeError(w, http.StatusBadRequest, ErrInputTooLong)
		return
	}

	switch {
	case profile.IsLinkedInURL(message):
		h.replyLinkedIn(w, r, message)
	case isSearchMessage(message):
		h.replySearch(w, r, message)
	default:
		h.replyProfile(w, r, message)
	}
}

func (h *ChatHandler) replyLinkedIn(w http.ResponseWriter, r *http.Request, message string) {
	recs, resolved, err := h.deps.Recommend(r.Context(), message, chatTopK, nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	view := types.ProfileFromModel(&resolved)
	writeJSON(w, http.StatusOK, chatResponse{
		Success: true,
		Type:    chatTypeLinkedIn,
		Message: fmt.Sprintf(
			"Found your LinkedIn profile! Based on your background in %s, here are your top recommendations:",
			strings.Join(firstN(resolved.DetectedSkills, chatMaxSkills), ", "),
		),
		Profile:         &view,
		Recommendations: chatRecommendations(recs),
	})
}

func (h *ChatHandler) replySearch(w http.ResponseWriter, r *http.Request, message string) {
	query := extractQuery(message)

	scored, err := h.deps.Search(r.Context(), query, chatTopK)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	results := make([]chatEvent, 0, len(scored))
	for _, s := range scored {
		results = append(results, chatEvent{
			ID:      s.Event.ID,
			Title:   s.Event.Title,
			Venue:   s.Event.Venue,
			Address: s.Event.Address,
			Track:   s.Event.Track,
			Score:   types.Percentage(s.Score),
			Website: s.Event.Website,
			Lat:     s.Event.Lat,
			Lon:     s.Event.Lon,
		})
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Success: true,
		Type:    chatTypeSearch,
		Message: fmt.Sprintf("Found %d events matching '%s':", len(results), query),
		Results: results,
	})
}

func (h *ChatHandler) replyProfile(w http.ResponseWriter, r *http.Request, message string) {
	recs, resolved, err := h.deps.Recommend(r.Context(), message, chatTopK, nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	intro := "Based on your interests"
	if len(resolved.DetectedSkills) > 0 {
		intro = "Based on your interest in " + strings.Join(firstN(resolved.DetectedSkills, chatMaxSkills), ", ")
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Success:           true,
		Type:              chatTypeProfile,
		Message:           intro + ", here are your personalized recommendations:",
		DetectedInterests: resolved.DetectedSkills,
		Recommendations:   chatRecommendations(recs),
	})
}

// isSearchMessage reports whether the message carries a search keyword.
func isSearchMessage(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range searchKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// extractQuery strips the search keywords out of the message and returns
// the remaining text as the query.
func extractQuery(message string) string {
	query := strings.ToLower(message)
	for _, kw := range searchKeywords {
		query = strings.ReplaceAll(query, kw, "")
	}
	return strings.TrimSpace(query)
}

func chatRecommendations(recs []model.Recommendation) []chatEvent {
	out := make([]chatEvent, 0, len(recs))
	for _, rec := range recs {
		out = append(out, chatEvent{
			ID:              rec.Event.ID,
			Title:           rec.Event.Title,
			Venue:           rec.Event.Venue,
			Address:         rec.Event.Address,
			Track:           rec.Event.Track,
			MatchPercentage: rec.MatchPercentage,
			Explanation:     rec.Explanation,
			Website:         rec.Event.Website,
			Lat:             rec.Event.Lat,
			Lon:             rec.Event.Lon,
		})
	}
	return out
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
