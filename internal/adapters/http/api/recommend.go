// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	service "github.com/okian/davos/internal/app"
	"github.com/okian/davos/internal/domain/model"
	"github.com/okian/davos/internal/domain/profile"
	"github.com/okian/davos/internal/domain/types"
)

// RecommendDependencies defines the interface for recommendation requests.
type RecommendDependencies interface {
	Recommend(ctx context.Context, profileText string, topK int, excludeIDs []string) ([]model.Recommendation, profile.Profile, error)
}

// RecommendHandler handles recommendation requests.
type RecommendHandler struct {
	deps          RecommendDependencies
	maxTopK       int
	maxInputChars int
}

// NewRecommendHandler creates a new recommendation handler.
func NewRecommendHandler(deps RecommendDependencies, maxTopK, maxInputChars int) *RecommendHandler {
	return &RecommendHandler{deps: deps, maxTopK: maxTopK, maxInputChars: maxInputChars}
}

// recommendRequest mirrors the OpenAPI schema for POST /api/recommend.
type recommendRequest struct {
	Profile    string   `json:"profile"`
	TopK       int      `json:"top_k"`
	ExcludeIDs []string `json:"exclude_ids"`
}

// recommendResponse is the success envelope for POST /api/recommend.
type recommendResponse struct {
	Success         bool                   `json:"success"`
	IsLinkedIn      bool                   `json:"is_linkedin"`
	ProfileParsed   types.ProfileView      `json:"profile_parsed"`
	Count           int                    `json:"count"`
	Recommendations []types.Recommendation `json:"recommendations"`
}

// HandleRecommend handles POST /api/recommend requests.
func (h *RecommendHandler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrBadRequest)
		return
	}
	if req.Profile == "" {
		writeError(w, http.StatusBadRequest, ErrMissingProfile)
		return
	}
	if len(req.Profile) > h.maxInputChars {
		writeError(w, http.StatusBadRequest, ErrInputTooLong)
		return
	}
	if req.TopK > h.maxTopK {
		writeError(w, http.StatusBadRequest, ErrLimitExceeded)
		return
	}

	recs, resolved, err := h.deps.Recommend(r.Context(), req.Profile, req.TopK, req.ExcludeIDs)
	if err != nil {
		if errors.Is(err, service.ErrEmptyProfile) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]types.Recommendation, 0, len(recs))
	for i := range recs {
		out = append(out, types.RecommendationFromModel(&recs[i]))
	}

	writeJSON(w, http.StatusOK, recommendResponse{
		Success:         true,
		IsLinkedIn:      resolved.LinkedIn,
		ProfileParsed:   types.ProfileFromModel(&resolved),
		Count:           len(out),
		Recommendations: out,
	})
}
