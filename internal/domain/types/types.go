// Package types contains the wire shapes returned by the API layer.
package types

import (
	"math"

	"github.com/okian/davos/internal/domain/model"
	"github.com/okian/davos/internal/domain/profile"
)

// Event mirrors the flat event record exposed over the API.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
	Location    string   `json:"location"`
	Venue       string   `json:"venue"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Speakers    []string `json:"speakers"`
	Capacity    int      `json:"capacity"`
	Track       string   `json:"track"`
	Lat         float64  `json:"lat"`
	Lon         float64  `json:"lon"`
	Address     string   `json:"address"`
	Website     string   `json:"website"`
}

// Recommendation flattens one recommended event plus its match details.
type Recommendation struct {
	Event
	SimilarityScore float64  `json:"similarity_score"`
	MatchPercentage float64  `json:"match_percentage"`
	Explanation     string   `json:"explanation"`
	MatchedTopics   []string `json:"matched_topics"`
}

// SearchResult is one keyword-search hit; Score is a percentage rounded
// to one decimal, mirroring the recommendation match percentage.
type SearchResult struct {
	Event
	Score float64 `json:"score"`
}

// TrackCount reports how many events belong to a track.
type TrackCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// VenueGroup lists the events hosted at one venue.
type VenueGroup struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Lat     float64  `json:"lat"`
	Lon     float64  `json:"lon"`
	Events  []string `json:"events"`
}

// ProfileView is the resolved-profile summary attached to
// recommendation responses.
type ProfileView struct {
	Skills    []string `json:"skills"`
	Roles     []string `json:"roles,omitempty"`
	Interests []string `json:"interests"`
	LinkedIn  bool     `json:"linkedin"`
}

// ProfileFromModel converts a resolved profile to its wire shape.
func ProfileFromModel(p *profile.Profile) ProfileView {
	return ProfileView{
		Skills:    p.DetectedSkills,
		Roles:     p.DetectedRoles,
		Interests: p.Interests,
		LinkedIn:  p.LinkedIn,
	}
}

// FromModel converts a domain event to its wire shape.
func FromModel(e *model.Event) Event {
	return Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Topics:      e.Topics,
		Location:    e.Location,
		Venue:       e.Venue,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Speakers:    e.Speakers,
		Capacity:    e.Capacity,
		Track:       e.Track,
		Lat:         e.Lat,
		Lon:         e.Lon,
		Address:     e.Address,
		Website:     e.Website,
	}
}

// RecommendationFromModel converts a domain recommendation to its wire shape.
func RecommendationFromModel(r *model.Recommendation) Recommendation {
	return Recommendation{
		Event:           FromModel(r.Event),
		SimilarityScore: r.SimilarityScore,
		MatchPercentage: r.MatchPercentage,
		Explanation:     r.Explanation,
		MatchedTopics:   r.MatchedTopics,
	}
}

// SearchResultFromModel converts a scored event to its wire shape.
func SearchResultFromModel(s *model.ScoredEvent) SearchResult {
	return SearchResult{
		Event: FromModel(s.Event),
		Score: Percentage(s.Score),
	}
}

// Percentage converts a [0,1] similarity to a percentage rounded to one decimal.
func Percentage(score float64) float64 {
	return math.Round(score*1000) / 10
}
