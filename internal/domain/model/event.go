// Package model contains domain models passed between layers.
package model

import "strings"

// Event represents a single conference session in the catalog.
// Events are created once per catalog load and never mutated afterwards;
// a reload replaces the whole catalog.
type Event struct {
	ID          string // unique, stable identifier, e.g. "WEF2026-001"
	Title       string
	Description string
	Topics      []string // ordered topic labels
	Location    string
	Venue       string
	StartTime   string
	EndTime     string
	Speakers    []string // ordered speaker names
	Capacity    int
	Track       string
	Lat         float64
	Lon         float64
	Address     string
	Website     string
}

// SearchableText concatenates the text fields used for vectorization.
// Order matters for bigram extraction: title, description, topics,
// speakers, track.
func (e *Event) SearchableText() string {
	parts := make([]string, 0, 3+len(e.Topics)+len(e.Speakers))
	parts = append(parts, e.Title, e.Description)
	parts = append(parts, e.Topics...)
	parts = append(parts, e.Speakers...)
	parts = append(parts, e.Track)
	return strings.Join(parts, " ")
}

// ScoredEvent pairs an event reference with its similarity to a query.
type ScoredEvent struct {
	Event *Event
	Score float64
}

// Recommendation is the full recommendation result for one event.
// It references the catalog event rather than copying it.
type Recommendation struct {
	Event           *Event
	SimilarityScore float64
	MatchPercentage float64 // SimilarityScore*100, rounded to one decimal
	Explanation     string
	MatchedTopics   []string
}
