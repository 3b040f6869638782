// Package explain turns a similarity score and lexical topic overlap into
// a short, deterministic, human-readable justification.
package explain

import (
	"strings"

	"github.com/okian/davos/internal/domain/model"
)

// Relevance tier thresholds. These are a fixed policy, kept exactly for
// compatibility with downstream consumers that parse explanations.
const (
	tierHighThreshold     = 0.5
	tierStrongThreshold   = 0.3
	tierModerateThreshold = 0.1
)

// Tier labels.
const (
	TierHigh     = "Highly relevant to your interests"
	TierStrong   = "Strong alignment with your profile"
	TierModerate = "Moderate connection to your interests"
	TierSome     = "Some overlap with your interests"
)

// maxDisplayedTopics caps the topics listed in the explanation.
const maxDisplayedTopics = 3

// separator joins explanation fragments.
const separator = " | "

// Explain builds the explanation string for one recommended event.
// Fragment order: relevance tier, topic coverage (if any), speaker
// highlight (if any). The result is never empty.
func Explain(event *model.Event, score float64, matchedTopics []string) string {
	fragments := make([]string, 0, 3)
	fragments = append(fragments, tier(score))

	if len(matchedTopics) > 0 {
		shown := matchedTopics
		if len(shown) > maxDisplayedTopics {
			shown = shown[:maxDisplayedTopics]
		}
		fragments = append(fragments, "Covers: "+strings.Join(shown, ", "))
	}

	if len(event.Speakers) > 0 {
		fragments = append(fragments, "Featuring: "+event.Speakers[0])
	}

	return strings.Join(fragments, separator)
}

// tier bands the similarity score into one of four fixed labels.
func tier(score float64) string {
	switch {
	case score > tierHighThreshold:
		return TierHigh
	case score > tierStrongThreshold:
		return TierStrong
	case score > tierModerateThreshold:
		return TierModerate
	default:
		return TierSome
	}
}

// MatchedTopics returns the event topics that lexically overlap the raw
// query: a topic matches when any whitespace-separated query token
// appears as a case-insensitive substring of it.
func MatchedTopics(query string, topics []string) []string {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return nil
	}

	var matched []string
	for _, topic := range topics {
		lower := strings.ToLower(topic)
		for _, tok := range tokens {
			if strings.Contains(lower, tok) {
				matched = append(matched, topic)
				break
			}
		}
	}
	return matched
}
