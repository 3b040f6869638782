// Package rank defines the contract for ordering catalog events by
// similarity to a query. Both profile-based recommendation and keyword
// search go through the same ranking primitive; there is deliberately no
// second scoring path.
package rank

import (
	"context"
	"fmt"
	"sort"

	"github.com/okian/davos/internal/domain/index"
)

// Query carries the ranking inputs.
type Query struct {
	// Text is the resolved search string; never empty by the time it
	// reaches the ranker.
	Text string
	// TopK caps the number of surviving candidates.
	TopK int
	// ExcludeIDs removes specific events from consideration.
	ExcludeIDs []string
}

// Match points back into the catalog by position, so callers can resolve
// the event reference without the ranker owning catalog data.
type Match struct {
	Position int
	Score    float64
}

// Ranker produces a ranked, filtered candidate list for a query.
type Ranker interface {
	// Rank scores every event vector in the fitted index against the
	// query. ids must be the catalog event ids in index order.
	Rank(ctx context.Context, fitted *index.Fitted, ids []string, q Query) ([]Match, error)
}

// CosineRanker implements Ranker with cosine similarity over the
// L2-normalized TF-IDF vectors of the fitted index.
type CosineRanker struct{}

// NewCosineRanker creates a new cosine ranker.
func NewCosineRanker() *CosineRanker {
	return &CosineRanker{}
}

// Rank computes one similarity per event, sorts descending and filters.
//
// Ordering is stable: events with equal scores keep their original
// catalog order. This is an explicit policy, not an implementation
// accident. Events with similarity <= 0 and excluded ids are dropped;
// if fewer than TopK events survive, fewer are returned. An empty result
// is a valid outcome, not an error.
func (r *CosineRanker) Rank(ctx context.Context, fitted *index.Fitted, ids []string, q Query) ([]Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("rank cancelled: %w", err)
	}

	queryVec, err := fitted.Transform(q.Text)
	if err != nil {
		return nil, fmt.Errorf("transform query: %w", err)
	}

	excluded := make(map[string]struct{}, len(q.ExcludeIDs))
	for _, id := range q.ExcludeIDs {
		excluded[id] = struct{}{}
	}

	matches := make([]Match, 0, fitted.Len())
	for i := 0; i < fitted.Len(); i++ {
		score := queryVec.Dot(fitted.DocVector(i))
		if score <= 0 {
			continue
		}
		if _, skip := excluded[ids[i]]; skip {
			continue
		}
		matches = append(matches, Match{Position: i, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if q.TopK > 0 && len(matches) > q.TopK {
		matches = matches[:q.TopK]
	}
	return matches, nil
}
