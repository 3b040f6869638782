package service

import (
	"github.com/okian/davos/internal/domain/profile"
	"github.com/okian/davos/internal/domain/rank"
	"github.com/okian/davos/pkg/logger"
)

// Option configures the Service.
type Option func(*Service)

// WithLogger sets the logger used by the service and its components.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithEventsFile sets the CSV path the catalog loads from.
func WithEventsFile(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.eventsFile = path
		}
	}
}

// WithResolver sets the profile resolver.
func WithResolver(r profile.Resolver) Option {
	return func(s *Service) {
		if r != nil {
			s.resolver = r
		}
	}
}

// WithRanker sets the ranking strategy.
func WithRanker(r rank.Ranker) Option {
	return func(s *Service) {
		if r != nil {
			s.ranker = r
		}
	}
}

// WithRecommendTopK sets the default result count for recommendations.
func WithRecommendTopK(k int) Option {
	return func(s *Service) {
		if k > 0 {
			s.recommendTopK = k
		}
	}
}

// WithSearchTopK sets the default result count for keyword search.
func WithSearchTopK(k int) Option {
	return func(s *Service) {
		if k > 0 {
			s.searchTopK = k
		}
	}
}

// WithVocabularyCap bounds the fitted vocabulary size.
func WithVocabularyCap(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.vocabularyCap = n
		}
	}
}

// WithHistoryCapacity bounds the interaction log.
func WithHistoryCapacity(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.historyCapacity = n
		}
	}
}
