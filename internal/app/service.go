// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/okian/davos/internal/adapters/catalog"
	"github.com/okian/davos/internal/adapters/repository"
	"github.com/okian/davos/internal/adapters/tracklog"
	"github.com/okian/davos/internal/domain/explain"
	"github.com/okian/davos/internal/domain/index"
	"github.com/okian/davos/internal/domain/model"
	"github.com/okian/davos/internal/domain/profile"
	"github.com/okian/davos/internal/domain/rank"
	"github.com/okian/davos/internal/domain/types"
	"github.com/okian/davos/pkg/logger"
	"github.com/okian/davos/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultRecommendTopK   = 5
	defaultSearchTopK      = 10
	defaultVocabularyCap   = 5000
	defaultHistoryCapacity = 10000
	defaultEventsFile      = "davos_events.csv"

	// profileLogChars caps the profile text stored in the interaction log.
	profileLogChars = 100
)

// Service composes loader, index, ranker and explanation into the single
// public surface the HTTP API and CLI call into. It owns the catalog
// lifecycle and the interaction log.
type Service struct {
	// mu serializes catalog reloads; reads go through the atomic store
	// and never block on it.
	mu sync.Mutex

	// Core components
	store      repository.Store
	vectorizer *index.Vectorizer
	ranker     rank.Ranker
	resolver   profile.Resolver
	history    tracklog.Log
	loader     *catalog.Loader

	// Configuration
	eventsFile      string
	recommendTopK   int
	searchTopK      int
	vocabularyCap   int
	historyCapacity int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		eventsFile:      defaultEventsFile,
		recommendTopK:   defaultRecommendTopK,
		searchTopK:      defaultSearchTopK,
		vocabularyCap:   defaultVocabularyCap,
		historyCapacity: defaultHistoryCapacity,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the components and loads the initial catalog.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	started := s.started
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if started {
		s.mu.Unlock()
		return nil
	}

	s.store = repository.NewAtomicStore()
	s.vectorizer = index.NewVectorizer(index.WithMaxFeatures(s.vocabularyCap))
	if s.ranker == nil {
		s.ranker = rank.NewCosineRanker()
	}
	if s.resolver == nil {
		s.resolver = profile.NewKeywordResolver()
	}
	s.history = tracklog.NewInMemoryLog(tracklog.WithCapacity(s.historyCapacity))
	s.loader = catalog.NewLoader(catalog.WithLogger(s.logger))
	s.started = true
	s.mu.Unlock()

	if err := s.LoadCatalog(ctx, s.eventsFile); err != nil {
		return err
	}

	s.logger.Info(ctx, "recommendation service started",
		logger.String("eventsFile", s.eventsFile),
		logger.Int("recommendTopK", s.recommendTopK),
		logger.Int("searchTopK", s.searchTopK),
	)
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	if closer, ok := s.history.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	s.started = false
	s.logger.Info(context.Background(), "recommendation service stopped")
}

// LoadCatalog replaces the catalog wholesale from the CSV at path and
// re-fits the vector index. An unreadable source degrades to the fixture
// catalog; an unfittable catalog (no informative text at all) does too.
// The new (catalog, index) snapshot is published atomically: concurrent
// reads see either the old pair or the new pair, never a mix.
func (s *Service) LoadCatalog(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, fixture, err := s.loader.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	fitted, err := s.fit(events)
	if errors.Is(err, index.ErrEmptyVocabulary) && !fixture {
		s.logger.Warn(ctx, "catalog has no informative text; using fixture catalog",
			logger.String("path", path),
		)
		events, fixture = catalog.Fixtures(), true
		fitted, err = s.fit(events)
	}
	if err != nil {
		return fmt.Errorf("fit catalog: %w", err)
	}

	s.store.Replace(repository.NewSnapshot(events, fitted, fixture))

	metrics.RecordCatalogReload()
	metrics.UpdateCatalogSize(len(events))
	metrics.UpdateVocabularySize(fitted.VocabularySize())
	metrics.SetFixtureCatalog(fixture)

	s.logger.Info(ctx, "catalog loaded",
		logger.Int("events", len(events)),
		logger.Int("vocabulary", fitted.VocabularySize()),
		logger.Bool("fixture", fixture),
	)
	return nil
}

// fit builds the vector index over the events' searchable text.
func (s *Service) fit(events []model.Event) (*index.Fitted, error) {
	texts := make([]string, len(events))
	for i := range events {
		texts[i] = events[i].SearchableText()
	}

	start := time.Now()
	fitted, err := s.vectorizer.Fit(texts)
	if err != nil {
		return nil, err
	}
	metrics.RecordCatalogFitDuration(float64(time.Since(start).Milliseconds()))
	return fitted, nil
}

// snapshot returns the current catalog snapshot, loading the configured
// source (or fixtures) on first use.
func (s *Service) snapshot(ctx context.Context) (*repository.Snapshot, error) {
	if s.store == nil {
		return nil, ErrNotStarted
	}
	if snap := s.store.Current(); snap != nil {
		return snap, nil
	}
	if err := s.LoadCatalog(ctx, s.eventsFile); err != nil {
		return nil, err
	}
	return s.store.Current(), nil
}

// Recommend resolves the profile text to a search string, ranks the
// catalog against it and decorates the survivors with explanations.
// topK <= 0 selects the configured default. Events listed in excludeIDs
// never appear in the result. An empty result is a valid outcome.
func (s *Service) Recommend(ctx context.Context, profileText string, topK int, excludeIDs []string) ([]model.Recommendation, profile.Profile, error) {
	if strings.TrimSpace(profileText) == "" {
		return nil, profile.Profile{}, ErrEmptyProfile
	}
	if topK <= 0 {
		topK = s.recommendTopK
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, profile.Profile{}, err
	}

	resolved, err := s.resolver.Resolve(ctx, profileText)
	if err != nil {
		return nil, profile.Profile{}, fmt.Errorf("resolve profile: %w", err)
	}

	matches, err := s.rank(ctx, snap, rank.Query{
		Text:       resolved.SearchText,
		TopK:       topK,
		ExcludeIDs: excludeIDs,
	})
	if err != nil {
		return nil, resolved, err
	}

	recs := make([]model.Recommendation, 0, len(matches))
	for _, m := range matches {
		event := snap.EventAt(m.Position)
		// Topic overlap runs against the raw profile text, not the
		// resolved search string.
		matched := explain.MatchedTopics(profileText, event.Topics)
		recs = append(recs, model.Recommendation{
			Event:           event,
			SimilarityScore: m.Score,
			MatchPercentage: types.Percentage(m.Score),
			Explanation:     explain.Explain(event, m.Score, matched),
			MatchedTopics:   matched,
		})
	}

	metrics.RecordRecommendation()
	if len(recs) == 0 {
		metrics.RecordEmptyResult()
	}
	s.track(ctx, "recommend", map[string]any{
		"profile":             truncate(profileText, profileLogChars),
		"num_recommendations": len(recs),
	})

	return recs, resolved, nil
}

// Search ranks the catalog against a raw keyword query. It shares the
// ranking primitive with Recommend; only the explanation step differs.
func (s *Service) Search(ctx context.Context, query string, topK int) ([]model.ScoredEvent, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if topK <= 0 {
		topK = s.searchTopK
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	matches, err := s.rank(ctx, snap, rank.Query{Text: query, TopK: topK})
	if err != nil {
		return nil, err
	}

	results := make([]model.ScoredEvent, 0, len(matches))
	for _, m := range matches {
		results = append(results, model.ScoredEvent{
			Event: snap.EventAt(m.Position),
			Score: m.Score,
		})
	}

	metrics.RecordSearch()
	if len(results) == 0 {
		metrics.RecordEmptyResult()
	}
	s.track(ctx, "search", map[string]any{
		"query":   truncate(query, profileLogChars),
		"results": len(results),
	})

	return results, nil
}

// rank runs the shared ranking primitive and records its latency.
func (s *Service) rank(ctx context.Context, snap *repository.Snapshot, q rank.Query) ([]rank.Match, error) {
	start := time.Now()
	matches, err := s.ranker.Rank(ctx, snap.Index(), snap.IDs(), q)
	if err != nil {
		return nil, fmt.Errorf("rank: %w", err)
	}
	metrics.RecordRankLatency(float64(time.Since(start).Microseconds()) / 1000)
	return matches, nil
}

// Event returns the event with the given id. A missing id surfaces as
// repository.ErrNotFound, a normal negative result.
func (s *Service) Event(ctx context.Context, id string) (*model.Event, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.EventByID(id)
}

// Events returns the full catalog in load order.
func (s *Service) Events(ctx context.Context) ([]model.Event, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Events(), nil
}

// EventsByTrack returns all events whose track matches (case-insensitive).
func (s *Service) EventsByTrack(ctx context.Context, track string) ([]model.Event, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.Event
	for _, e := range snap.Events() {
		if strings.EqualFold(e.Track, track) {
			out = append(out, e)
		}
	}
	return out, nil
}

// EventsByLocation returns events whose location contains the given
// string (case-insensitive substring match).
func (s *Service) EventsByLocation(ctx context.Context, location string) ([]model.Event, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(location)
	var out []model.Event
	for _, e := range snap.Events() {
		if strings.Contains(strings.ToLower(e.Location), needle) {
			out = append(out, e)
		}
	}
	return out, nil
}

// Tracks returns the distinct tracks with their event counts, sorted by
// count descending; equal counts order alphabetically for determinism.
func (s *Service) Tracks(ctx context.Context) ([]types.TrackCount, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, e := range snap.Events() {
		counts[e.Track]++
	}

	tracks := make([]types.TrackCount, 0, len(counts))
	for name, count := range counts {
		tracks = append(tracks, types.TrackCount{Name: name, Count: count})
	}
	sort.Slice(tracks, func(i, j int) bool {
		if tracks[i].Count != tracks[j].Count {
			return tracks[i].Count > tracks[j].Count
		}
		return tracks[i].Name < tracks[j].Name
	})
	return tracks, nil
}

// Venues groups event ids by venue, in first-seen catalog order. The
// venue coordinates come from the first event hosted there.
func (s *Service) Venues(ctx context.Context) ([]types.VenueGroup, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int)
	var venues []types.VenueGroup
	for _, e := range snap.Events() {
		i, ok := byName[e.Venue]
		if !ok {
			i = len(venues)
			byName[e.Venue] = i
			venues = append(venues, types.VenueGroup{
				Name:    e.Venue,
				Address: e.Address,
				Lat:     e.Lat,
				Lon:     e.Lon,
			})
		}
		venues[i].Events = append(venues[i].Events, e.ID)
	}
	return venues, nil
}

// History returns the recorded interactions, oldest first.
func (s *Service) History(ctx context.Context) []tracklog.Entry {
	if s.history == nil {
		return nil
	}
	return s.history.Entries(ctx)
}

// UsingFixtures reports whether the current snapshot degraded to the
// built-in fixture catalog.
func (s *Service) UsingFixtures() bool {
	snap := s.currentSnapshot()
	return snap != nil && snap.Fixture()
}

// EventCount returns the number of events in the current catalog.
func (s *Service) EventCount() int {
	snap := s.currentSnapshot()
	if snap == nil {
		return 0
	}
	return snap.Len()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()

	stats := map[string]interface{}{
		"started":        started,
		"events_file":    s.eventsFile,
		"recommend_topk": s.recommendTopK,
		"search_topk":    s.searchTopK,
	}

	if snap := s.currentSnapshot(); snap != nil {
		stats["events"] = snap.Len()
		stats["vocabulary"] = snap.Index().VocabularySize()
		stats["fixture_catalog"] = snap.Fixture()
		stats["loaded_at"] = snap.LoadedAt()
	}
	if s.history != nil {
		n := s.history.Len(context.Background())
		stats["history_entries"] = n
		metrics.UpdateHistoryEntries(n)
	}
	return stats
}

// currentSnapshot is a nil-safe read of the published snapshot.
func (s *Service) currentSnapshot() *repository.Snapshot {
	if s.store == nil {
		return nil
	}
	return s.store.Current()
}

// track appends one interaction log entry. Logging failures are counted
// and swallowed: they must never fail the triggering call.
func (s *Service) track(ctx context.Context, action string, detail map[string]any) {
	if s.history == nil {
		return
	}
	if err := s.history.Append(ctx, action, detail); err != nil {
		metrics.RecordHistoryAppendFailure()
		s.logger.Debug(ctx, "interaction log append dropped",
			logger.String("action", action),
			logger.Error(err),
		)
	}
}

// truncate shortens s to at most n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
