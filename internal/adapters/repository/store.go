// Package repository holds the current catalog snapshot and publishes
// replacements atomically. Readers grab a snapshot reference and work
// against it lock-free; a reload swaps in an entirely new snapshot, so a
// request can never observe a catalog and index that are out of sync.
package repository

import (
	"sync/atomic"
	"time"

	"github.com/okian/davos/internal/domain/index"
	"github.com/okian/davos/internal/domain/model"
)

// Snapshot is one immutable (catalog, fitted index) pair. Never mutate a
// published snapshot; build a new one and Replace it.
type Snapshot struct {
	events   []model.Event
	ids      []string
	byID     map[string]int
	index    *index.Fitted
	fixture  bool
	loadedAt time.Time
}

// NewSnapshot builds a snapshot over events and their fitted index.
// fixture marks a catalog that fell back to the built-in fixture set.
func NewSnapshot(events []model.Event, fitted *index.Fitted, fixture bool) *Snapshot {
	s := &Snapshot{
		events:   events,
		ids:      make([]string, len(events)),
		byID:     make(map[string]int, len(events)),
		index:    fitted,
		fixture:  fixture,
		loadedAt: time.Now(),
	}
	for i := range events {
		s.ids[i] = events[i].ID
		s.byID[events[i].ID] = i
	}
	return s
}

// Events returns the catalog in load order. Callers must treat the slice
// as read-only.
func (s *Snapshot) Events() []model.Event { return s.events }

// IDs returns event ids in catalog order, aligned with Index positions.
func (s *Snapshot) IDs() []string { return s.ids }

// Index returns the fitted vector index over this catalog.
func (s *Snapshot) Index() *index.Fitted { return s.index }

// Fixture reports whether this snapshot degraded to fixture data.
func (s *Snapshot) Fixture() bool { return s.fixture }

// LoadedAt reports when the snapshot was built.
func (s *Snapshot) LoadedAt() time.Time { return s.loadedAt }

// Len returns the number of events in the catalog.
func (s *Snapshot) Len() int { return len(s.events) }

// EventAt returns a read-only reference to the event at catalog position i.
func (s *Snapshot) EventAt(i int) *model.Event { return &s.events[i] }

// EventByID looks up an event by id. A missing id is a normal negative
// result, reported via ErrNotFound.
func (s *Snapshot) EventByID(id string) (*model.Event, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s.events[i], nil
}

// Store publishes catalog snapshots to concurrent readers.
type Store interface {
	// Current returns the latest published snapshot, or nil before the
	// first Replace.
	Current() *Snapshot

	// Replace atomically publishes a new snapshot.
	Replace(s *Snapshot)
}

// AtomicStore implements Store with an atomically swapped pointer:
// single writer, many lock-free readers.
type AtomicStore struct {
	current atomic.Pointer[Snapshot]
}

// NewAtomicStore creates an empty store.
func NewAtomicStore() *AtomicStore {
	return &AtomicStore{}
}

// Current implements Store.
func (a *AtomicStore) Current() *Snapshot {
	return a.current.Load()
}

// Replace implements Store.
func (a *AtomicStore) Replace(s *Snapshot) {
	a.current.Store(s)
}
