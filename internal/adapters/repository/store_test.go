package repository_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	repository "github.com/okian/davos/internal/adapters/repository"
	index "github.com/okian/davos/internal/domain/index"
	"github.com/okian/davos/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func buildSnapshot(t *testing.T, fixture bool, events ...model.Event) *repository.Snapshot {
	t.Helper()
	texts := make([]string, len(events))
	for i := range events {
		texts[i] = events[i].SearchableText()
	}
	fitted, err := index.NewVectorizer().Fit(texts)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	return repository.NewSnapshot(events, fitted, fixture)
}

func TestSnapshot(t *testing.T) {
	Convey("Given a snapshot over a small catalog", t, func() {
		snap := buildSnapshot(t, false,
			model.Event{ID: "E1", Title: "Quantum Horizons", Description: "qubits and error correction"},
			model.Event{ID: "E2", Title: "Ocean Economies", Description: "blue carbon markets"},
		)

		Convey("When reading catalog accessors", func() {
			Convey("Then events, ids and index stay aligned", func() {
				So(snap.Len(), ShouldEqual, 2)
				So(snap.IDs(), ShouldResemble, []string{"E1", "E2"})
				So(snap.Index().Len(), ShouldEqual, 2)
				So(snap.EventAt(1).ID, ShouldEqual, "E2")
				So(snap.Fixture(), ShouldBeFalse)
				So(snap.LoadedAt().IsZero(), ShouldBeFalse)
			})
		})

		Convey("When looking up events by id", func() {
			Convey("Then present ids resolve", func() {
				e, err := snap.EventByID("E1")
				So(err, ShouldBeNil)
				So(e.Title, ShouldEqual, "Quantum Horizons")
			})

			Convey("And missing ids report not found", func() {
				_, err := snap.EventByID("E-404")
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestAtomicStore(t *testing.T) {
	Convey("Given an empty atomic store", t, func() {
		store := repository.NewAtomicStore()

		Convey("When nothing has been published", func() {
			Convey("Then Current returns nil", func() {
				So(store.Current(), ShouldBeNil)
			})
		})

		Convey("When a snapshot is replaced", func() {
			first := buildSnapshot(t, true, model.Event{ID: "A", Title: "Alpha summit keynote"})
			second := buildSnapshot(t, false, model.Event{ID: "B", Title: "Beta workshop session"})
			store.Replace(first)
			store.Replace(second)

			Convey("Then readers observe the latest snapshot whole", func() {
				current := store.Current()
				So(current, ShouldEqual, second)
				So(current.Fixture(), ShouldBeFalse)
			})
		})

		Convey("When many readers race a writer", func() {
			base := buildSnapshot(t, false, model.Event{ID: "A", Title: "Alpha summit keynote"})
			next := buildSnapshot(t, false, model.Event{ID: "B", Title: "Beta workshop session"})
			store.Replace(base)

			var (
				wg   sync.WaitGroup
				torn atomic.Bool
			)
			for i := 0; i < 16; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for j := 0; j < 1000; j++ {
						snap := store.Current()
						if snap.Len() != snap.Index().Len() {
							torn.Store(true)
						}
					}
				}()
			}
			store.Replace(next)
			wg.Wait()

			Convey("Then no reader observed a torn snapshot", func() {
				So(torn.Load(), ShouldBeFalse)
				So(store.Current(), ShouldEqual, next)
			})
		})
	})
}
