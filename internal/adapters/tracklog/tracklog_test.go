package tracklog_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	tracklog "github.com/okian/davos/internal/adapters/tracklog"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryLog_Append(t *testing.T) {
	Convey("Given an in-memory interaction log", t, func() {
		log := tracklog.NewInMemoryLog()
		ctx := context.Background()

		Convey("When appending entries", func() {
			So(log.Append(ctx, "recommend", map[string]any{"profile": "ai researcher"}), ShouldBeNil)
			So(log.Append(ctx, "search", map[string]any{"query": "climate"}), ShouldBeNil)

			Convey("Then entries come back oldest first with identity and time", func() {
				entries := log.Entries(ctx)
				So(len(entries), ShouldEqual, 2)
				So(entries[0].Action, ShouldEqual, "recommend")
				So(entries[1].Action, ShouldEqual, "search")
				So(entries[0].ID, ShouldNotBeEmpty)
				So(entries[0].ID, ShouldNotEqual, entries[1].ID)
				So(entries[0].Timestamp.IsZero(), ShouldBeFalse)
				So(log.Len(ctx), ShouldEqual, 2)
			})

			Convey("And returned slices are copies", func() {
				entries := log.Entries(ctx)
				entries[0].Action = "mutated"
				So(log.Entries(ctx)[0].Action, ShouldEqual, "recommend")
			})
		})

		Convey("When the log is closed", func() {
			So(log.Append(ctx, "recommend", nil), ShouldBeNil)
			So(log.Close(), ShouldBeNil)

			Convey("Then appends fail but reads keep working", func() {
				err := log.Append(ctx, "search", nil)
				So(errors.Is(err, tracklog.ErrClosed), ShouldBeTrue)
				So(log.Len(ctx), ShouldEqual, 1)
			})
		})
	})
}

func TestInMemoryLog_Capacity(t *testing.T) {
	Convey("Given a log with a tiny capacity", t, func() {
		log := tracklog.NewInMemoryLog(tracklog.WithCapacity(3))
		ctx := context.Background()

		Convey("When appending past capacity", func() {
			for _, action := range []string{"a", "b", "c", "d", "e"} {
				So(log.Append(ctx, action, nil), ShouldBeNil)
			}

			Convey("Then the oldest entries are dropped", func() {
				entries := log.Entries(ctx)
				So(len(entries), ShouldEqual, 3)
				So(entries[0].Action, ShouldEqual, "c")
				So(entries[2].Action, ShouldEqual, "e")
			})
		})
	})
}

func TestInMemoryLog_Concurrency(t *testing.T) {
	Convey("Given a log appended to from many goroutines", t, func() {
		log := tracklog.NewInMemoryLog()
		ctx := context.Background()

		const (
			writers = 8
			perGoro = 100
		)

		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < perGoro; j++ {
					_ = log.Append(ctx, "recommend", nil)
				}
			}()
		}
		wg.Wait()

		Convey("When all writers finish", func() {
			Convey("Then no entry was lost or corrupted", func() {
				So(log.Len(ctx), ShouldEqual, writers*perGoro)
				for _, e := range log.Entries(ctx) {
					So(e.Action, ShouldEqual, "recommend")
				}
			})
		})
	})
}
