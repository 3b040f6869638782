package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	catalog "github.com/okian/davos/internal/adapters/catalog"
	. "github.com/smartystreets/goconvey/convey"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestLoader_Load(t *testing.T) {
	Convey("Given a catalog loader", t, func() {
		loader := catalog.NewLoader()
		ctx := context.Background()

		Convey("When the source file does not exist", func() {
			events, fixture, err := loader.Load(ctx, "/nonexistent/events.csv")

			Convey("Then it degrades to the fixture catalog", func() {
				So(err, ShouldBeNil)
				So(fixture, ShouldBeTrue)
				So(len(events), ShouldEqual, 12)
				So(events[0].ID, ShouldEqual, "WEF2026-001")
			})
		})

		Convey("When the source file is valid CSV", func() {
			path := writeCSV(t, "id,title,description,topics,speakers,track\n"+
				"EV-1,AI Summit,Frontier models,AI;Ethics,Ada Lovelace,Technology\n"+
				"EV-2,Climate Day,Net zero paths,Climate,Greta T,Sustainability\n")
			events, fixture, err := loader.Load(ctx, path)

			Convey("Then all rows are parsed in order", func() {
				So(err, ShouldBeNil)
				So(fixture, ShouldBeFalse)
				So(len(events), ShouldEqual, 2)
				So(events[0].ID, ShouldEqual, "EV-1")
				So(events[0].Topics, ShouldResemble, []string{"AI", "Ethics"})
				So(events[1].Speakers, ShouldResemble, []string{"Greta T"})
			})

			Convey("And omitted columns receive defaults", func() {
				So(err, ShouldBeNil)
				So(events[0].Location, ShouldEqual, "Davos Congress Centre")
				So(events[0].Venue, ShouldEqual, "Main Hall")
				So(events[0].Capacity, ShouldEqual, 100)
				So(events[0].Lat, ShouldAlmostEqual, 46.8027, 1e-9)
			})
		})

		Convey("When the source has duplicate and missing ids", func() {
			path := writeCSV(t, "id,title\n"+
				"EV-1,First\n"+
				"EV-1,Duplicate\n"+
				",No id\n"+
				"EV-2,Second\n")
			events, fixture, err := loader.Load(ctx, path)

			Convey("Then first occurrence wins and bad rows are skipped", func() {
				So(err, ShouldBeNil)
				So(fixture, ShouldBeFalse)
				So(len(events), ShouldEqual, 2)
				So(events[0].Title, ShouldEqual, "First")
				So(events[1].ID, ShouldEqual, "EV-2")
			})
		})

		Convey("When the source has no id column", func() {
			path := writeCSV(t, "title,track\nOrphan,General\n")
			events, fixture, err := loader.Load(ctx, path)

			Convey("Then it degrades to the fixture catalog", func() {
				So(err, ShouldBeNil)
				So(fixture, ShouldBeTrue)
				So(len(events), ShouldEqual, 12)
			})
		})

		Convey("When the source has a header but no rows", func() {
			path := writeCSV(t, "id,title\n")
			events, fixture, err := loader.Load(ctx, path)

			Convey("Then it degrades to the fixture catalog", func() {
				So(err, ShouldBeNil)
				So(fixture, ShouldBeTrue)
				So(len(events), ShouldEqual, 12)
			})
		})
	})
}

func TestFixtures(t *testing.T) {
	Convey("Given the built-in fixture catalog", t, func() {
		events := catalog.Fixtures()

		Convey("When inspecting the fixtures", func() {
			Convey("Then all twelve events carry searchable content", func() {
				So(len(events), ShouldEqual, 12)
				ids := make(map[string]struct{}, len(events))
				for _, e := range events {
					So(e.ID, ShouldNotBeEmpty)
					So(e.Title, ShouldNotBeEmpty)
					So(e.SearchableText(), ShouldNotBeEmpty)
					ids[e.ID] = struct{}{}
				}
				So(len(ids), ShouldEqual, 12)
			})

			Convey("And consecutive calls return independent copies", func() {
				other := catalog.Fixtures()
				other[0].Title = "mutated"
				So(events[0].Title, ShouldNotEqual, "mutated")
			})
		})
	})
}
