package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/davos/internal/adapters/repository"
	service "github.com/okian/davos/internal/app"
	"github.com/okian/davos/internal/domain/explain"
	. "github.com/smartystreets/goconvey/convey"
)

func startFixtureService(t *testing.T) *service.Service {
	t.Helper()
	svc := service.New(service.WithEventsFile(filepath.Join(t.TempDir(), "missing.csv")))
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start service: %v", err)
	}
	t.Cleanup(svc.Stop)
	return svc
}

func TestService_Recommend(t *testing.T) {
	Convey("Given a service running on the fixture catalog", t, func() {
		svc := startFixtureService(t)
		ctx := context.Background()

		Convey("When recommending for an AI governance profile", func() {
			recs, resolved, err := svc.Recommend(ctx, "artificial intelligence governance policy", 5, nil)

			Convey("Then the AI governance session ranks first with a strong score", func() {
				So(err, ShouldBeNil)
				So(len(recs), ShouldBeGreaterThan, 0)
				So(recs[0].Event.ID, ShouldEqual, "WEF2026-001")
				So(recs[0].SimilarityScore, ShouldBeGreaterThan, 0.3)
			})

			Convey("And the explanation reflects the score band and topic overlap", func() {
				So(err, ShouldBeNil)
				expl := recs[0].Explanation
				strong := strings.HasPrefix(expl, explain.TierStrong) || strings.HasPrefix(expl, explain.TierHigh)
				So(strong, ShouldBeTrue)
				So(expl, ShouldContainSubstring, "Covers: ")
				So(recs[0].MatchedTopics, ShouldContain, "Artificial Intelligence")
				So(recs[0].MatchedTopics, ShouldContain, "Governance")
			})

			Convey("And scores are ordered descending with percentages attached", func() {
				So(err, ShouldBeNil)
				for i := 1; i < len(recs); i++ {
					So(recs[i].SimilarityScore, ShouldBeLessThanOrEqualTo, recs[i-1].SimilarityScore)
				}
				So(recs[0].MatchPercentage, ShouldBeGreaterThan, 30)
			})

			Convey("And the resolved profile keeps the raw text as search text", func() {
				So(err, ShouldBeNil)
				So(resolved.SearchText, ShouldEqual, "artificial intelligence governance policy")
				So(resolved.LinkedIn, ShouldBeFalse)
			})
		})

		Convey("When the profile shares no vocabulary with the catalog", func() {
			recs, _, err := svc.Recommend(ctx, "purple dragon unicorn tamer", 5, nil)

			Convey("Then the result is empty, not an error", func() {
				So(err, ShouldBeNil)
				So(recs, ShouldBeEmpty)
			})
		})

		Convey("When the top event is excluded", func() {
			recs, _, err := svc.Recommend(ctx, "artificial intelligence governance policy", 5, []string{"WEF2026-001"})

			Convey("Then it never appears in the result", func() {
				So(err, ShouldBeNil)
				for _, rec := range recs {
					So(rec.Event.ID, ShouldNotEqual, "WEF2026-001")
				}
			})
		})

		Convey("When the profile text is blank", func() {
			_, _, err := svc.Recommend(ctx, "   ", 5, nil)

			Convey("Then it is rejected as invalid input", func() {
				So(errors.Is(err, service.ErrEmptyProfile), ShouldBeTrue)
			})
		})

		Convey("When topK is not supplied", func() {
			recs, _, err := svc.Recommend(ctx, "climate finance sustainability technology", 0, nil)

			Convey("Then the configured default caps the result", func() {
				So(err, ShouldBeNil)
				So(len(recs), ShouldBeLessThanOrEqualTo, 5)
			})
		})
	})
}

func TestService_Search(t *testing.T) {
	Convey("Given a service running on the fixture catalog", t, func() {
		svc := startFixtureService(t)
		ctx := context.Background()

		Convey("When searching for a distinctive keyword", func() {
			results, err := svc.Search(ctx, "quantum computing", 5)

			Convey("Then the quantum session is found", func() {
				So(err, ShouldBeNil)
				So(len(results), ShouldBeGreaterThan, 0)
				So(results[0].Event.ID, ShouldEqual, "WEF2026-007")
				for i := 1; i < len(results); i++ {
					So(results[i].Score, ShouldBeLessThanOrEqualTo, results[i-1].Score)
				}
			})
		})

		Convey("When the query is blank", func() {
			_, err := svc.Search(ctx, "", 5)

			Convey("Then it is rejected as invalid input", func() {
				So(errors.Is(err, service.ErrEmptyQuery), ShouldBeTrue)
			})
		})
	})
}

func TestService_CatalogReads(t *testing.T) {
	Convey("Given a service running on the fixture catalog", t, func() {
		svc := startFixtureService(t)
		ctx := context.Background()

		Convey("When reading single events", func() {
			Convey("Then present ids resolve", func() {
				e, err := svc.Event(ctx, "WEF2026-003")
				So(err, ShouldBeNil)
				So(e.ID, ShouldEqual, "WEF2026-003")
			})

			Convey("And missing ids report not found", func() {
				_, err := svc.Event(ctx, "WEF2026-099")
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When listing the catalog", func() {
			events, err := svc.Events(ctx)

			Convey("Then all fixture events come back in load order", func() {
				So(err, ShouldBeNil)
				So(len(events), ShouldEqual, 12)
				So(events[0].ID, ShouldEqual, "WEF2026-001")
				So(svc.UsingFixtures(), ShouldBeTrue)
				So(svc.EventCount(), ShouldEqual, 12)
			})
		})

		Convey("When aggregating tracks", func() {
			tracks, err := svc.Tracks(ctx)

			Convey("Then counts cover the whole catalog, largest first", func() {
				So(err, ShouldBeNil)
				So(len(tracks), ShouldBeGreaterThan, 0)
				total := 0
				for i, tr := range tracks {
					total += tr.Count
					if i > 0 {
						So(tr.Count, ShouldBeLessThanOrEqualTo, tracks[i-1].Count)
					}
				}
				So(total, ShouldEqual, 12)
			})
		})

		Convey("When grouping venues", func() {
			venues, err := svc.Venues(ctx)

			Convey("Then every event belongs to exactly one venue group", func() {
				So(err, ShouldBeNil)
				So(len(venues), ShouldBeGreaterThan, 0)
				total := 0
				for _, v := range venues {
					So(v.Name, ShouldNotBeEmpty)
					total += len(v.Events)
				}
				So(total, ShouldEqual, 12)
			})
		})

		Convey("When filtering by track", func() {
			all, err := svc.Tracks(ctx)
			So(err, ShouldBeNil)
			events, err := svc.EventsByTrack(ctx, strings.ToUpper(all[0].Name))

			Convey("Then matching is case-insensitive", func() {
				So(err, ShouldBeNil)
				So(len(events), ShouldEqual, all[0].Count)
			})
		})
	})
}

func TestService_LoadCatalog(t *testing.T) {
	Convey("Given a running service", t, func() {
		svc := startFixtureService(t)
		ctx := context.Background()

		Convey("When loading a valid external catalog", func() {
			path := filepath.Join(t.TempDir(), "events.csv")
			csv := "id,title,description,topics,track\n" +
				"EXT-1,Fusion Power Briefing,tokamak milestones and grid integration,Energy;Fusion,Energy\n" +
				"EXT-2,Rural Fintech,mobile banking for smallholder farmers,Finance;Inclusion,Finance\n"
			So(os.WriteFile(path, []byte(csv), 0o600), ShouldBeNil)
			So(svc.LoadCatalog(ctx, path), ShouldBeNil)

			Convey("Then the snapshot is replaced wholesale", func() {
				So(svc.EventCount(), ShouldEqual, 2)
				So(svc.UsingFixtures(), ShouldBeFalse)

				results, err := svc.Search(ctx, "fusion", 5)
				So(err, ShouldBeNil)
				So(len(results), ShouldEqual, 1)
				So(results[0].Event.ID, ShouldEqual, "EXT-1")
			})

			Convey("And a later unreadable source degrades back to fixtures", func() {
				So(svc.LoadCatalog(ctx, filepath.Join(t.TempDir(), "gone.csv")), ShouldBeNil)
				So(svc.UsingFixtures(), ShouldBeTrue)
				So(svc.EventCount(), ShouldEqual, 12)

				recs, _, err := svc.Recommend(ctx, "artificial intelligence governance policy", 3, nil)
				So(err, ShouldBeNil)
				So(len(recs), ShouldBeGreaterThan, 0)
			})
		})
	})
}

func TestService_HistoryAndStats(t *testing.T) {
	Convey("Given a running service", t, func() {
		svc := startFixtureService(t)
		ctx := context.Background()

		Convey("When interactions happen", func() {
			_, _, err := svc.Recommend(ctx, "climate finance", 3, nil)
			So(err, ShouldBeNil)
			_, err = svc.Search(ctx, "health", 3)
			So(err, ShouldBeNil)

			Convey("Then they are recorded oldest first", func() {
				entries := svc.History(ctx)
				So(len(entries), ShouldEqual, 2)
				So(entries[0].Action, ShouldEqual, "recommend")
				So(entries[1].Action, ShouldEqual, "search")
				So(entries[0].Detail["profile"], ShouldEqual, "climate finance")
			})

			Convey("And stats reflect the catalog and log state", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldBeTrue)
				So(stats["events"], ShouldEqual, 12)
				So(stats["fixture_catalog"], ShouldBeTrue)
				So(stats["history_entries"], ShouldEqual, 2)
				So(stats["vocabulary"], ShouldBeGreaterThan, 0)
			})
		})
	})
}
