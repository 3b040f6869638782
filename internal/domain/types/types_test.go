package types_test

import (
	"testing"

	json "github.com/goccy/go-json"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/davos/internal/domain/model"
	"github.com/okian/davos/internal/domain/profile"
	types "github.com/okian/davos/internal/domain/types"
)

func sampleEvent() *model.Event {
	return &model.Event{
		ID:          "EV-9",
		Title:       "Alpine Water Security",
		Description: "glacier melt and downstream supply",
		Topics:      []string{"Water", "Climate"},
		Location:    "Congress Centre",
		Venue:       "Parsenn Room",
		StartTime:   "2026-01-22 09:00",
		EndTime:     "2026-01-22 10:00",
		Speakers:    []string{"Dr. A. Brunner"},
		Capacity:    120,
		Track:       "Sustainability",
		Lat:         46.8,
		Lon:         9.83,
		Address:     "Talstrasse 49a",
		Website:     "https://example.org/ev9",
	}
}

func TestEventWireShape(t *testing.T) {
	Convey("Given a domain event", t, func() {
		wire := types.FromModel(sampleEvent())

		Convey("When encoding to JSON", func() {
			data, err := json.Marshal(wire)

			Convey("Then field names use the documented snake_case keys", func() {
				So(err, ShouldBeNil)
				s := string(data)
				So(s, ShouldContainSubstring, `"id":"EV-9"`)
				So(s, ShouldContainSubstring, `"start_time":"2026-01-22 09:00"`)
				So(s, ShouldContainSubstring, `"end_time":"2026-01-22 10:00"`)
				So(s, ShouldContainSubstring, `"lat":46.8`)
			})

			Convey("And decoding restores the identical value", func() {
				So(err, ShouldBeNil)
				var back types.Event
				So(json.Unmarshal(data, &back), ShouldBeNil)
				So(back, ShouldResemble, wire)
			})
		})
	})
}

func TestRecommendationWireShape(t *testing.T) {
	Convey("Given a domain recommendation", t, func() {
		rec := &model.Recommendation{
			Event:           sampleEvent(),
			SimilarityScore: 0.456,
			MatchPercentage: 45.6,
			Explanation:     "Strong alignment with your profile | Covers: Water",
			MatchedTopics:   []string{"Water"},
		}
		wire := types.RecommendationFromModel(rec)

		Convey("When encoding to JSON", func() {
			data, err := json.Marshal(wire)

			Convey("Then event fields are flattened next to match details", func() {
				So(err, ShouldBeNil)
				s := string(data)
				So(s, ShouldContainSubstring, `"id":"EV-9"`)
				So(s, ShouldContainSubstring, `"similarity_score":0.456`)
				So(s, ShouldContainSubstring, `"match_percentage":45.6`)
				So(s, ShouldContainSubstring, `"matched_topics":["Water"]`)
			})
		})
	})
}

func TestSearchResultFromModel(t *testing.T) {
	Convey("Given a scored event", t, func() {
		scored := &model.ScoredEvent{Event: sampleEvent(), Score: 0.305}

		Convey("When converting to the wire shape", func() {
			wire := types.SearchResultFromModel(scored)

			Convey("Then the score becomes a one-decimal percentage", func() {
				So(wire.Score, ShouldEqual, 30.5)
				So(wire.ID, ShouldEqual, "EV-9")
			})
		})
	})
}

func TestPercentage(t *testing.T) {
	Convey("Given raw similarity scores", t, func() {
		Convey("When converting to percentages", func() {
			Convey("Then rounding is to one decimal place", func() {
				So(types.Percentage(0), ShouldEqual, 0)
				So(types.Percentage(1), ShouldEqual, 100)
				So(types.Percentage(0.4567), ShouldEqual, 45.7)
				So(types.Percentage(0.33333), ShouldEqual, 33.3)
			})
		})
	})
}

func TestProfileFromModel(t *testing.T) {
	Convey("Given a resolved profile", t, func() {
		p := profile.Profile{
			DetectedSkills: []string{"climate"},
			DetectedRoles:  []string{"ceo"},
			Interests:      []string{"leadership"},
			LinkedIn:       true,
		}

		Convey("When converting to the wire shape", func() {
			view := types.ProfileFromModel(&p)

			Convey("Then all summary fields carry over", func() {
				So(view.Skills, ShouldResemble, []string{"climate"})
				So(view.Roles, ShouldResemble, []string{"ceo"})
				So(view.Interests, ShouldResemble, []string{"leadership"})
				So(view.LinkedIn, ShouldBeTrue)
			})
		})
	})
}
