package stats_test

import (
	"testing"

	"github.com/okian/lineup/internal/domain/stats"
	. "github.com/smartystreets/goconvey/convey"
)

func TestVocabulary(t *testing.T) {
	Convey("Given the attribute vocabulary", t, func() {
		Convey("Then it should hold 28 distinct keys", func() {
			all := stats.All()
			So(len(all), ShouldEqual, 28)
			So(stats.Count, ShouldEqual, 28)

			seen := make(map[string]bool)
			for _, s := range all {
				So(seen[s.String()], ShouldBeFalse)
				seen[s.String()] = true
			}
		})

		Convey("Then every key should belong to exactly one category", func() {
			total := 0
			for _, c := range stats.Categories() {
				members := stats.Members(c)
				So(members, ShouldNotBeEmpty)
				for _, s := range members {
					So(s.Category(), ShouldEqual, c)
				}
				total += len(members)
			}
			So(total, ShouldEqual, stats.Count)
		})

		Convey("When parsing keys", func() {
			Convey("Then exact keys should resolve", func() {
				s, ok := stats.Parse("first_touch")
				So(ok, ShouldBeTrue)
				So(s, ShouldEqual, stats.FirstTouch)
			})

			Convey("Then case and separators should be tolerated", func() {
				s, ok := stats.Parse("  Off-The Ball ")
				So(ok, ShouldBeTrue)
				So(s, ShouldEqual, stats.OffTheBall)
			})

			Convey("Then unknown keys should be rejected", func() {
				_, ok := stats.Parse("charisma")
				So(ok, ShouldBeFalse)
			})
		})

		Convey("Then category names should be stable", func() {
			So(stats.Technical.String(), ShouldEqual, "technical")
			So(stats.Physical.String(), ShouldEqual, "physical")
		})
	})
}

func TestVector(t *testing.T) {
	Convey("Given a stat vector", t, func() {
		Convey("When built from a map with unknown keys", func() {
			v, unknown := stats.FromMap(map[string]int{
				"finishing": 90,
				"pace":      75,
				"charisma":  50,
				"aura":      10,
			})

			Convey("Then known keys should be set and unknown keys reported", func() {
				So(v.Get(stats.Finishing), ShouldEqual, 90)
				So(v.Get(stats.Pace), ShouldEqual, 75)
				So(unknown, ShouldResemble, []string{"aura", "charisma"})
			})

			Convey("Then missing keys should read as zero", func() {
				So(v.Get(stats.Tackling), ShouldEqual, 0)
			})
		})

		Convey("When reading clamped values", func() {
			v := stats.Vector{}.With(stats.Pace, 140).With(stats.Strength, -20).With(stats.Vision, 55)

			Convey("Then values should stay within [0,100]", func() {
				So(v.Clamped(stats.Pace), ShouldEqual, 100.0)
				So(v.Clamped(stats.Strength), ShouldEqual, 0.0)
				So(v.Clamped(stats.Vision), ShouldEqual, 55.0)
			})
		})

		Convey("When using With", func() {
			base := stats.Vector{}
			changed := base.With(stats.Heading, 60)

			Convey("Then the original should be untouched", func() {
				So(base.Get(stats.Heading), ShouldEqual, 0)
				So(changed.Get(stats.Heading), ShouldEqual, 60)
			})
		})

		Convey("When converting to a map", func() {
			m := stats.Vector{}.With(stats.Composure, 70).ToMap()

			Convey("Then every key should be present", func() {
				So(len(m), ShouldEqual, stats.Count)
				So(m["composure"], ShouldEqual, 70)
				So(m["marking"], ShouldEqual, 0)
			})
		})
	})
}
