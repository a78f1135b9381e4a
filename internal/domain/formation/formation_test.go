package formation_test

import (
	"errors"
	"testing"

	"github.com/okian/lineup/internal/domain/formation"
	p "github.com/okian/lineup/internal/domain/position"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFormation(t *testing.T) {
	Convey("Given a 4-4-2", t, func() {
		f, err := formation.New("4-4-2", map[p.Position]int{p.GK: 1, p.CB: 2, p.FB: 2, p.WM: 2, p.CM: 2, p.ST: 2})
		So(err, ShouldBeNil)

		Convey("Then it should field eleven", func() {
			So(f.Size(), ShouldEqual, 11)
			So(f.Count(p.CB), ShouldEqual, 2)
			So(f.Has(p.DM), ShouldBeFalse)
			So(f.Positions(), ShouldResemble, []p.Position{p.GK, p.CB, p.FB, p.CM, p.WM, p.ST})
			So(f.String(), ShouldEqual, "4-4-2 (GK1 CB2 FB2 CM2 WM2 ST2)")
		})

		Convey("Then copies should not share slots", func() {
			g := f
			g.Slots[p.CB] = 5
			So(f.Count(p.CB), ShouldEqual, 2)
		})
	})

	Convey("Given invalid formations", t, func() {
		cases := []struct {
			name  string
			slots map[p.Position]int
		}{
			{"", map[p.Position]int{p.GK: 1, p.CB: 4}},
			{"tiny", map[p.Position]int{p.GK: 1, p.ST: 1}},
			{"huge", map[p.Position]int{p.GK: 1, p.CB: 13}},
			{"three-wingers", map[p.Position]int{p.GK: 1, p.CB: 2, p.WR: 3}},
			{"negative", map[p.Position]int{p.GK: 1, p.CB: 6, p.ST: -1}},
		}
		for _, tc := range cases {
			_, err := formation.New(tc.name, tc.slots)
			So(errors.Is(err, formation.ErrInvalidFormation), ShouldBeTrue)
		}
	})
}

func TestSelect(t *testing.T) {
	Convey("Given a catalog with sizes 5, 7, 8 and 9", t, func() {
		c, err := formation.NewCatalog([]formation.Formation{
			mustNew("five", map[p.Position]int{p.GK: 1, p.CB: 2, p.CM: 1, p.ST: 1}),
			mustNew("seven", map[p.Position]int{p.GK: 1, p.CB: 3, p.CM: 2, p.ST: 1}),
			mustNew("eight", map[p.Position]int{p.GK: 1, p.CB: 3, p.WM: 2, p.CM: 1, p.ST: 1}),
			mustNew("nine", map[p.Position]int{p.GK: 1, p.CB: 3, p.WM: 2, p.CM: 2, p.ST: 1}),
		})
		So(err, ShouldBeNil)

		Convey("When selecting size 9", func() {
			f, err := c.Select(9)
			Convey("Then the exact formation should be returned", func() {
				So(err, ShouldBeNil)
				So(f.Name, ShouldEqual, "nine")
				So(f.Size(), ShouldEqual, 9)
			})
		})

		Convey("When selecting size 6", func() {
			f, err := c.Select(6)
			Convey("Then it should fall back to size 5", func() {
				So(err, ShouldBeNil)
				So(f.Size(), ShouldEqual, 5)
			})
		})

		Convey("When selecting size 13", func() {
			f, err := c.Select(13)
			So(err, ShouldBeNil)
			So(f.Size(), ShouldEqual, 9)
		})

		Convey("When selecting outside the supported range", func() {
			_, err := c.Select(4)
			So(errors.Is(err, formation.ErrUnsupportedSize), ShouldBeTrue)
			_, err = c.Select(14)
			So(errors.Is(err, formation.ErrUnsupportedSize), ShouldBeTrue)
		})

		Convey("Then the sizes should be listed ascending", func() {
			So(c.Sizes(), ShouldResemble, []int{5, 7, 8, 9})
		})
	})

	Convey("Given a catalog whose smallest size is 7", t, func() {
		c, _ := formation.NewCatalog([]formation.Formation{
			mustNew("seven", map[p.Position]int{p.GK: 1, p.CB: 3, p.CM: 2, p.ST: 1}),
		})
		_, err := c.Select(6)
		So(errors.Is(err, formation.ErrNoFormation), ShouldBeTrue)
	})
}

func TestDefaultCatalog(t *testing.T) {
	Convey("Given the built-in catalog", t, func() {
		c := formation.Default()

		Convey("Then every supported size should have an exact formation", func() {
			for size := formation.MinSize; size <= formation.MaxSize; size++ {
				list, err := c.Candidates(size)
				So(err, ShouldBeNil)
				So(list, ShouldNotBeEmpty)
				for _, f := range list {
					So(f.Size(), ShouldEqual, size)
					So(f.Count(p.GK), ShouldEqual, 1)
				}
			}
		})

		Convey("When looking up by name", func() {
			f, err := c.ByName(" 4-3-3 ")
			So(err, ShouldBeNil)
			So(f.Has(p.DM), ShouldBeTrue)

			_, err = c.ByName("1-1-1-1")
			So(errors.Is(err, formation.ErrUnknownFormation), ShouldBeTrue)
		})

		Convey("When extending the catalog", func() {
			extra := mustNew("5-3-2", map[p.Position]int{p.GK: 1, p.CB: 3, p.FB: 2, p.CM: 3, p.ST: 2})
			next, err := c.With(extra)
			So(err, ShouldBeNil)
			list, _ := next.Candidates(11)
			So(list[len(list)-1].Name, ShouldEqual, "5-3-2")

			Convey("Then the original catalog should be unchanged", func() {
				_, err := c.ByName("5-3-2")
				So(err, ShouldNotBeNil)
			})

			Convey("Then duplicate names should be rejected", func() {
				_, err := next.With(extra)
				So(errors.Is(err, formation.ErrDuplicateFormation), ShouldBeTrue)
			})
		})
	})
}

func mustNew(name string, slots map[p.Position]int) formation.Formation {
	f, err := formation.New(name, slots)
	if err != nil {
		panic(err)
	}
	return f
}
