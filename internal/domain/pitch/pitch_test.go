package pitch_test

import (
	"testing"

	"github.com/okian/lineup/internal/domain/formation"
	"github.com/okian/lineup/internal/domain/pitch"
	p "github.com/okian/lineup/internal/domain/position"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPlace(t *testing.T) {
	Convey("Given central positions", t, func() {
		Convey("Then a single slot should sit in the middle", func() {
			So(pitch.Place(p.ST, 0, 1, nil).X, ShouldEqual, 0.5)
		})

		Convey("Then three slots should spread symmetrically", func() {
			left := pitch.Place(p.CB, 0, 3, nil)
			mid := pitch.Place(p.CB, 1, 3, nil)
			right := pitch.Place(p.CB, 2, 3, nil)
			So(left.X, ShouldEqual, 0.25)
			So(mid.X, ShouldEqual, 0.5)
			So(right.X, ShouldEqual, 0.75)
			So(left.Y, ShouldEqual, p.CB.Meta().AbsoluteY)
		})

		Convey("Then out-of-range indices should be clamped", func() {
			So(pitch.Place(p.CB, 9, 3, nil).X, ShouldEqual, 0.75)
			So(pitch.Place(p.CB, -2, 3, nil).X, ShouldEqual, 0.25)
			So(pitch.Place(p.CB, 0, 0, nil).X, ShouldEqual, 0.5)
		})
	})

	Convey("Given wide positions", t, func() {
		Convey("Then two slots should be pinned to the flanks", func() {
			So(pitch.Place(p.WR, 0, 2, nil).X, ShouldEqual, pitch.LeftFlank)
			So(pitch.Place(p.WR, 1, 2, nil).X, ShouldEqual, pitch.RightFlank)
		})

		Convey("Then extra slots should collapse onto the right flank", func() {
			So(pitch.Place(p.FB, 4, 5, nil).X, ShouldEqual, pitch.RightFlank)
		})
	})

	Convey("Given central midfield", t, func() {
		base := p.CM.Meta().AbsoluteY
		withDM, _ := formation.Default().ByName("4-3-3")
		withAM, _ := formation.New("3-2-1-1", map[p.Position]int{p.GK: 1, p.CB: 3, p.CM: 2, p.AM: 1, p.ST: 1})
		flat, _ := formation.Default().ByName("4-4-2")

		Convey("Then a lone DM line should push CM forward", func() {
			So(pitch.Place(p.CM, 0, 2, &withDM).Y, ShouldAlmostEqual, base-pitch.MidfieldShift, 1e-12)
		})

		Convey("Then a lone AM line should drop CM deeper", func() {
			So(pitch.Place(p.CM, 0, 2, &withAM).Y, ShouldAlmostEqual, base+pitch.MidfieldShift, 1e-12)
		})

		Convey("Then a flat midfield should keep CM in place", func() {
			So(pitch.Place(p.CM, 0, 2, &flat).Y, ShouldEqual, base)
			So(pitch.Place(p.CM, 0, 2, nil).Y, ShouldEqual, base)
		})

		Convey("Then other positions should ignore the formation", func() {
			So(pitch.Place(p.DM, 0, 1, &withDM).Y, ShouldEqual, p.DM.Meta().AbsoluteY)
		})
	})

	Convey("Given every slot of every built-in formation", t, func() {
		for _, f := range formation.Default().All() {
			for _, pos := range f.Positions() {
				n := f.Count(pos)
				for i := 0; i < n; i++ {
					c := pitch.Place(pos, i, n, &f)
					So(c.X, ShouldBeBetweenOrEqual, 0.0, 1.0)
					So(c.Y, ShouldBeBetweenOrEqual, 0.0, 1.0)
				}
			}
		}
	})
}
