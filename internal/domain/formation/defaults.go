package formation

import p "github.com/okian/lineup/internal/domain/position"

// DefaultFormations returns the built-in shapes, smallest first.
func DefaultFormations() []Formation {
	return []Formation{
		must("2-1-1", map[p.Position]int{p.GK: 1, p.CB: 2, p.CM: 1, p.ST: 1}),
		must("1-2-1", map[p.Position]int{p.GK: 1, p.CB: 1, p.WM: 2, p.ST: 1}),

		must("2-2-1", map[p.Position]int{p.GK: 1, p.CB: 2, p.CM: 2, p.ST: 1}),
		must("2-1-2", map[p.Position]int{p.GK: 1, p.CB: 2, p.CM: 1, p.ST: 2}),

		must("2-3-1", map[p.Position]int{p.GK: 1, p.CB: 2, p.WM: 2, p.CM: 1, p.ST: 1}),
		must("3-2-1", map[p.Position]int{p.GK: 1, p.CB: 3, p.CM: 2, p.ST: 1}),

		must("3-3-1", map[p.Position]int{p.GK: 1, p.CB: 3, p.WM: 2, p.CM: 1, p.ST: 1}),
		must("2-3-2", map[p.Position]int{p.GK: 1, p.CB: 2, p.CM: 1, p.WM: 2, p.ST: 2}),

		must("3-4-1", map[p.Position]int{p.GK: 1, p.CB: 3, p.WM: 2, p.CM: 2, p.ST: 1}),
		must("3-2-3", map[p.Position]int{p.GK: 1, p.CB: 3, p.CM: 2, p.WR: 2, p.ST: 1}),

		must("4-4-1", map[p.Position]int{p.GK: 1, p.CB: 2, p.FB: 2, p.WM: 2, p.CM: 2, p.ST: 1}),
		must("3-4-2", map[p.Position]int{p.GK: 1, p.CB: 3, p.WM: 2, p.CM: 2, p.ST: 2}),

		must("4-4-2", map[p.Position]int{p.GK: 1, p.CB: 2, p.FB: 2, p.WM: 2, p.CM: 2, p.ST: 2}),
		must("4-3-3", map[p.Position]int{p.GK: 1, p.CB: 2, p.FB: 2, p.DM: 1, p.CM: 2, p.WR: 2, p.ST: 1}),
		must("4-2-3-1", map[p.Position]int{p.GK: 1, p.CB: 2, p.FB: 2, p.DM: 2, p.AM: 1, p.WR: 2, p.ST: 1}),

		must("4-4-3", map[p.Position]int{p.GK: 1, p.CB: 2, p.FB: 2, p.WM: 2, p.CM: 2, p.WR: 2, p.ST: 1}),

		must("4-1-4-3", map[p.Position]int{p.GK: 1, p.CB: 2, p.FB: 2, p.DM: 1, p.CM: 2, p.WM: 2, p.WR: 2, p.ST: 1}),
	}
}
