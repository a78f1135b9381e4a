// Package pitch maps position slots to normalized pitch coordinates for
// display. Nothing here feeds scoring or balancing.
package pitch

import (
	"math"

	"github.com/okian/lineup/internal/domain/formation"
	"github.com/okian/lineup/internal/domain/position"
)

// Layout constants. Y grows toward the team's own goal line.
const (
	LeftFlank  = 1.0 / 6
	RightFlank = 5.0 / 6
	Center     = 0.5
	// MidfieldShift moves CM away from a lone DM or AM line.
	MidfieldShift = 0.06
)

// Coordinate is a point in [0,1]x[0,1].
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Place returns the coordinate of slot i out of n at pos. f may be nil; it
// is only consulted for the central midfield shift. Out-of-range indices
// are clamped.
func Place(pos position.Position, i, n int, f *formation.Formation) Coordinate {
	return Coordinate{X: x(pos, i, n), Y: y(pos, f)}
}

func x(pos position.Position, i, n int) float64 {
	if n < 1 {
		n = 1
	}
	if !pos.Meta().Central {
		if n > position.MaxWideSlots {
			n = position.MaxWideSlots
		}
		if n == 1 {
			return LeftFlank
		}
		if clampInt(i, 0, n-1) == 0 {
			return LeftFlank
		}
		return RightFlank
	}
	i = clampInt(i, 0, n-1)
	return float64(i+1) / float64(n+1)
}

func y(pos position.Position, f *formation.Formation) float64 {
	if !pos.Valid() {
		return Center
	}
	v := pos.Meta().AbsoluteY
	if pos == position.CM && f != nil {
		dm, am := f.Has(position.DM), f.Has(position.AM)
		switch {
		case dm && !am:
			v -= MidfieldShift
		case am && !dm:
			v += MidfieldShift
		}
	}
	return clamp(v, 0, 1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
