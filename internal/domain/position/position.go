// Package position defines the playable pitch positions and their static
// metadata.
package position

import (
	"sort"
	"strings"
)

// MaxWideSlots caps how many players a wide position can hold at once
// (one per flank).
const MaxWideSlots = 2

// Position is one playable pitch position.
type Position uint8

// Positions, ordered from goal outwards.
const (
	GK Position = iota
	CB
	FB
	DM
	CM
	WM
	AM
	WR
	ST

	numPositions
)

// Count is the number of positions.
const Count = int(numPositions)

// Metadata describes a position.
type Metadata struct {
	Position Position
	Code     string
	Name     string
	// Central positions may host more than two players in a line; wide
	// positions are mirrored and capped at MaxWideSlots.
	Central bool
	// AbsoluteY is the pitch depth in [0,1]; 1.0 is the own goal line.
	AbsoluteY float64
	// Priority orders filling when headcount is scarce; lower fills first.
	Priority int
}

var table = [Count]Metadata{
	GK: {Position: GK, Code: "GK", Name: "Goalkeeper", Central: true, AbsoluteY: 0.94, Priority: 1},
	CB: {Position: CB, Code: "CB", Name: "Centre-Back", Central: true, AbsoluteY: 0.80, Priority: 2},
	FB: {Position: FB, Code: "FB", Name: "Full-Back", Central: false, AbsoluteY: 0.74, Priority: 5},
	DM: {Position: DM, Code: "DM", Name: "Defensive Midfielder", Central: true, AbsoluteY: 0.64, Priority: 6},
	CM: {Position: CM, Code: "CM", Name: "Central Midfielder", Central: true, AbsoluteY: 0.52, Priority: 4},
	WM: {Position: WM, Code: "WM", Name: "Wide Midfielder", Central: false, AbsoluteY: 0.50, Priority: 7},
	AM: {Position: AM, Code: "AM", Name: "Attacking Midfielder", Central: true, AbsoluteY: 0.38, Priority: 8},
	WR: {Position: WR, Code: "WR", Name: "Winger", Central: false, AbsoluteY: 0.26, Priority: 9},
	ST: {Position: ST, Code: "ST", Name: "Striker", Central: true, AbsoluteY: 0.16, Priority: 3},
}

// Valid reports whether p is a known position.
func (p Position) Valid() bool { return p < numPositions }

// Meta returns the static metadata of p. Unknown positions yield the zero
// Metadata.
func (p Position) Meta() Metadata {
	if !p.Valid() {
		return Metadata{Position: p, Code: "??"}
	}
	return table[p]
}

// String returns the short code, e.g. "CB".
func (p Position) String() string { return p.Meta().Code }

// All returns every position in pitch order.
func All() []Position {
	out := make([]Position, Count)
	for i := range out {
		out[i] = Position(i)
	}
	return out
}

// ByPriority returns every position ordered by fill priority.
func ByPriority() []Position {
	out := All()
	sort.SliceStable(out, func(i, j int) bool {
		return table[out[i]].Priority < table[out[j]].Priority
	})
	return out
}

// Parse resolves a short code (case-insensitive).
func Parse(code string) (Position, bool) {
	c := strings.ToUpper(strings.TrimSpace(code))
	for _, m := range table {
		if m.Code == c {
			return m.Position, true
		}
	}
	return 0, false
}
