package balance

import (
	"github.com/okian/lineup/internal/domain/formation"
	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/internal/domain/position"
	"github.com/okian/lineup/internal/domain/scoring"
)

// Team identifies one side of a split.
type Team uint8

const (
	TeamA Team = iota
	TeamB
)

func (t Team) String() string {
	if t == TeamB {
		return "B"
	}
	return "A"
}

// Candidate is a pool member with precomputed zone scores.
type Candidate struct {
	Player model.Player
	Zones  scoring.ZoneScores
}

// Slot is one occupied position slot.
type Slot struct {
	PlayerID    string
	Name        string
	Position    position.Position
	SlotIndex   int
	Score       float64
	Placeholder bool
}

// OpenSlot is a formation slot left unfilled for lack of players.
type OpenSlot struct {
	Position  position.Position
	SlotIndex int
}

// Roster is one team's side of an assignment.
type Roster struct {
	Team      Team
	Formation formation.Formation
	// Lines holds the slots of each position, best fit first.
	Lines [position.Count][]Slot
	Open  []OpenSlot
	Score float64
}

// Players returns the filled slots in pitch order, without placeholders.
func (r Roster) Players() []Slot {
	var out []Slot
	for _, line := range r.Lines {
		for _, s := range line {
			if !s.Placeholder {
				out = append(out, s)
			}
		}
	}
	return out
}

// Filled is the number of real players on the roster.
func (r Roster) Filled() int {
	n := 0
	for _, line := range r.Lines {
		for _, s := range line {
			if !s.Placeholder {
				n++
			}
		}
	}
	return n
}

// At returns the slot at p and index i.
func (r Roster) At(p position.Position, i int) (Slot, bool) {
	if !p.Valid() || i < 0 || i >= len(r.Lines[p]) {
		return Slot{}, false
	}
	return r.Lines[p][i], true
}

// Assignment is the outcome of one balancing run.
type Assignment struct {
	Teams [2]Roster
	// Unplaced lists players left without a slot, in input order.
	Unplaced       []model.Player
	Gap            float64
	Balanced       bool
	SwapIterations int
	// Fingerprint is a name-based UUID of the canonical assignment; equal
	// assignments share it.
	Fingerprint string
}
