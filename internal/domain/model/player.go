// Package model contains domain models passed between layers.
package model

import (
	"strings"

	"github.com/okian/lineup/internal/domain/stats"
)

// Player is a read-only snapshot of one pool member.
type Player struct {
	ID        string       // stable identifier, unique within a pool
	Name      string       // display name
	Stats     stats.Vector // missing attributes read as 0
	VoteCount int          // number of peer votes behind Stats
}

// NewPlayer builds a Player from named attributes. Unknown attribute keys
// are ignored and returned.
func NewPlayer(id, name string, attrs map[string]int) (Player, []string) {
	v, unknown := stats.FromMap(attrs)
	return Player{ID: strings.TrimSpace(id), Name: strings.TrimSpace(name), Stats: v}, unknown
}

// DisplayName returns Name, falling back to ID.
func (p Player) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}
