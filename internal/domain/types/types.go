// Package types contains the output shapes shared by the service and its
// renderers.
package types

// Entry is one row of a per-position ranking.
type Entry struct {
	Rank     int     `json:"rank"`
	PlayerID string  `json:"player_id"`
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
}

// LineupEntry is one filled or placeholder slot with its pitch coordinate.
type LineupEntry struct {
	PlayerID    string  `json:"player_id"`
	Name        string  `json:"name"`
	Position    string  `json:"position"`
	SlotIndex   int     `json:"slot_index"`
	Score       float64 `json:"score"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Placeholder bool    `json:"placeholder,omitempty"`
}

// OpenSlot is a formation slot left empty for lack of players.
type OpenSlot struct {
	Position  string `json:"position"`
	SlotIndex int    `json:"slot_index"`
}

// TeamSheet is one team's lineup ordered by position.
type TeamSheet struct {
	Team      string        `json:"team"`
	Formation string        `json:"formation"`
	Score     float64       `json:"score"`
	Players   []LineupEntry `json:"players"`
	Open      []OpenSlot    `json:"open,omitempty"`
}
