// Package repository holds per-position rankings of scored players.
package repository

import (
	"context"

	"github.com/okian/lineup/internal/domain/types"
)

// Store provides read/write access to one ranking.
type Store interface {
	// Put records the score of playerID, keeping the better of an existing
	// and the new score. It reports whether the ranking changed.
	Put(ctx context.Context, playerID, name string, score float64) (bool, error)

	// Rank returns the entry of playerID. Returns ErrNotFound if the player
	// was never put.
	Rank(ctx context.Context, playerID string) (types.Entry, error)

	// TopN returns up to n entries ordered by score desc, then by the order
	// players were first put.
	TopN(ctx context.Context, n int) ([]types.Entry, error)

	// All returns the whole ranking.
	All(ctx context.Context) []types.Entry

	// Count returns the number of ranked players.
	Count(ctx context.Context) int
}
