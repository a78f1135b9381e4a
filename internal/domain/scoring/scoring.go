// Package scoring turns a stat vector into per-position fit scores.
package scoring

import (
	"math"
	"sort"

	"github.com/okian/lineup/internal/domain/archetype"
	"github.com/okian/lineup/internal/domain/position"
	"github.com/okian/lineup/internal/domain/stats"
)

// Default scoring configuration constants.
const (
	DefaultSpecialistMargin = 3.0
	maxScoreValue           = 100.0
)

// ArchetypeScore is the weighted mean of the clamped stats under a's weights.
// The result lies in [0,100]; an archetype with no positive weight scores 0.
func ArchetypeScore(v stats.Vector, a archetype.Archetype) float64 {
	var sum, total float64
	for _, s := range stats.All() {
		w := a.Weights[s]
		if w <= 0 {
			continue
		}
		sum += v.Clamped(s) * w
		total += w
	}
	if total == 0 {
		return 0
	}
	return math.Max(0, math.Min(maxScoreValue, sum/total))
}

// ZoneScores holds one fit score per position, always fully populated.
type ZoneScores [position.Count]float64

// Get returns the score for p, or 0 for an unknown position.
func (z ZoneScores) Get(p position.Position) float64 {
	if !p.Valid() {
		return 0
	}
	return z[p]
}

// Best returns the highest-scoring position. Ties go to the earlier position.
func (z ZoneScores) Best() (position.Position, float64) {
	return z.BestAmong(position.All())
}

// BestAmong is Best restricted to ps. It returns (0, 0) when ps is empty.
func (z ZoneScores) BestAmong(ps []position.Position) (position.Position, float64) {
	var (
		best  position.Position
		score = -1.0
	)
	for _, p := range ps {
		if s := z.Get(p); s > score {
			best, score = p, s
		}
	}
	if score < 0 {
		return 0, 0
	}
	return best, score
}

// PositionScore pairs a position with its fit score.
type PositionScore struct {
	Position position.Position
	Score    float64
}

// Ranked lists every position by descending score; ties keep pitch order.
func (z ZoneScores) Ranked() []PositionScore {
	out := make([]PositionScore, 0, position.Count)
	for _, p := range position.All() {
		out = append(out, PositionScore{Position: p, Score: z[p]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// Relative rescales scores for display: the best position maps to 100 and the
// others to max(100-(best-s), 100*s/best). Balancing never uses this view.
func (z ZoneScores) Relative() ZoneScores {
	var out ZoneScores
	_, best := z.Best()
	if best <= 0 {
		return out
	}
	for i, s := range z {
		if s >= best {
			out[i] = maxScoreValue
			continue
		}
		out[i] = math.Max(maxScoreValue-(best-s), maxScoreValue*s/best)
	}
	return out
}

// SpecialistRule decides when one position clearly dominates the rest.
// A zero Ratio selects the absolute margin convention.
type SpecialistRule struct {
	Margin float64
	Ratio  float64
}

// IsSpecialist applies the rule to the best and second-best scores.
func (r SpecialistRule) IsSpecialist(best, second float64) bool {
	if r.Ratio > 0 {
		return second <= best*r.Ratio
	}
	return best-second >= r.Margin
}

// Profile is the full scoring picture for one player.
type Profile struct {
	Zones ZoneScores
	// Archetypes holds the id of the best-matching archetype per position.
	Archetypes [position.Count]string
	Best       position.Position
	BestScore  float64
	Categories [stats.NumCategories]float64
	Specialist bool
}

// CategoryAverages returns the rounded mean stat per category. It is a
// display summary and plays no part in fit scores.
func CategoryAverages(v stats.Vector) [stats.NumCategories]float64 {
	var out [stats.NumCategories]float64
	for _, c := range stats.Categories() {
		members := stats.Members(c)
		if len(members) == 0 {
			continue
		}
		sum := 0.0
		for _, s := range members {
			sum += v.Clamped(s)
		}
		out[c] = math.Round(sum / float64(len(members)))
	}
	return out
}
