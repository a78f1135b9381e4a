package scoring

import (
	"github.com/okian/lineup/internal/domain/archetype"
	"github.com/okian/lineup/internal/domain/position"
	"github.com/okian/lineup/internal/domain/stats"
)

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithCatalog scores against c instead of the built-in catalog.
func WithCatalog(c *archetype.Catalog) Option {
	return func(s *Scorer) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithSpecialistMargin sets the absolute best-minus-second margin.
func WithSpecialistMargin(margin float64) Option {
	return func(s *Scorer) {
		if margin >= 0 {
			s.rule.Margin = margin
		}
	}
}

// WithSpecialistRatio switches to the ratio convention (second <= best*ratio).
// Zero keeps the margin convention.
func WithSpecialistRatio(ratio float64) Option {
	return func(s *Scorer) {
		if ratio >= 0 && ratio <= 1 {
			s.rule.Ratio = ratio
		}
	}
}

// Scorer computes zone scores and profiles. It is safe for concurrent use.
type Scorer struct {
	catalog *archetype.Catalog
	rule    SpecialistRule
	// byPosition caches catalog lookups; the catalog is immutable.
	byPosition [position.Count][]archetype.Archetype
}

// NewScorer creates a scorer with configuration options.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		catalog: archetype.Default(),
		rule:    SpecialistRule{Margin: DefaultSpecialistMargin},
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, p := range position.All() {
		s.byPosition[p] = s.catalog.ForPosition(p)
	}
	return s
}

// Catalog returns the archetype catalog in use.
func (s *Scorer) Catalog() *archetype.Catalog { return s.catalog }

// Rule returns the specialist rule in use.
func (s *Scorer) Rule() SpecialistRule { return s.rule }

// Zones scores v for every position as the best of that position's
// archetypes.
func (s *Scorer) Zones(v stats.Vector) ZoneScores {
	z, _ := s.zones(v)
	return z
}

func (s *Scorer) zones(v stats.Vector) (ZoneScores, [position.Count]string) {
	var (
		z   ZoneScores
		ids [position.Count]string
	)
	for _, p := range position.All() {
		best := -1.0
		for _, a := range s.byPosition[p] {
			if score := ArchetypeScore(v, a); score > best {
				best = score
				ids[p] = a.ID
			}
		}
		if best > 0 {
			z[p] = best
		}
	}
	return z, ids
}

// Profile returns zone scores plus the derived best position, specialist
// flag and category averages.
func (s *Scorer) Profile(v stats.Vector) Profile {
	z, ids := s.zones(v)
	ranked := z.Ranked()
	pr := Profile{
		Zones:      z,
		Archetypes: ids,
		Best:       ranked[0].Position,
		BestScore:  ranked[0].Score,
		Categories: CategoryAverages(v),
	}
	pr.Specialist = s.rule.IsSpecialist(ranked[0].Score, ranked[1].Score)
	return pr
}
