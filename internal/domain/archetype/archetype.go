// Package archetype holds the playstyle catalog: for every position, one or
// more named sparse weightings over the stat vocabulary.
package archetype

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/okian/lineup/internal/domain/position"
	"github.com/okian/lineup/internal/domain/stats"
)

// Archetype is a named playstyle for one position. Weights need not sum to
// one; scoring normalizes them.
type Archetype struct {
	ID       string
	Name     string
	Position position.Position
	Weights  map[stats.Stat]float64
}

// TotalWeight returns the sum of the positive weights.
func (a Archetype) TotalWeight() float64 {
	total := 0.0
	for _, s := range stats.All() {
		if w := a.Weights[s]; w > 0 {
			total += w
		}
	}
	return total
}

func (a Archetype) clone() Archetype {
	w := make(map[stats.Stat]float64, len(a.Weights))
	for k, v := range a.Weights {
		w[k] = v
	}
	a.Weights = w
	return a
}

func (a Archetype) validate() error {
	if !a.Position.Valid() {
		return fmt.Errorf("%w: %s -> %d", ErrUnknownPosition, a.ID, a.Position)
	}
	if len(a.Weights) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyWeights, a.ID)
	}
	for s, w := range a.Weights {
		if !s.Valid() {
			return fmt.Errorf("%w: %s uses stat %d", ErrUnknownStat, a.ID, s)
		}
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: %s.%s = %v", ErrNegativeWeight, a.ID, s, w)
		}
	}
	if a.TotalWeight() <= 0 {
		return fmt.Errorf("%w: %s has only zero weights", ErrEmptyWeights, a.ID)
	}
	return nil
}

// Catalog is an immutable, validated set of archetypes.
type Catalog struct {
	all        []Archetype
	byID       map[string]int
	byPosition [position.Count][]int
}

// NewCatalog validates archetypes and builds a catalog. Input order is kept
// and defines tie-break order during scoring.
func NewCatalog(archetypes []Archetype) (*Catalog, error) {
	c := &Catalog{
		all:  make([]Archetype, 0, len(archetypes)),
		byID: make(map[string]int, len(archetypes)),
	}
	for _, a := range archetypes {
		a.ID = strings.TrimSpace(a.ID)
		if err := a.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[a.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateArchetype, a.ID)
		}
		idx := len(c.all)
		c.all = append(c.all, a.clone())
		c.byID[a.ID] = idx
		c.byPosition[a.Position] = append(c.byPosition[a.Position], idx)
	}
	for _, p := range position.All() {
		if len(c.byPosition[p]) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingArchetype, p)
		}
	}
	return c, nil
}

// MustCatalog is NewCatalog for build-time data; it panics on error.
func MustCatalog(archetypes []Archetype) *Catalog {
	c, err := NewCatalog(archetypes)
	if err != nil {
		panic(fmt.Sprintf("archetype catalog: %v", err))
	}
	return c
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide built-in catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = MustCatalog(DefaultArchetypes())
	})
	return defaultCatalog
}

// ForPosition returns the archetypes of p in catalog order.
func (c *Catalog) ForPosition(p position.Position) []Archetype {
	if !p.Valid() {
		return nil
	}
	out := make([]Archetype, 0, len(c.byPosition[p]))
	for _, idx := range c.byPosition[p] {
		out = append(out, c.all[idx].clone())
	}
	return out
}

// Lookup returns the archetype with the given id.
func (c *Catalog) Lookup(id string) (Archetype, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Archetype{}, false
	}
	return c.all[idx].clone(), true
}

// All returns every archetype in catalog order.
func (c *Catalog) All() []Archetype {
	out := make([]Archetype, len(c.all))
	for i, a := range c.all {
		out[i] = a.clone()
	}
	return out
}

// IDs returns the archetype ids sorted alphabetically.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.byID))
	for id := range c.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// WithWeights returns a new catalog where the named archetypes have their
// weights replaced. Keys are archetype ids and stat names.
func (c *Catalog) WithWeights(overrides map[string]map[string]float64) (*Catalog, error) {
	next := c.All()
	for id, weights := range overrides {
		idx, ok := c.byID[strings.TrimSpace(id)]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownArchetype, id)
		}
		w := make(map[stats.Stat]float64, len(weights))
		for name, value := range weights {
			s, ok := stats.Parse(name)
			if !ok {
				return nil, fmt.Errorf("%w: %s in %s", ErrUnknownStat, name, id)
			}
			w[s] = value
		}
		next[idx].Weights = w
	}
	return NewCatalog(next)
}
