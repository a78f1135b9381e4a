package formation

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/okian/lineup/internal/domain/position"
)

// Catalog is an immutable set of formations grouped by size.
type Catalog struct {
	all    []Formation
	byName map[string]int
	bySize map[int][]int
}

// NewCatalog validates formations and indexes them. Within a size, input
// order is kept; the first entry is the default pick.
func NewCatalog(formations []Formation) (*Catalog, error) {
	c := &Catalog{
		all:    make([]Formation, 0, len(formations)),
		byName: make(map[string]int, len(formations)),
		bySize: make(map[int][]int),
	}
	for _, f := range formations {
		if err := f.Validate(); err != nil {
			return nil, err
		}
		key := strings.ToLower(f.Name)
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFormation, f.Name)
		}
		idx := len(c.all)
		c.all = append(c.all, f)
		c.byName[key] = idx
		c.bySize[f.Size()] = append(c.bySize[f.Size()], idx)
	}
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog covering sizes 5 through 13.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := NewCatalog(DefaultFormations())
		if err != nil {
			panic(fmt.Sprintf("formation catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// With returns a new catalog containing c's formations followed by extra.
func (c *Catalog) With(extra ...Formation) (*Catalog, error) {
	next := make([]Formation, 0, len(c.all)+len(extra))
	next = append(next, c.all...)
	next = append(next, extra...)
	return NewCatalog(next)
}

// Select returns the preferred formation for size. When size has no entry the
// nearest smaller size is used.
func (c *Catalog) Select(size int) (Formation, error) {
	list, err := c.Candidates(size)
	if err != nil {
		return Formation{}, err
	}
	return list[0], nil
}

// Candidates returns every formation Select could pick for size, preferred
// first.
func (c *Catalog) Candidates(size int) ([]Formation, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%w: %d (supported %d-%d)", ErrUnsupportedSize, size, MinSize, MaxSize)
	}
	for s := size; s >= MinSize; s-- {
		idxs := c.bySize[s]
		if len(idxs) == 0 {
			continue
		}
		out := make([]Formation, len(idxs))
		for i, idx := range idxs {
			out[i] = c.all[idx]
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrNoFormation, size)
}

// ByName looks a formation up case-insensitively.
func (c *Catalog) ByName(name string) (Formation, error) {
	idx, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Formation{}, fmt.Errorf("%w: %q", ErrUnknownFormation, name)
	}
	return c.all[idx], nil
}

// Sizes lists the sizes that have at least one formation, ascending.
func (c *Catalog) Sizes() []int {
	out := make([]int, 0, len(c.bySize))
	for s := range c.bySize {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

// All returns every formation in catalog order.
func (c *Catalog) All() []Formation {
	out := make([]Formation, len(c.all))
	copy(out, c.all)
	return out
}

func must(name string, slots map[position.Position]int) Formation {
	f, err := New(name, slots)
	if err != nil {
		panic(err)
	}
	return f
}
