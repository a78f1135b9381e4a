// Package formation describes team shapes and selects one for a team size.
package formation

import (
	"fmt"
	"strings"

	"github.com/okian/lineup/internal/domain/position"
)

// Supported team sizes.
const (
	MinSize = 5
	MaxSize = 13
)

// Formation is a named multiset of position slots. It is a value type; copies
// never share state.
type Formation struct {
	Name  string
	Slots [position.Count]int
}

// New builds a formation from per-position slot counts and validates it.
func New(name string, slots map[position.Position]int) (Formation, error) {
	f := Formation{Name: strings.TrimSpace(name)}
	for p, n := range slots {
		if !p.Valid() {
			return Formation{}, fmt.Errorf("%w: %s uses unknown position %d", ErrInvalidFormation, name, p)
		}
		f.Slots[p] = n
	}
	if err := f.Validate(); err != nil {
		return Formation{}, err
	}
	return f, nil
}

// Size is the number of players the formation fields.
func (f Formation) Size() int {
	n := 0
	for _, c := range f.Slots {
		n += c
	}
	return n
}

// Count returns the number of slots for p.
func (f Formation) Count(p position.Position) int {
	if !p.Valid() {
		return 0
	}
	return f.Slots[p]
}

// Has reports whether the formation has at least one slot for p.
func (f Formation) Has(p position.Position) bool { return f.Count(p) > 0 }

// Positions lists the positions with at least one slot, in pitch order.
func (f Formation) Positions() []position.Position {
	var out []position.Position
	for _, p := range position.All() {
		if f.Slots[p] > 0 {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks the name, the size range and the wide-slot cap.
func (f Formation) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidFormation)
	}
	for _, p := range position.All() {
		n := f.Slots[p]
		if n < 0 {
			return fmt.Errorf("%w: %s has %d %s slots", ErrInvalidFormation, f.Name, n, p)
		}
		if !p.Meta().Central && n > position.MaxWideSlots {
			return fmt.Errorf("%w: %s has %d %s slots, max %d", ErrInvalidFormation, f.Name, n, p, position.MaxWideSlots)
		}
	}
	if size := f.Size(); size < MinSize || size > MaxSize {
		return fmt.Errorf("%w: %s fields %d players", ErrInvalidFormation, f.Name, size)
	}
	return nil
}

// String renders the formation as "4-4-2 (GK1 CB2 ...)".
func (f Formation) String() string {
	var b strings.Builder
	b.WriteString(f.Name)
	b.WriteString(" (")
	first := true
	for _, p := range f.Positions() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%s%d", p, f.Slots[p])
	}
	b.WriteByte(')')
	return b.String()
}
