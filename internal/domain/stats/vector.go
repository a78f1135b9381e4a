package stats

import "sort"

// Vector holds one value per attribute. The zero value is the all-zero
// vector, so a missing attribute always reads as 0.
type Vector [Count]int

// FromMap builds a Vector from attribute keys. Keys outside the vocabulary
// are ignored and returned sorted so callers can surface them.
func FromMap(m map[string]int) (Vector, []string) {
	var v Vector
	var unknown []string
	for name, value := range m {
		s, ok := Parse(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		v[s] = value
	}
	sort.Strings(unknown)
	return v, unknown
}

// Get returns the raw stored value of s.
func (v Vector) Get(s Stat) int {
	if !s.Valid() {
		return 0
	}
	return v[s]
}

// Clamped returns the value of s limited to [MinValue, MaxValue].
func (v Vector) Clamped(s Stat) float64 {
	x := v.Get(s)
	switch {
	case x < MinValue:
		return MinValue
	case x > MaxValue:
		return MaxValue
	}
	return float64(x)
}

// With returns a copy of v with s set to value.
func (v Vector) With(s Stat, value int) Vector {
	if s.Valid() {
		v[s] = value
	}
	return v
}

// ToMap returns the vector keyed by attribute name.
func (v Vector) ToMap() map[string]int {
	m := make(map[string]int, Count)
	for i, x := range v {
		m[Stat(i).String()] = x
	}
	return m
}
