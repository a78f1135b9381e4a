package archetype

import "errors"

// Sentinel kinds for catalog integrity errors.
var (
	ErrUnknownPosition    = errors.New("archetype references unknown position")
	ErrEmptyWeights       = errors.New("archetype has no weights")
	ErrNegativeWeight     = errors.New("archetype weight must be a finite non-negative number")
	ErrDuplicateArchetype = errors.New("duplicate archetype id")
	ErrMissingArchetype   = errors.New("position has no archetype")
	ErrUnknownArchetype   = errors.New("unknown archetype")
	ErrUnknownStat        = errors.New("unknown stat")
)
