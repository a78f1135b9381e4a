package balance

import (
	"fmt"
	"strings"
)

// Default balancing configuration constants.
const (
	DefaultMaxSwapIterations = 300
	DefaultTolerance         = 10.0
)

// OpenSlotPolicy says what happens to formation slots that cannot be filled
// because the pool is too small.
type OpenSlotPolicy uint8

const (
	// LeaveOpen reports unfilled slots in Roster.Open only.
	LeaveOpen OpenSlotPolicy = iota
	// FillPlaceholder also puts a synthetic placeholder slot in the line.
	FillPlaceholder
)

func (p OpenSlotPolicy) String() string {
	switch p {
	case LeaveOpen:
		return "open"
	case FillPlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// ParseOpenSlotPolicy accepts "open" or "placeholder".
func ParseOpenSlotPolicy(s string) (OpenSlotPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "open":
		return LeaveOpen, nil
	case "placeholder":
		return FillPlaceholder, nil
	default:
		return LeaveOpen, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Option applies a configuration option to the Balancer.
type Option func(*Balancer)

// WithMaxSwapIterations caps the local improvement pass. Zero disables it.
func WithMaxSwapIterations(n int) Option {
	return func(b *Balancer) {
		if n >= 0 {
			b.maxSwaps = n
		}
	}
}

// WithTolerance sets the largest aggregate gap still reported as balanced.
func WithTolerance(points float64) Option {
	return func(b *Balancer) {
		if points >= 0 {
			b.tolerance = points
		}
	}
}

// WithOpenSlotPolicy sets how unfilled slots are represented.
func WithOpenSlotPolicy(p OpenSlotPolicy) Option {
	return func(b *Balancer) {
		b.policy = p
	}
}
