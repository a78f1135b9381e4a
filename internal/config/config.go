// Package config defines the engine configuration and how it is loaded.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okian/lineup/internal/domain/balance"
	"github.com/okian/lineup/internal/domain/formation"
	"github.com/okian/lineup/internal/domain/position"
	"github.com/okian/lineup/internal/domain/scoring"
)

// FormationConfig declares an extra formation, e.g.
//
//	name: 5-3-2
//	slots: {gk: 1, cb: 3, fb: 2, cm: 3, st: 2}
type FormationConfig struct {
	Name  string         `koanf:"name"`
	Slots map[string]int `koanf:"slots"`
}

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat is text or json.
	LogFormat string `koanf:"log_format"`

	// SpecialistThresholdMargin is the absolute best-minus-second gap that
	// marks a specialist.
	SpecialistThresholdMargin float64 `koanf:"specialist_threshold_margin"`

	// SpecialistThresholdRatio switches to the ratio rule when non-zero.
	SpecialistThresholdRatio float64 `koanf:"specialist_threshold_ratio"`

	// MaxSwapIterations caps the balancer's local search.
	MaxSwapIterations int `koanf:"max_swap_iterations"`

	// BalanceTolerance is the largest gap still reported as balanced.
	BalanceTolerance float64 `koanf:"balance_tolerance"`

	// OpenSlotPolicy is open or placeholder.
	OpenSlotPolicy string `koanf:"open_slot_policy"`

	MetricsEnabled bool `koanf:"metrics_enabled"`

	// ArchetypeWeights replaces the weights of named archetypes.
	ArchetypeWeights map[string]map[string]float64 `koanf:"archetype_weights"`

	// Formations adds shapes to the built-in catalog.
	Formations []FormationConfig `koanf:"formations"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:                  "info",
		LogFormat:                 "text",
		SpecialistThresholdMargin: scoring.DefaultSpecialistMargin,
		MaxSwapIterations:         balance.DefaultMaxSwapIterations,
		BalanceTolerance:          balance.DefaultTolerance,
		OpenSlotPolicy:            balance.LeaveOpen.String(),
		MetricsEnabled:            true,
	}
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	if c.SpecialistThresholdMargin < 0 {
		return fmt.Errorf("%w: specialist_threshold_margin must be >= 0", ErrInvalidConfig)
	}
	if c.SpecialistThresholdRatio < 0 || c.SpecialistThresholdRatio > 1 {
		return fmt.Errorf("%w: specialist_threshold_ratio must be within [0,1]", ErrInvalidConfig)
	}
	if c.MaxSwapIterations < 0 {
		return fmt.Errorf("%w: max_swap_iterations must be >= 0", ErrInvalidConfig)
	}
	if c.BalanceTolerance < 0 {
		return fmt.Errorf("%w: balance_tolerance must be >= 0", ErrInvalidConfig)
	}
	if _, err := c.Policy(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.ExtraFormations(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Policy parses OpenSlotPolicy.
func (c *Config) Policy() (balance.OpenSlotPolicy, error) {
	return balance.ParseOpenSlotPolicy(c.OpenSlotPolicy)
}

// ExtraFormations converts Formations into validated values, in file order.
func (c *Config) ExtraFormations() ([]formation.Formation, error) {
	out := make([]formation.Formation, 0, len(c.Formations))
	for _, fc := range c.Formations {
		slots := make(map[position.Position]int, len(fc.Slots))
		codes := make([]string, 0, len(fc.Slots))
		for code := range fc.Slots {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			p, ok := position.Parse(code)
			if !ok {
				return nil, fmt.Errorf("formation %s: unknown position %q", fc.Name, code)
			}
			slots[p] += fc.Slots[code]
		}
		f, err := formation.New(fc.Name, slots)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
