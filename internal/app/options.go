package service

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/okian/lineup/internal/config"
	"github.com/okian/lineup/internal/domain/archetype"
	"github.com/okian/lineup/internal/domain/balance"
	"github.com/okian/lineup/internal/domain/formation"
	"github.com/okian/lineup/pkg/logger"
	"github.com/okian/lineup/pkg/metrics"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records to m instead of the global manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithArchetypes scores against c.
func WithArchetypes(c *archetype.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.archetypes = c
		}
	}
}

// WithFormations selects formations from c.
func WithFormations(c *formation.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.formations = c
		}
	}
}

// WithSpecialistMargin sets the absolute specialist margin.
func WithSpecialistMargin(margin float64) Option {
	return func(s *Service) {
		if margin >= 0 {
			s.specialistMargin = margin
		}
	}
}

// WithSpecialistRatio switches the specialist rule to the ratio convention.
func WithSpecialistRatio(ratio float64) Option {
	return func(s *Service) {
		if ratio >= 0 && ratio <= 1 {
			s.specialistRatio = ratio
		}
	}
}

// WithMaxSwapIterations caps the balancer's local search.
func WithMaxSwapIterations(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.maxSwaps = n
		}
	}
}

// WithBalanceTolerance sets the gap still reported as balanced.
func WithBalanceTolerance(points float64) Option {
	return func(s *Service) {
		if points >= 0 {
			s.tolerance = points
		}
	}
}

// WithOpenSlotPolicy sets how unfilled slots are reported.
func WithOpenSlotPolicy(p balance.OpenSlotPolicy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

// ConfigOptions translates a loaded Config into service options.
func ConfigOptions(cfg *config.Config) ([]Option, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts := []Option{
		WithSpecialistMargin(cfg.SpecialistThresholdMargin),
		WithSpecialistRatio(cfg.SpecialistThresholdRatio),
		WithMaxSwapIterations(cfg.MaxSwapIterations),
		WithBalanceTolerance(cfg.BalanceTolerance),
	}
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}
	opts = append(opts, WithOpenSlotPolicy(policy))

	if len(cfg.ArchetypeWeights) > 0 {
		c, err := archetype.Default().WithWeights(cfg.ArchetypeWeights)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithArchetypes(c))
	}
	extra, err := cfg.ExtraFormations()
	if err != nil {
		return nil, err
	}
	if len(extra) > 0 {
		c, err := formation.Default().With(extra...)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithFormations(c))
	}
	if !cfg.MetricsEnabled {
		opts = append(opts, WithMetrics(metrics.NewManager(
			metrics.WithPrometheusRegistry(prometheus.NewRegistry()),
			metrics.WithMetricsEnabled(false),
		)))
	}
	return opts, nil
}
