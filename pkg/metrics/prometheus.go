package metrics

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// Balance outcomes used as the result label.
const (
	ResultBalanced   = "balanced"
	ResultUnbalanced = "unbalanced"
	ResultRejected   = "rejected"
)

// Manager owns the engine's Prometheus collectors.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer
	gatherer         prometheus.Gatherer

	balanceRequests *prometheus.CounterVec
	balanceDuration prometheus.Histogram
	scoreGap        prometheus.Histogram
	swapIterations  prometheus.Histogram
	unplacedPlayers prometheus.Counter
	openSlots       prometheus.Counter
	playersScored   prometheus.Counter
	errorsByType    *prometheus.CounterVec
}

var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager. Without WithPrometheusRegistry it
// registers on the default registerer.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "lineup",
		subsystem:        "engine",
		histogramBuckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250},
		enabled:          true,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
		gatherer:         prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) name(n string) string {
	if m.metricPrefix == "" {
		return n
	}
	return m.metricPrefix + "_" + n
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.customLabels)

	m.balanceRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("balance_requests_total"),
		Help:        "Balancing requests by outcome",
		ConstLabels: labels,
	}, []string{"result"})

	m.balanceDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("balance_duration_milliseconds"),
		Help:        "Time spent scoring, balancing and placing one pool",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	})

	m.scoreGap = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("balance_score_gap"),
		Help:        "Absolute difference between the two teams' aggregate fit scores",
		Buckets:     []float64{0, 1, 2.5, 5, 10, 20, 40, 80},
		ConstLabels: labels,
	})

	m.swapIterations = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("balance_swap_iterations"),
		Help:        "Improving swaps applied after the greedy fill",
		Buckets:     []float64{0, 1, 2, 5, 10, 25, 50, 100, 300},
		ConstLabels: labels,
	})

	m.unplacedPlayers = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("unplaced_players_total"),
		Help:        "Players left without a slot",
		ConstLabels: labels,
	})

	m.openSlots = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("open_slots_total"),
		Help:        "Formation slots left open for lack of players",
		ConstLabels: labels,
	})

	m.playersScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("players_scored_total"),
		Help:        "Stat vectors turned into zone scores",
		ConstLabels: labels,
	})

	m.errorsByType = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("errors_by_type_total"),
		Help:        "Rejected requests by error type",
		ConstLabels: labels,
	}, []string{"type"})
}

// BalanceOutcome summarizes one balancing run for RecordBalance.
type BalanceOutcome struct {
	Result         string
	DurationMs     float64
	Gap            float64
	SwapIterations int
	Unplaced       int
	OpenSlots      int
}

// RecordBalance records a completed balancing run.
func (m *Manager) RecordBalance(o BalanceOutcome) {
	if !m.enabled {
		return
	}
	m.balanceRequests.WithLabelValues(o.Result).Inc()
	m.balanceDuration.Observe(o.DurationMs)
	m.scoreGap.Observe(o.Gap)
	m.swapIterations.Observe(float64(o.SwapIterations))
	m.unplacedPlayers.Add(float64(o.Unplaced))
	m.openSlots.Add(float64(o.OpenSlots))
}

// RecordRejected counts a request refused before any work began.
func (m *Manager) RecordRejected(errorType string) {
	if !m.enabled {
		return
	}
	m.balanceRequests.WithLabelValues(ResultRejected).Inc()
	m.errorsByType.WithLabelValues(errorType).Inc()
}

// RecordPlayersScored adds n to the scored players counter.
func (m *Manager) RecordPlayersScored(n int) {
	if !m.enabled || n <= 0 {
		return
	}
	m.playersScored.Add(float64(n))
}

// RecordError counts an error by type.
func (m *Manager) RecordError(errorType string) {
	if !m.enabled {
		return
	}
	m.errorsByType.WithLabelValues(errorType).Inc()
}

// Sample is one flattened metric value.
type Sample struct {
	Name   string
	Labels string
	Value  float64
}

// Samples flattens the manager's registry. Histograms report their sample
// count and sum as Name_count and Name_sum.
func (m *Manager) Samples() ([]Sample, error) {
	families, err := m.gatherer.Gather()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatherFailed, err)
	}
	var out []Sample
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			labels := formatLabels(metric.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				out = append(out, Sample{Name: mf.GetName(), Labels: labels, Value: metric.GetCounter().GetValue()})
			case dto.MetricType_GAUGE:
				out = append(out, Sample{Name: mf.GetName(), Labels: labels, Value: metric.GetGauge().GetValue()})
			case dto.MetricType_HISTOGRAM:
				h := metric.GetHistogram()
				out = append(out,
					Sample{Name: mf.GetName() + "_count", Labels: labels, Value: float64(h.GetSampleCount())},
					Sample{Name: mf.GetName() + "_sum", Labels: labels, Value: h.GetSampleSum()},
				)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Labels < out[j].Labels
	})
	return out, nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	parts := make([]string, 0, len(pairs))
	for _, lp := range pairs {
		parts = append(parts, lp.GetName()+"="+lp.GetValue())
	}
	return strings.Join(parts, ",")
}

// WriteText writes the registry in the Prometheus text exposition format.
func (m *Manager) WriteText(w io.Writer) error {
	families, err := m.gatherer.Gather()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGatherFailed, err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("%w: %v", ErrEncodeFailed, err)
		}
	}
	return nil
}

// Global returns the process-wide manager.
func Global() *Manager { return globalManager }

// RecordBalance records a completed run on the global manager.
func RecordBalance(o BalanceOutcome) { globalManager.RecordBalance(o) }

// RecordRejected counts a refused request on the global manager.
func RecordRejected(errorType string) { globalManager.RecordRejected(errorType) }

// RecordPlayersScored counts scored players on the global manager.
func RecordPlayersScored(n int) { globalManager.RecordPlayersScored(n) }

// RecordError counts an error on the global manager.
func RecordError(errorType string) { globalManager.RecordError(errorType) }

// WriteText dumps the global registry.
func WriteText(w io.Writer) error { return globalManager.WriteText(w) }

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
