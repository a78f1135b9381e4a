package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleValue(samples []Sample, name, labels string) (float64, bool) {
	for _, s := range samples {
		if s.Name == name && s.Labels == labels {
			return s.Value, true
		}
	}
	return 0, false
}

func TestManagerRecording(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(
			WithNamespace("test"),
			WithSubsystem("balance"),
			WithPrometheusRegistry(registry),
		)

		Convey("When a balanced run is recorded", func() {
			m.RecordBalance(BalanceOutcome{Result: ResultBalanced, DurationMs: 1.5, Gap: 2, SwapIterations: 3, Unplaced: 1, OpenSlots: 2})
			m.RecordPlayersScored(16)

			Convey("Then the counters should reflect it", func() {
				samples, err := m.Samples()
				So(err, ShouldBeNil)

				v, ok := sampleValue(samples, "test_balance_balance_requests_total", "result=balanced")
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, 1.0)

				v, _ = sampleValue(samples, "test_balance_players_scored_total", "")
				So(v, ShouldEqual, 16.0)

				v, _ = sampleValue(samples, "test_balance_open_slots_total", "")
				So(v, ShouldEqual, 2.0)

				v, _ = sampleValue(samples, "test_balance_balance_swap_iterations_sum", "")
				So(v, ShouldEqual, 3.0)

				v, _ = sampleValue(samples, "test_balance_balance_duration_milliseconds_count", "")
				So(v, ShouldEqual, 1.0)
			})

			Convey("Then the text exposition should contain them", func() {
				var buf bytes.Buffer
				So(m.WriteText(&buf), ShouldBeNil)
				So(buf.String(), ShouldContainSubstring, `test_balance_balance_requests_total{result="balanced"} 1`)
				So(buf.String(), ShouldContainSubstring, "# TYPE test_balance_balance_score_gap histogram")
			})
		})

		Convey("When a request is rejected", func() {
			m.RecordRejected("invalid_headcount")
			samples, _ := m.Samples()
			v, _ := sampleValue(samples, "test_balance_errors_by_type_total", "type=invalid_headcount")
			So(v, ShouldEqual, 1.0)
			v, _ = sampleValue(samples, "test_balance_balance_requests_total", "result=rejected")
			So(v, ShouldEqual, 1.0)
		})
	})

	Convey("Given a disabled manager", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(WithPrometheusRegistry(registry), WithMetricsEnabled(false))
		m.RecordBalance(BalanceOutcome{Result: ResultBalanced})
		m.RecordError("boom")

		Convey("Then nothing should be recorded", func() {
			samples, err := m.Samples()
			So(err, ShouldBeNil)
			_, ok := sampleValue(samples, "lineup_engine_balance_requests_total", "result=balanced")
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Given custom labels and a prefix", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(
			WithPrometheusRegistry(registry),
			WithMetricPrefix("cli"),
			WithCustomLabels(map[string]string{"env": "test"}),
			WithHistogramBuckets([]float64{1, 10}),
		)
		m.RecordError("unknown_formation")
		samples, _ := m.Samples()
		v, ok := sampleValue(samples, "lineup_engine_cli_errors_by_type_total", "env=test,type=unknown_formation")
		So(ok, ShouldBeTrue)
		So(v, ShouldEqual, 1.0)
	})
}

func TestGlobalManager(t *testing.T) {
	Convey("Given the global manager", t, func() {
		So(func() {
			RecordPlayersScored(2)
			RecordBalance(BalanceOutcome{Result: ResultUnbalanced, Gap: 12})
			RecordRejected("empty_pool")
			RecordError("empty_pool")
		}, ShouldNotPanic)

		Convey("Then it should write to the custom registry", func() {
			var buf bytes.Buffer
			So(WriteText(&buf), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "lineup_engine_players_scored_total")
			So(Global().gatherer, ShouldEqual, GetRegistry())
		})
	})
}
