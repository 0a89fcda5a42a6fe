package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	. "github.com/smartystreets/goconvey/convey"
)

func gaugeValue(g prometheus.Gauge) float64 {
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		return -1
	}
	return m.GetGauge().GetValue()
}

func counterValue(c prometheus.Counter) float64 {
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return -1
	}
	return m.GetCounter().GetValue()
}

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a private registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created and registered", func() {
				So(manager, ShouldNotBeNil)
				manager.recordsLoaded.Set(3)
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("board"),
				WithHistogramBuckets([]float64{1, 10}),
				WithConstLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)
			manager.recordsLoaded.Set(7)

			Convey("Then metric names and labels follow the options", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)

				var found *dto.MetricFamily
				for _, f := range families {
					if f.GetName() == "test_board_records_loaded" {
						found = f
					}
				}
				So(found, ShouldNotBeNil)
				So(found.GetMetric(), ShouldHaveLength, 1)
				So(found.GetMetric()[0].GetGauge().GetValue(), ShouldEqual, 7)
				So(found.GetMetric()[0].GetLabel()[0].GetName(), ShouldEqual, "env")
				So(found.GetMetric()[0].GetLabel()[0].GetValue(), ShouldEqual, "test")
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics", t, func() {
		Convey("When recording load outcomes", func() {
			before := counterValue(globalManager.configLoads.WithLabelValues(ResultFailed))
			RecordConfigLoad(ResultFailed)
			RecordConfigLoadLatency(1.5)
			RecordResultsLoad(ResultOK)
			UpdateRecordsLoaded(42)
			UpdateConfigsAttached(40)

			Convey("Then the counters and gauges move", func() {
				So(counterValue(globalManager.configLoads.WithLabelValues(ResultFailed)), ShouldEqual, before+1)
				So(gaugeValue(globalManager.recordsLoaded), ShouldEqual, 42)
				So(gaugeValue(globalManager.configsAttached), ShouldEqual, 40)
			})
		})

		Convey("When recording view activity", func() {
			So(func() {
				RecordRender(0.3, 12)
				RecordViewMutation("sort")
				RecordSelectionEviction()
				RecordThemeToggle()
				RecordExport("csv")
				RecordWatchEvent()
			}, ShouldNotPanic)

			Convey("Then the last render row count is kept", func() {
				So(gaugeValue(globalManager.rowsRendered), ShouldEqual, 12)
			})
		})

		Convey("When recording HTTP and system metrics", func() {
			So(func() {
				RecordHTTPRequest("view", "GET", "200")
				RecordHTTPRequestDuration("view", "GET", "200", 2)
				RecordError("http", "not_found")
				UpdateSystemMemoryUsage(1024)
				UpdateSystemGoroutineCount(8)
			}, ShouldNotPanic)
		})

		Convey("Then the registry is exposed", func() {
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}
