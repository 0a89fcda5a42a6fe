// Package metrics provides Prometheus metrics for the standings dashboard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values shared by callers.
const (
	ResultOK      = "ok"
	ResultError   = "error"
	ResultLoaded  = "loaded"
	ResultMissing = "missing"
	ResultFailed  = "failed"
)

// Manager owns every metric the service exports.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Data loading
	resultsLoads      *prometheus.CounterVec
	recordsLoaded     prometheus.Gauge
	configLoads       *prometheus.CounterVec
	configLoadLatency prometheus.Histogram
	configsAttached   prometheus.Gauge
	watchEvents       prometheus.Counter

	// View engine
	renderLatency      prometheus.Histogram
	rowsRendered       prometheus.Gauge
	viewMutations      *prometheus.CounterVec
	selectionEvictions prometheus.Counter
	themeToggles       prometheus.Counter
	exports            *prometheus.CounterVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Errors
	errorsByComponent *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "standings",
		subsystem:        "dashboard",
		histogramBuckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250},
		constLabels:      map[string]string{},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels}
}

func (m *Manager) histogramOpts(name, help string) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels, Buckets: m.histogramBuckets}
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)

	m.resultsLoads = auto.NewCounterVec(
		m.counterOpts("results_loads_total", "Standings file loads by outcome"),
		[]string{"result"},
	)
	m.recordsLoaded = auto.NewGauge(m.gaugeOpts("records_loaded", "Player records currently held by the store"))
	m.configLoads = auto.NewCounterVec(
		m.counterOpts("config_loads_total", "Per-player config loads by outcome (loaded, missing, failed)"),
		[]string{"result"},
	)
	m.configLoadLatency = auto.NewHistogram(m.histogramOpts("config_load_duration_milliseconds", "Time to fetch and decode one player config"))
	m.configsAttached = auto.NewGauge(m.gaugeOpts("configs_attached", "Players with config metadata attached"))
	m.watchEvents = auto.NewCounter(m.counterOpts("watch_events_total", "Standings file change events that triggered a reload"))

	m.renderLatency = auto.NewHistogram(m.histogramOpts("render_duration_milliseconds", "Time to derive the rendered table"))
	m.rowsRendered = auto.NewGauge(m.gaugeOpts("rows_rendered", "Rows in the most recent render"))
	m.viewMutations = auto.NewCounterVec(
		m.counterOpts("view_mutations_total", "View state changes by field"),
		[]string{"field"},
	)
	m.selectionEvictions = auto.NewCounter(m.counterOpts("selection_evictions_total", "Comparison selections evicted to make room"))
	m.themeToggles = auto.NewCounter(m.counterOpts("theme_toggles_total", "Theme toggles"))
	m.exports = auto.NewCounterVec(
		m.counterOpts("exports_total", "Exports by format"),
		[]string{"format"},
	)

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds"),
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorsByComponent = auto.NewCounterVec(
		m.counterOpts("errors_total", "Errors by component and type"),
		[]string{"component", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_usage_bytes", "System memory usage in bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutine_count", "Number of goroutines"))
}

// RecordResultsLoad counts one standings load attempt.
func RecordResultsLoad(result string) {
	globalManager.resultsLoads.WithLabelValues(result).Inc()
}

// UpdateRecordsLoaded sets the number of records in the store.
func UpdateRecordsLoaded(count int) {
	globalManager.recordsLoaded.Set(float64(count))
}

// RecordConfigLoad counts one per-player config outcome.
func RecordConfigLoad(result string) {
	globalManager.configLoads.WithLabelValues(result).Inc()
}

// RecordConfigLoadLatency records one config fetch-and-decode duration.
func RecordConfigLoadLatency(latencyMs float64) {
	globalManager.configLoadLatency.Observe(latencyMs)
}

// UpdateConfigsAttached sets how many players carry config metadata.
func UpdateConfigsAttached(count int) {
	globalManager.configsAttached.Set(float64(count))
}

// RecordWatchEvent counts a file change that triggered a reload.
func RecordWatchEvent() {
	globalManager.watchEvents.Inc()
}

// RecordRender records one render's duration and row count.
func RecordRender(latencyMs float64, rows int) {
	globalManager.renderLatency.Observe(latencyMs)
	globalManager.rowsRendered.Set(float64(rows))
}

// RecordViewMutation counts a change to one view field.
func RecordViewMutation(field string) {
	globalManager.viewMutations.WithLabelValues(field).Inc()
}

// RecordSelectionEviction counts a FIFO eviction from the comparison set.
func RecordSelectionEviction() {
	globalManager.selectionEvictions.Inc()
}

// RecordThemeToggle counts a theme toggle.
func RecordThemeToggle() {
	globalManager.themeToggles.Inc()
}

// RecordExport counts an export in the given format.
func RecordExport(format string) {
	globalManager.exports.WithLabelValues(format).Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordError counts an error by component and type.
func RecordError(component, errorType string) {
	globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// UpdateSystemMemoryUsage sets system memory usage.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine count.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the registry served on /healthz.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
