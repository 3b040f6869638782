// Package metrics provides Prometheus metrics for the Davos
// recommendation service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Core business metrics.
	recommendationsServed prometheus.Counter
	searchesServed        prometheus.Counter
	emptyResults          prometheus.Counter
	rankLatency           prometheus.Histogram

	// Catalog metrics.
	catalogSize     prometheus.Gauge
	vocabularySize  prometheus.Gauge
	fixtureCatalog  prometheus.Gauge
	catalogReloads  prometheus.Counter
	catalogFitMs    prometheus.Histogram
	historyEntries  prometheus.Gauge
	historyDrops    prometheus.Counter

	// HTTP performance metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "davos",
		subsystem:        "recommender",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.recommendationsServed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recommendations_total",
		Help:      "Total number of recommendation calls served",
	})

	m.searchesServed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "searches_total",
		Help:      "Total number of keyword searches served",
	})

	m.emptyResults = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "empty_results_total",
		Help:      "Total number of calls that matched no events",
	})

	m.rankLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rank_latency_milliseconds",
		Help:      "Histogram of ranking latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.catalogSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_size",
		Help:      "Number of events in the current catalog snapshot",
	})

	m.vocabularySize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "vocabulary_size",
		Help:      "Number of terms in the fitted TF-IDF vocabulary",
	})

	m.fixtureCatalog = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fixture_catalog",
		Help:      "1 when the service degraded to the fixture catalog, 0 otherwise",
	})

	m.catalogReloads = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_reloads_total",
		Help:      "Total number of catalog (re)loads",
	})

	m.catalogFitMs = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_fit_milliseconds",
		Help:      "Histogram of vector index fit duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.historyEntries = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "history_entries",
		Help:      "Current number of interaction log entries",
	})

	m.historyDrops = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "history_append_failures_total",
		Help:      "Total number of interaction log appends that were dropped",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})
}

// GetRegistry returns the custom Prometheus registry.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers against the global manager.

// RecordRecommendation counts one served recommendation call.
func RecordRecommendation() { globalManager.recommendationsServed.Inc() }

// RecordSearch counts one served search call.
func RecordSearch() { globalManager.searchesServed.Inc() }

// RecordEmptyResult counts a call that matched no events.
func RecordEmptyResult() { globalManager.emptyResults.Inc() }

// RecordRankLatency observes one ranking pass, in milliseconds.
func RecordRankLatency(ms float64) { globalManager.rankLatency.Observe(ms) }

// UpdateCatalogSize sets the current catalog size.
func UpdateCatalogSize(n int) { globalManager.catalogSize.Set(float64(n)) }

// UpdateVocabularySize sets the fitted vocabulary size.
func UpdateVocabularySize(n int) { globalManager.vocabularySize.Set(float64(n)) }

// SetFixtureCatalog flags whether the fixture catalog is in use.
func SetFixtureCatalog(degraded bool) {
	v := 0.0
	if degraded {
		v = 1.0
	}
	globalManager.fixtureCatalog.Set(v)
}

// RecordCatalogReload counts one catalog (re)load.
func RecordCatalogReload() { globalManager.catalogReloads.Inc() }

// RecordCatalogFitDuration observes one index fit, in milliseconds.
func RecordCatalogFitDuration(ms float64) { globalManager.catalogFitMs.Observe(ms) }

// UpdateHistoryEntries sets the current interaction log length.
func UpdateHistoryEntries(n int) { globalManager.historyEntries.Set(float64(n)) }

// RecordHistoryAppendFailure counts one dropped interaction log append.
func RecordHistoryAppendFailure() { globalManager.historyDrops.Inc() }

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes one HTTP request duration, in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
}
