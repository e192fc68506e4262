// Package metrics provides Prometheus metrics for the trade scout service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus metric the service records.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Finder metrics.
	finderRuns          prometheus.Counter
	candidatesGenerated prometheus.Counter
	candidatesReturned  prometheus.Counter
	partnersEvaluated   prometheus.Histogram
	finderDuration      prometheus.Histogram

	// Matchmaking metrics.
	matchRuns      prometheus.Counter
	partnersRanked prometheus.Histogram
	matchDuration  prometheus.Histogram

	// HTTP metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrors          *prometheus.CounterVec
}

// Global metrics manager on a custom registry, so the default Go collectors
// stay out of the exposition.
var (
	customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry
	globalManager  *Manager                   //nolint:gochecknoglobals // singleton manager
)

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "tradescout",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)

	m.finderRuns = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "finder_runs_total", Help: "Finder invocations.",
	})
	m.candidatesGenerated = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "candidates_generated_total", Help: "Raw candidates synthesized before pruning.",
	})
	m.candidatesReturned = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "candidates_returned_total", Help: "Candidates surviving dedup, cutoff, and cap.",
	})
	m.partnersEvaluated = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "partners_evaluated", Help: "Partner fan-out per finder run.",
		Buckets: []float64{0, 1, 2, 5, 8, 12},
	})
	m.finderDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "finder_duration_ms", Help: "Finder run duration in milliseconds.",
		Buckets: m.histogramBuckets,
	})
	m.matchRuns = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "match_runs_total", Help: "Matchmaking invocations.",
	})
	m.partnersRanked = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "partners_ranked", Help: "Partners scored per matchmaking run.",
		Buckets: []float64{0, 1, 2, 5, 8, 12, 16},
	})
	m.matchDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "match_duration_ms", Help: "Matchmaking run duration in milliseconds.",
		Buckets: m.histogramBuckets,
	})
	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "http",
		Name: "requests_total", Help: "HTTP requests by endpoint, method, and status.",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: "http",
		Name: "request_duration_ms", Help: "HTTP request duration in milliseconds.",
		Buckets: m.histogramBuckets,
	}, []string{"endpoint", "method"})
	m.httpErrors = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "http",
		Name: "errors_total", Help: "HTTP error responses by endpoint and class.",
	}, []string{"endpoint", "class"})

	return m
}

// GetRegistry returns the gatherer backing the global manager, for exposition.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordFinderRun records the outcome of one finder invocation.
func RecordFinderRun(partners, raw, returned int, durationMs float64) {
	globalManager.finderRuns.Inc()
	globalManager.candidatesGenerated.Add(float64(raw))
	globalManager.candidatesReturned.Add(float64(returned))
	globalManager.partnersEvaluated.Observe(float64(partners))
	globalManager.finderDuration.Observe(durationMs)
}

// RecordMatchRun records the outcome of one matchmaking invocation.
func RecordMatchRun(ranked int, durationMs float64) {
	globalManager.matchRuns.Inc()
	globalManager.partnersRanked.Observe(float64(ranked))
	globalManager.matchDuration.Observe(durationMs)
}

// RecordHTTPRequest records one completed HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records a request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method).Observe(durationMs)
}

// RecordHTTPError records an error response by coarse class.
func RecordHTTPError(endpoint, class string) {
	globalManager.httpErrors.WithLabelValues(endpoint, class).Inc()
}
