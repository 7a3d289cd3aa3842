package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all metrics for the service
type Registry struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Lineage engine metrics
	GraphsBuiltTotal   *prometheus.CounterVec
	GraphBuildDuration prometheus.Histogram
	GraphNodes         prometheus.Histogram
	GraphEdges         prometheus.Histogram

	// Catalog client metrics
	CatalogFetchesTotal  *prometheus.CounterVec
	CatalogFetchDuration *prometheus.HistogramVec
	CacheHitsTotal       prometheus.Counter
	CacheMissesTotal     prometheus.Counter

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// NewRegistry creates a registry with all metrics registered
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.registry.MustRegister(collectors.NewGoCollector())
	r.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r.initHTTPMetrics()
	r.initLineageMetrics()
	r.initCatalogMetrics()

	return r
}

// Default returns the shared registry instance
func Default() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Handler returns an http.Handler serving the Prometheus exposition format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordGraphBuild records one build+classify pass over a lineage graph
func (r *Registry) RecordGraphBuild(direction string, nodes, edges int, duration time.Duration) {
	r.GraphsBuiltTotal.WithLabelValues(direction).Inc()
	r.GraphBuildDuration.Observe(duration.Seconds())
	r.GraphNodes.Observe(float64(nodes))
	r.GraphEdges.Observe(float64(edges))
}

// RecordCatalogFetch records one catalog API call
func (r *Registry) RecordCatalogFetch(operation, status string, duration time.Duration) {
	r.CatalogFetchesTotal.WithLabelValues(operation, status).Inc()
	r.CatalogFetchDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordCacheAccess records a cache hit or miss
func (r *Registry) RecordCacheAccess(hit bool) {
	if hit {
		r.CacheHitsTotal.Inc()
	} else {
		r.CacheMissesTotal.Inc()
	}
}
