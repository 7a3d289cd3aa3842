package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initCatalogMetrics() {
	r.CatalogFetchesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "lineage_catalog_fetches_total",
			Help: "Total number of metadata platform API calls",
		},
		[]string{"operation", "status"},
	)

	r.CatalogFetchDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lineage_catalog_fetch_duration_seconds",
			Help:    "Metadata platform API latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	r.CacheHitsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "lineage_cache_hits_total",
			Help: "Lineage result cache hits",
		},
	)

	r.CacheMissesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "lineage_cache_misses_total",
			Help: "Lineage result cache misses",
		},
	)
}
