package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initLineageMetrics() {
	r.GraphsBuiltTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "lineage_graphs_built_total",
			Help: "Total number of lineage graphs built and classified",
		},
		[]string{"direction"},
	)

	r.GraphBuildDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lineage_graph_build_duration_seconds",
			Help:    "Time spent building and classifying one lineage graph",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
	)

	r.GraphNodes = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lineage_graph_nodes",
			Help:    "Node count per built lineage graph",
			Buckets: []float64{1, 5, 10, 50, 100, 500, 1000, 5000},
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lineage_graph_edges",
			Help:    "Edge count per built lineage graph",
			Buckets: []float64{1, 5, 10, 50, 100, 500, 1000, 5000},
		},
	)
}
