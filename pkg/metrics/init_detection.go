package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initDetectionMetrics() {
	factory := promauto.With(r.registry)

	r.RunsTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: r.namespace,
		Name:      "runs_total",
		Help:      "Total number of community detection runs",
	})

	r.RunDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Name:      "run_duration_seconds",
		Help:      "Duration of a full detection run in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
	})

	r.IterationsTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: r.namespace,
		Name:      "iterations_total",
		Help:      "Total number of edge-removal iterations",
	})

	r.EdgesRemovedTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: r.namespace,
		Name:      "edges_removed_total",
		Help:      "Total number of edges removed for having maximal betweenness",
	})

	r.SplitsTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: r.namespace,
		Name:      "splits_total",
		Help:      "Total number of removals that increased the component count",
	})

	r.DiscardedRowsTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: r.namespace,
		Name:      "discarded_rows_total",
		Help:      "Total number of removals that left the component count unchanged",
	})

	r.DendrogramDepth = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: r.namespace,
		Name:      "dendrogram_depth",
		Help:      "Depth of the most recently built dendrogram",
	})

	r.GraphVertices = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: r.namespace,
		Name:      "graph_vertices",
		Help:      "Vertex count of the most recent input graph",
	})

	r.GraphEdges = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: r.namespace,
		Name:      "graph_edges",
		Help:      "Edge count of the most recent input graph",
	})
}

func (r *Registry) initEngineMetrics() {
	factory := promauto.With(r.registry)

	r.CentralityDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Name:      "centrality_duration_seconds",
		Help:      "Duration of one edge betweenness computation in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
	})

	r.ShortestPathRuns = factory.NewCounter(prometheus.CounterOpts{
		Namespace: r.namespace,
		Name:      "shortest_path_runs_total",
		Help:      "Total number of all-pairs shortest path computations",
	})
}
