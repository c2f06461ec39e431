package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name unless overridden.
const DefaultNamespace = "girvan_newman"

// Registry holds the community detection metrics.
type Registry struct {
	// Detection runs
	RunsTotal          prometheus.Counter
	RunDuration        prometheus.Histogram
	IterationsTotal    prometheus.Counter
	EdgesRemovedTotal  prometheus.Counter
	SplitsTotal        prometheus.Counter
	DiscardedRowsTotal prometheus.Counter
	DendrogramDepth    prometheus.Gauge
	GraphVertices      prometheus.Gauge
	GraphEdges         prometheus.Gauge

	// Engines
	CentralityDuration prometheus.Histogram
	ShortestPathRuns   prometheus.Counter

	namespace string
	registry  *prometheus.Registry
	mu        sync.Mutex
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry using DefaultNamespace.
func NewRegistry() *Registry {
	return NewRegistryWithNamespace(DefaultNamespace)
}

// NewRegistryWithNamespace creates a registry whose metric names start with
// namespace.
func NewRegistryWithNamespace(namespace string) *Registry {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	r := &Registry{
		namespace: namespace,
		registry:  prometheus.NewRegistry(),
	}

	r.initDetectionMetrics()
	r.initEngineMetrics()

	return r
}

// Namespace returns the metric name prefix.
func (r *Registry) Namespace() string {
	return r.namespace
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
