// Package metrics exposes Prometheus instrumentation for community
// detection runs.
package metrics

import (
	"time"
)

// DetectionStats summarises one detection run.
type DetectionStats struct {
	Duration      time.Duration
	Iterations    int
	EdgesRemoved  int
	Splits        int
	DiscardedRows int
	Depth         int
}

// RecordDetection records a finished detection run.
func (r *Registry) RecordDetection(stats DetectionStats) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.RunsTotal.Inc()
	r.RunDuration.Observe(stats.Duration.Seconds())
	r.IterationsTotal.Add(float64(stats.Iterations))
	r.EdgesRemovedTotal.Add(float64(stats.EdgesRemoved))
	r.SplitsTotal.Add(float64(stats.Splits))
	r.DiscardedRowsTotal.Add(float64(stats.DiscardedRows))
	r.DendrogramDepth.Set(float64(stats.Depth))
}

// RecordCentrality records one betweenness computation, which includes one
// all-pairs shortest path run.
func (r *Registry) RecordCentrality(duration time.Duration) {
	r.CentralityDuration.Observe(duration.Seconds())
	r.ShortestPathRuns.Inc()
}

// SetGraphSize records the shape of the input graph.
func (r *Registry) SetGraphSize(vertices, edges int) {
	r.GraphVertices.Set(float64(vertices))
	r.GraphEdges.Set(float64(edges))
}
