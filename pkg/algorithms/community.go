package algorithms

import (
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-communities/pkg/graph"
	"github.com/dd0wney/cluso-communities/pkg/logging"
	"github.com/dd0wney/cluso-communities/pkg/metrics"
)

// GirvanNewmanOptions configures a detector. Zero values are valid: a nil
// Logger discards output and a nil Metrics records nothing.
type GirvanNewmanOptions struct {
	Logger  logging.Logger
	Metrics *metrics.Registry
}

// GirvanNewmanResult is the outcome of one detection run.
type GirvanNewmanResult struct {
	RunID      string
	Dendrogram *Dendrogram
	// Iterations counts edge-removal steps, including those that did not
	// split a component.
	Iterations int
	// RemovedEdges lists removed edges in removal order; edges removed in
	// the same step appear in row-major order.
	RemovedEdges []graph.Edge
	// Levels is the number of recorded splits.
	Levels   int
	Duration time.Duration
}

// GirvanNewmanDetector runs Girvan–Newman community detection.
type GirvanNewmanDetector struct {
	logger  logging.Logger
	metrics *metrics.Registry
}

// NewGirvanNewman creates a detector.
func NewGirvanNewman(opts GirvanNewmanOptions) *GirvanNewmanDetector {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &GirvanNewmanDetector{
		logger:  logger.With(logging.Component("girvan_newman")),
		metrics: opts.Metrics,
	}
}

// GirvanNewman builds the community dendrogram of g with default options.
// It removes every edge of g; pass a copy to keep the original.
func GirvanNewman(g MutableGraph) *Dendrogram {
	return NewGirvanNewman(GirvanNewmanOptions{}).Detect(g).Dendrogram
}

// Detect repeatedly removes the edges of highest betweenness until none
// remain, recording each removal that splits a component, then assembles
// the dendrogram from the recorded splits.
//
// g is mutated destructively: every edge except self-loops is removed.
func (d *GirvanNewmanDetector) Detect(g MutableGraph) *GirvanNewmanResult {
	mustGraph("GirvanNewman", g)

	result := &GirvanNewmanResult{RunID: uuid.NewString()}
	logger := d.logger.With(logging.RunID(result.RunID))

	n := g.NumVertices()
	timer := logging.StartTimer(logger, "community detection complete", logging.Vertices(n))
	if d.metrics != nil {
		d.metrics.SetGraphSize(n, countEdges(g))
	}

	initial, count := weakComponents(g)
	table := newComponentTable(initial, count)
	logger.Debug("initial components", logging.Row(0), logging.Components(count))

	discarded := 0
	for {
		evs := d.centrality(g)
		top, ok := evs.Max()
		if !ok {
			evs.Release()
			break
		}

		removed := evs.EdgesWithValue(top)
		evs.Release()
		for _, edge := range removed {
			g.RemoveEdge(edge.From, edge.To)
		}
		result.Iterations++
		result.RemovedEdges = append(result.RemovedEdges, removed...)

		assignment, count := weakComponents(g)
		if !table.record(assignment, count) {
			discarded++
			logger.Debug("removal did not split",
				logging.Iteration(result.Iterations),
				logging.Float64("betweenness", top),
				logging.Edges(len(removed)),
			)
			continue
		}

		logger.Debug("split recorded",
			logging.Iteration(result.Iterations),
			logging.Row(table.numRows()-1),
			logging.Float64("betweenness", top),
			logging.Edges(len(removed)),
			logging.Components(count),
		)
	}

	result.Levels = table.numRows() - 1
	result.Dendrogram = buildDendrogram(table, n)

	result.Duration = timer.End(
		logging.Int("iterations", result.Iterations),
		logging.Int("levels", result.Levels),
		logging.Int("edges_removed", len(result.RemovedEdges)),
	)

	if d.metrics != nil {
		d.metrics.RecordDetection(metrics.DetectionStats{
			Duration:      result.Duration,
			Iterations:    result.Iterations,
			EdgesRemoved:  len(result.RemovedEdges),
			Splits:        result.Levels,
			DiscardedRows: discarded,
			Depth:         result.Dendrogram.Depth(),
		})
	}

	return result
}

func (d *GirvanNewmanDetector) centrality(g Graph) *EdgeValues {
	start := time.Now()
	evs := EdgeBetweennessCentrality(g)
	if d.metrics != nil {
		d.metrics.RecordCentrality(time.Since(start))
	}
	return evs
}

func countEdges(g Graph) int {
	total := 0
	for v := 0; v < g.NumVertices(); v++ {
		total += len(g.OutEdges(v))
	}
	return total
}

// buildDendrogram walks the component table top down. A set of vertices
// becomes a leaf once it holds a single vertex; otherwise the first later
// row that splits it decides its children.
func buildDendrogram(table *componentTable, n int) *Dendrogram {
	switch n {
	case 0:
		return nil
	case 1:
		return NewLeaf(0)
	}

	all := make([]int, n)
	for v := range all {
		all[v] = v
	}
	return buildSubtree(table, all, -1)
}

func buildSubtree(table *componentTable, members []int, row int) *Dendrogram {
	if len(members) == 1 {
		return NewLeaf(members[0])
	}

	for r := row + 1; r < table.numRows(); r++ {
		if groups := table.partition(members, r); len(groups) > 1 {
			return joinGroups(table, groups, r)
		}
	}

	// The final row has every vertex in its own component, so some row
	// always splits members. Fall back to singletons regardless so every
	// vertex still reaches a leaf.
	groups := make([][]int, len(members))
	for i, v := range members {
		groups[i] = []int{v}
	}
	return joinGroups(table, groups, table.numRows()-1)
}

// joinGroups turns a split into binary nodes. A split into k > 2 groups
// becomes a right-leaning chain (g1 (g2 (... gk))) so no group is lost.
func joinGroups(table *componentTable, groups [][]int, row int) *Dendrogram {
	left := buildSubtree(table, groups[0], row)
	if len(groups) == 2 {
		return NewInternal(left, buildSubtree(table, groups[1], row))
	}
	return NewInternal(left, joinGroups(table, groups[1:], row))
}
