// Package algorithms implements Girvan–Newman hierarchical community
// detection on directed, weighted graphs: all-pairs shortest paths, edge
// betweenness centrality and the iterative edge-removal loop that builds
// a dendrogram.
package algorithms

import "github.com/dd0wney/cluso-communities/pkg/graph"

// Graph is the read-only view the shortest-path and centrality engines
// need. Vertices are dense ids 0..NumVertices()-1.
type Graph interface {
	NumVertices() int
	IsAdjacent(from, to int) bool
	OutEdges(v int) []graph.Edge
}

// MutableGraph is a Graph whose edges can be removed. RemoveEdge must be a
// no-op when the edge is absent.
type MutableGraph interface {
	Graph
	RemoveEdge(from, to int)
}

// Compile-time check that the in-memory graph satisfies MutableGraph.
var _ MutableGraph = (*graph.Digraph)(nil)

func mustGraph(op string, g Graph) {
	if g == nil {
		panic("algorithms: " + op + " called with nil graph")
	}
}
