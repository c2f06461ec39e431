// Package graph provides the directed, weighted graph consumed by the
// community detection algorithms. Vertices are dense integer ids 0..N-1.
package graph

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// Digraph is an adjacency-list directed graph with at most one edge per
// ordered vertex pair. Outgoing lists are kept sorted by destination so
// enumeration order is deterministic.
type Digraph struct {
	out   [][]Edge
	edges int
	mu    sync.RWMutex
}

// NewDigraph creates a graph with n isolated vertices.
func NewDigraph(n int) *Digraph {
	if n < 0 {
		panic(fmt.Sprintf("graph: NewDigraph called with negative vertex count %d", n))
	}
	return &Digraph{out: make([][]Edge, n)}
}

// NumVertices returns the number of vertices.
func (g *Digraph) NumVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.out)
}

// NumEdges returns the number of directed edges.
func (g *Digraph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edges
}

func (g *Digraph) inRange(v int) bool {
	return v >= 0 && v < len(g.out)
}

// AddEdge inserts the edge from->to. Adding an edge that already exists
// replaces its weight.
func (g *Digraph) AddEdge(from, to int, weight float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inRange(from) || !g.inRange(to) {
		return edgeError("AddEdge", from, to, ErrVertexOutOfRange)
	}
	if weight <= 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return edgeError("AddEdge", from, to, fmt.Errorf("%w: %v", ErrInvalidWeight, weight))
	}

	list := g.out[from]
	idx := sort.Search(len(list), func(i int) bool { return list[i].To >= to })
	if idx < len(list) && list[idx].To == to {
		list[idx].Weight = weight
		return nil
	}

	list = append(list, Edge{})
	copy(list[idx+1:], list[idx:])
	list[idx] = Edge{From: from, To: to, Weight: weight}
	g.out[from] = list
	g.edges++

	return nil
}

// RemoveEdge deletes the edge from->to. Removing an absent edge, or one
// with out-of-range endpoints, is a no-op.
func (g *Digraph) RemoveEdge(from, to int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inRange(from) || !g.inRange(to) {
		return
	}

	list := g.out[from]
	idx := sort.Search(len(list), func(i int) bool { return list[i].To >= to })
	if idx >= len(list) || list[idx].To != to {
		return
	}

	g.out[from] = append(list[:idx], list[idx+1:]...)
	g.edges--
}

// IsAdjacent reports whether the directed edge from->to exists.
func (g *Digraph) IsAdjacent(from, to int) bool {
	_, ok := g.Weight(from, to)
	return ok
}

// Weight returns the weight of from->to and whether the edge exists.
func (g *Digraph) Weight(from, to int) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(from) || !g.inRange(to) {
		return 0, false
	}

	list := g.out[from]
	idx := sort.Search(len(list), func(i int) bool { return list[i].To >= to })
	if idx < len(list) && list[idx].To == to {
		return list[idx].Weight, true
	}
	return 0, false
}

// OutEdges returns a copy of the outgoing edges of v, sorted by destination.
func (g *Digraph) OutEdges(v int) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(v) {
		return nil
	}

	result := make([]Edge, len(g.out[v]))
	copy(result, g.out[v])
	return result
}

// Edges returns every edge ordered by source then destination.
func (g *Digraph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	result := make([]Edge, 0, g.edges)
	for _, list := range g.out {
		result = append(result, list...)
	}
	return result
}

// Clone returns a deep copy of the graph. Community detection removes
// edges in place, so callers that need the original afterwards should
// detect on a clone.
func (g *Digraph) Clone() *Digraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Digraph{
		out:   make([][]Edge, len(g.out)),
		edges: g.edges,
	}
	for v, list := range g.out {
		if len(list) == 0 {
			continue
		}
		clone.out[v] = make([]Edge, len(list))
		copy(clone.out[v], list)
	}
	return clone
}
