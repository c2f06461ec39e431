package algorithms

import (
	"container/heap"
	"fmt"
	"sort"
	"strings"

	"github.com/dd0wney/cluso-communities/pkg/graph"
)

// NoEdge is the betweenness recorded for cells that do not correspond to an
// edge on some shortest path: the diagonal, pairs without a direct edge and
// mutually unreachable pairs.
const NoEdge = -1.0

// EdgeValues holds edge betweenness centrality. Values.At(i, j) is the
// number of all-pairs shortest paths that traverse the directed edge i->j,
// or NoEdge.
type EdgeValues struct {
	NumNodes int
	Values   *Matrix[float64]
}

// EdgeBetweennessCentrality computes shortest paths for g and derives the
// betweenness of every edge from them.
func EdgeBetweennessCentrality(g Graph) *EdgeValues {
	mustGraph("EdgeBetweennessCentrality", g)

	sp := FloydWarshall(g)
	defer sp.Release()

	return EdgeBetweennessFromPaths(g, sp)
}

// EdgeBetweennessFromPaths counts, for every ordered pair with a finite
// distance, the edges on its recorded shortest path. The graph is not
// modified.
func EdgeBetweennessFromPaths(g Graph, sp *ShortestPaths) *EdgeValues {
	mustGraph("EdgeBetweennessFromPaths", g)
	if sp == nil {
		panic("algorithms: EdgeBetweennessFromPaths called with nil shortest paths")
	}

	n := g.NumVertices()
	if sp.NumNodes != n {
		panic(fmt.Sprintf("algorithms: shortest paths cover %d vertices, graph has %d", sp.NumNodes, n))
	}

	evs := &EdgeValues{
		NumNodes: n,
		Values:   NewMatrix(n, 0.0),
	}

	credit := func(from, to int) {
		evs.Values.Add(from, to, 1)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && sp.Reachable(i, j) {
				sp.walk(i, j, credit)
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || !sp.Reachable(i, j) || !g.IsAdjacent(i, j) {
				evs.Values.Set(i, j, NoEdge)
			}
		}
	}

	return evs
}

// Value returns the betweenness of i->j.
func (evs *EdgeValues) Value(i, j int) float64 {
	return evs.Values.At(i, j)
}

// Max returns the largest betweenness over all existing edges. ok is false
// when every cell is NoEdge, i.e. the graph has no edges left.
func (evs *EdgeValues) Max() (best float64, ok bool) {
	best = NoEdge
	for i := 0; i < evs.NumNodes; i++ {
		for j := 0; j < evs.NumNodes; j++ {
			v := evs.Values.At(i, j)
			if v == NoEdge {
				continue
			}
			if !ok || v > best {
				best = v
				ok = true
			}
		}
	}
	return best, ok
}

// EdgesWithValue returns every edge whose betweenness equals value, in
// row-major order. Sentinel cells never match.
func (evs *EdgeValues) EdgesWithValue(value float64) []graph.Edge {
	if value == NoEdge {
		return nil
	}

	var edges []graph.Edge
	for i := 0; i < evs.NumNodes; i++ {
		for j := 0; j < evs.NumNodes; j++ {
			if evs.Values.At(i, j) == value {
				edges = append(edges, graph.Edge{From: i, To: j})
			}
		}
	}
	return edges
}

// RankedEdge holds an edge with its betweenness score.
type RankedEdge struct {
	From  int     `json:"from"`
	To    int     `json:"to"`
	Score float64 `json:"score"`
}

// rankedEdgeHeap is a min-heap of RankedEdge ordered so the weakest
// candidate sits at the root.
type rankedEdgeHeap []RankedEdge

func (h rankedEdgeHeap) Len() int           { return len(h) }
func (h rankedEdgeHeap) Less(i, j int) bool { return rankedBefore(h[j], h[i]) }
func (h rankedEdgeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *rankedEdgeHeap) Push(x any) {
	*h = append(*h, x.(RankedEdge))
}

func (h *rankedEdgeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// rankedBefore orders by score descending, then (from, to) ascending.
func rankedBefore(a, b RankedEdge) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.From != b.From {
		return a.From < b.From
	}
	return a.To < b.To
}

// TopEdges returns the n edges with the highest betweenness.
func (evs *EdgeValues) TopEdges(n int) []RankedEdge {
	if n <= 0 {
		return nil
	}

	h := make(rankedEdgeHeap, 0, n)
	heap.Init(&h)

	for i := 0; i < evs.NumNodes; i++ {
		for j := 0; j < evs.NumNodes; j++ {
			score := evs.Values.At(i, j)
			if score == NoEdge {
				continue
			}

			re := RankedEdge{From: i, To: j, Score: score}
			if h.Len() < n {
				heap.Push(&h, re)
			} else if rankedBefore(re, h[0]) {
				heap.Pop(&h)
				heap.Push(&h, re)
			}
		}
	}

	result := make([]RankedEdge, h.Len())
	copy(result, h)
	sort.Slice(result, func(i, j int) bool {
		return rankedBefore(result[i], result[j])
	})

	return result
}

// String renders the betweenness of every existing edge, one per line.
// Intended for debugging only.
func (evs *EdgeValues) String() string {
	var b strings.Builder
	for i := 0; i < evs.NumNodes; i++ {
		for j := 0; j < evs.NumNodes; j++ {
			if v := evs.Values.At(i, j); v != NoEdge {
				fmt.Fprintf(&b, "%d -> %d: %g\n", i, j, v)
			}
		}
	}
	return b.String()
}

// Release drops the value matrix.
func (evs *EdgeValues) Release() {
	evs.Values.Release()
}
