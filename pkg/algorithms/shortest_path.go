package algorithms

import (
	"fmt"
	"math"
	"strings"
)

// Infinity is the distance between vertices with no connecting path.
var Infinity = math.Inf(1)

// NoHop marks next-hop cells with no defined first hop: the diagonal and
// unreachable pairs.
const NoHop = -1

// ShortestPaths holds all-pairs shortest directed distances and the first
// hop of each shortest path.
//
// Dist.At(i, j) is the length of the shortest path from i to j (Infinity if
// none, 0 on the diagonal). Next.At(i, j) is the vertex that follows i on
// that path, or NoHop. Walking Next from i always reaches j for finite
// distances.
type ShortestPaths struct {
	NumNodes int
	Dist     *Matrix[float64]
	Next     *Matrix[int]
}

// FloydWarshall computes all-pairs shortest paths in O(N³) time.
// Self-loops are ignored; if the graph reports several edges for one pair
// the lightest wins. Ties between equally short routes keep the route found
// first, so each ordered pair has exactly one recorded path.
func FloydWarshall(g Graph) *ShortestPaths {
	mustGraph("FloydWarshall", g)

	n := g.NumVertices()
	sp := &ShortestPaths{
		NumNodes: n,
		Dist:     NewMatrix(n, Infinity),
		Next:     NewMatrix(n, NoHop),
	}

	for i := 0; i < n; i++ {
		sp.Dist.Set(i, i, 0)
		for _, edge := range g.OutEdges(i) {
			w := edge.To
			if w == i || w < 0 || w >= n {
				continue
			}
			if !(edge.Weight > 0) || edge.Weight == Infinity {
				panic(fmt.Sprintf("algorithms: FloydWarshall requires positive finite weights, edge %d->%d has %v", i, w, edge.Weight))
			}
			if edge.Weight < sp.Dist.At(i, w) {
				sp.Dist.Set(i, w, edge.Weight)
				sp.Next.Set(i, w, w)
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik := sp.Dist.At(i, k)
			if i == k || dik == Infinity {
				continue
			}
			for j := 0; j < n; j++ {
				dkj := sp.Dist.At(k, j)
				if j == k || dkj == Infinity {
					continue
				}
				if d := dik + dkj; d < sp.Dist.At(i, j) {
					sp.Dist.Set(i, j, d)
					sp.Next.Set(i, j, sp.Next.At(i, k))
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if d := sp.Dist.At(i, j); d == 0 || d == Infinity {
				sp.Next.Set(i, j, NoHop)
			}
		}
	}

	return sp
}

// Distance returns the shortest distance from i to j.
func (sp *ShortestPaths) Distance(i, j int) float64 {
	return sp.Dist.At(i, j)
}

// Reachable reports whether a path from i to j exists.
func (sp *ShortestPaths) Reachable(i, j int) bool {
	return sp.Dist.At(i, j) != Infinity
}

// FirstHop returns the vertex after i on the shortest path to j, or NoHop.
func (sp *ShortestPaths) FirstHop(i, j int) int {
	return sp.Next.At(i, j)
}

// Path returns the vertices of the shortest path from i to j, both ends
// included. It returns [i] when i == j and nil when j is unreachable.
func (sp *ShortestPaths) Path(i, j int) []int {
	if !sp.Reachable(i, j) {
		return nil
	}
	if i == j {
		return []int{i}
	}

	path := []int{i}
	sp.walk(i, j, func(_, to int) {
		path = append(path, to)
	})
	return path
}

// walk calls visit for every edge on the recorded path from i to j.
// A path never has more than NumNodes-1 edges; exceeding that means the
// next-hop matrix is corrupt.
func (sp *ShortestPaths) walk(i, j int, visit func(from, to int)) {
	current := i
	for hops := 0; current != j; hops++ {
		next := sp.Next.At(current, j)
		if next == NoHop || hops >= sp.NumNodes {
			panic(fmt.Sprintf("algorithms: broken next-hop chain from %d to %d at %d", i, j, current))
		}
		visit(current, next)
		current = next
	}
}

// String renders every finite distance, one pair per line. Intended for
// debugging only.
func (sp *ShortestPaths) String() string {
	var b strings.Builder
	for i := 0; i < sp.NumNodes; i++ {
		for j := 0; j < sp.NumNodes; j++ {
			d := sp.Dist.At(i, j)
			if d == Infinity {
				fmt.Fprintf(&b, "%d -> %d: unreachable\n", i, j)
				continue
			}
			fmt.Fprintf(&b, "%d -> %d: dist %g next %d\n", i, j, d, sp.Next.At(i, j))
		}
	}
	return b.String()
}

// Release drops both matrices.
func (sp *ShortestPaths) Release() {
	sp.Dist.Release()
	sp.Next.Release()
}
