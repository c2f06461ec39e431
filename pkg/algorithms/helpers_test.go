package algorithms

import (
	"math/rand"
	"testing"

	"github.com/dd0wney/cluso-communities/pkg/graph"
)

// buildGraph creates an n-vertex graph from (from, to, weight) triples.
func buildGraph(t *testing.T, n int, edges ...[3]float64) *graph.Digraph {
	t.Helper()

	g := graph.NewDigraph(n)
	for _, e := range edges {
		if err := g.AddEdge(int(e[0]), int(e[1]), e[2]); err != nil {
			t.Fatalf("Failed to add edge %v: %v", e, err)
		}
	}
	return g
}

// pathGraph builds 0->1->...->n-1 with unit weights.
func pathGraph(t *testing.T, n int) *graph.Digraph {
	t.Helper()

	g := graph.NewDigraph(n)
	for v := 0; v+1 < n; v++ {
		if err := g.AddEdge(v, v+1, 1); err != nil {
			t.Fatalf("Failed to add edge %d->%d: %v", v, v+1, err)
		}
	}
	return g
}

// bidirectional returns both directions of every listed pair with unit weight.
func bidirectional(pairs ...[2]int) [][3]float64 {
	edges := make([][3]float64, 0, 2*len(pairs))
	for _, p := range pairs {
		edges = append(edges,
			[3]float64{float64(p[0]), float64(p[1]), 1},
			[3]float64{float64(p[1]), float64(p[0]), 1},
		)
	}
	return edges
}

// randomGraph builds a reproducible random graph with small integral
// weights so path sums are exact.
func randomGraph(seed int64, n int, density float64) *graph.Digraph {
	rng := rand.New(rand.NewSource(seed))
	g := graph.NewDigraph(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && rng.Float64() < density {
				g.AddEdge(i, j, float64(1+rng.Intn(3)))
			}
		}
	}
	return g
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("Expected %s to panic", name)
		}
	}()
	fn()
}
