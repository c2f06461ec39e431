package graph

import (
	"fmt"
	"sort"

	gonumgraph "gonum.org/v1/gonum/graph"
)

// FromWeightedDirected converts a gonum weighted directed graph into a
// Digraph. Gonum node ids are mapped to dense ids in ascending order; the
// returned slice maps each dense id back to its gonum id. Self-loops are
// dropped.
func FromWeightedDirected(g gonumgraph.WeightedDirected) (*Digraph, []int64, error) {
	if g == nil {
		return nil, nil, fmt.Errorf("FromWeightedDirected: %w: nil graph", ErrUnsupportedGraph)
	}

	nodes := gonumgraph.NodesOf(g.Nodes())
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	dense := make(map[int64]int, len(ids))
	for i, id := range ids {
		dense[id] = i
	}

	d := NewDigraph(len(ids))
	for from, uid := range ids {
		successors := g.From(uid)
		for successors.Next() {
			vid := successors.Node().ID()
			if vid == uid {
				continue
			}
			edge := g.WeightedEdge(uid, vid)
			if edge == nil {
				continue
			}
			if err := d.AddEdge(from, dense[vid], edge.Weight()); err != nil {
				return nil, nil, fmt.Errorf("FromWeightedDirected: edge %d->%d: %w", uid, vid, err)
			}
		}
	}

	return d, ids, nil
}
