package graph

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/graph/simple"
)

func TestFromWeightedDirected(t *testing.T) {
	g := simple.NewWeightedDirectedGraph(0, 0)
	g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(10), simple.Node(30), 2))
	g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(30), simple.Node(20), 1.5))
	g.AddNode(simple.Node(40))

	d, ids, err := FromWeightedDirected(g)
	if err != nil {
		t.Fatalf("FromWeightedDirected failed: %v", err)
	}

	wantIDs := []int64{10, 20, 30, 40}
	if len(ids) != len(wantIDs) {
		t.Fatalf("Expected %d ids, got %v", len(wantIDs), ids)
	}
	for i := range wantIDs {
		if ids[i] != wantIDs[i] {
			t.Errorf("ids[%d] = %d, want %d", i, ids[i], wantIDs[i])
		}
	}

	if d.NumVertices() != 4 || d.NumEdges() != 2 {
		t.Fatalf("Expected 4 vertices and 2 edges, got %d and %d", d.NumVertices(), d.NumEdges())
	}
	if w, ok := d.Weight(0, 2); !ok || w != 2 {
		t.Errorf("Expected 0->2 with weight 2, got %v (exists=%v)", w, ok)
	}
	if w, ok := d.Weight(2, 1); !ok || w != 1.5 {
		t.Errorf("Expected 2->1 with weight 1.5, got %v (exists=%v)", w, ok)
	}
	if len(d.OutEdges(3)) != 0 {
		t.Error("Isolated gonum node should have no outgoing edges")
	}
}

func TestFromWeightedDirected_RejectsNonPositiveWeight(t *testing.T) {
	g := simple.NewWeightedDirectedGraph(0, 0)
	g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(0), simple.Node(1), -1))

	_, _, err := FromWeightedDirected(g)
	if !errors.Is(err, ErrInvalidWeight) {
		t.Errorf("Expected ErrInvalidWeight, got %v", err)
	}
}

func TestFromWeightedDirected_Nil(t *testing.T) {
	_, _, err := FromWeightedDirected(nil)
	if !errors.Is(err, ErrUnsupportedGraph) {
		t.Errorf("Expected ErrUnsupportedGraph, got %v", err)
	}
}
