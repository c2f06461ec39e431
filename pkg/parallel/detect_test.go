package parallel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-communities/pkg/algorithms"
	"github.com/dd0wney/cluso-communities/pkg/graph"
	"github.com/dd0wney/cluso-communities/pkg/metrics"
)

func pathGraph(t *testing.T, n int) *graph.Digraph {
	t.Helper()
	g := graph.NewDigraph(n)
	for v := 0; v+1 < n; v++ {
		require.NoError(t, g.AddEdge(v, v+1, 1))
	}
	return g
}

func TestDetectAll_MatchesSequential(t *testing.T) {
	source := pathGraph(t, 6)
	registry := metrics.NewRegistry()
	detector := algorithms.NewGirvanNewman(algorithms.GirvanNewmanOptions{Metrics: registry})

	graphs := make([]algorithms.MutableGraph, 8)
	for i := range graphs {
		graphs[i] = source.Clone()
	}

	results, err := DetectAll(detector, graphs, 4)
	require.NoError(t, err)
	require.Len(t, results, len(graphs))

	want := algorithms.GirvanNewman(source.Clone()).String()
	for i, r := range results {
		require.NotNil(t, r, "result %d", i)
		assert.Equal(t, want, r.Dendrogram.String())
	}
	assert.Equal(t, 5, source.NumEdges(), "source graph must stay intact")

	ids := make(map[string]bool)
	for _, r := range results {
		ids[r.RunID] = true
	}
	assert.Len(t, ids, len(results), "every run gets its own id")
}

func TestDetectAll_ReportsPanics(t *testing.T) {
	detector := algorithms.NewGirvanNewman(algorithms.GirvanNewmanOptions{})

	graphs := []algorithms.MutableGraph{pathGraph(t, 3), nil, pathGraph(t, 2)}
	results, err := DetectAll(detector, graphs, 2)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 detections failed")
	assert.NotNil(t, results[0])
	assert.Nil(t, results[1])
	assert.NotNil(t, results[2])
}

func TestDetectAll_NilDetector(t *testing.T) {
	_, err := DetectAll(nil, nil, 1)
	assert.Error(t, err)
}
