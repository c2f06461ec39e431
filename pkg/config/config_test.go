package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dd0wney/cluso-communities/pkg/logging"
	"github.com/dd0wney/cluso-communities/pkg/validation"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level info, got %s", cfg.Logging.Level)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Namespace != "girvan_newman" {
		t.Errorf("unexpected metrics config %+v", cfg.Metrics)
	}
	if cfg.Benchmark.Nodes != 64 || cfg.Benchmark.Edges != 256 {
		t.Errorf("unexpected benchmark size %d/%d", cfg.Benchmark.Nodes, cfg.Benchmark.Edges)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
	if err := validation.ValidateConfig(cfg); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
logging:
  level: DEBUG
benchmark:
  nodes: 10
  edges: 20
  seed: 7
`))
	if err != nil {
		t.Fatalf("failed to parse config: %v", err)
	}

	if cfg.LogLevel() != logging.DebugLevel {
		t.Errorf("expected debug level, got %v", cfg.LogLevel())
	}
	if cfg.Benchmark.Nodes != 10 || cfg.Benchmark.Edges != 20 || cfg.Benchmark.Seed != 7 {
		t.Errorf("unexpected benchmark config %+v", cfg.Benchmark)
	}
	// Untouched keys keep their defaults
	if cfg.Benchmark.MaxWeight != 10 || cfg.Benchmark.Runs != 3 {
		t.Errorf("expected defaults to survive, got %+v", cfg.Benchmark)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{
			name:    "unknown level",
			content: "logging:\n  level: trace\n",
			errPart: "config.logging.level",
		},
		{
			name:    "zero nodes",
			content: "benchmark:\n  nodes: 0\n",
			errPart: "Nodes",
		},
		{
			name:    "too dense",
			content: "benchmark:\n  nodes: 3\n  edges: 7\n",
			errPart: "benchmark.edges",
		},
		{
			name:    "metrics without namespace",
			content: "metrics:\n  enabled: true\n  namespace: \"\"\n",
			errPart: "metrics.namespace",
		},
		{
			name:    "non-positive weight",
			content: "benchmark:\n  max_weight: 0\n",
			errPart: "config.benchmark.max_weight",
		},
		{
			name:    "negative edges",
			content: "benchmark:\n  edges: -1\n",
			errPart: "config.benchmark.edges",
		},
		{
			name:    "negative top edges",
			content: "benchmark:\n  top_edges: -2\n",
			errPart: "config.benchmark.top_edges",
		},
		{
			name:    "malformed yaml",
			content: "benchmark: [",
			errPart: "failed to parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			if err == nil {
				t.Fatal("expected error but got none")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("expected error containing %q, got: %v", tt.errPart, err)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "loud"
	cfg.Benchmark.TopEdges = -1
	cfg.Benchmark.MaxWeight = -3

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error but got none")
	}
	msg := err.Error()
	if !strings.Contains(msg, "3 problems") {
		t.Errorf("expected the problem count in %q", msg)
	}
	for _, part := range []string{"logging.level", "benchmark.top_edges", "benchmark.max_weight"} {
		if !strings.Contains(msg, part) {
			t.Errorf("expected %q in %q", part, msg)
		}
	}
	if err := validation.ValidateConfig(cfg); err == nil || err.Error() != msg {
		t.Errorf("expected ValidateConfig to report %q, got %v", msg, err)
	}
}

func TestParse_MetricsDisabledNeedsNoNamespace(t *testing.T) {
	cfg, err := Parse([]byte("metrics:\n  enabled: false\n  namespace: \"\"\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Metrics.Enabled {
		t.Error("expected metrics disabled")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("benchmark:\n  runs: 5\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Benchmark.Runs != 5 {
		t.Errorf("expected 5 runs, got %d", cfg.Benchmark.Runs)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadEdgeList(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "graph.yaml")
	content := `
vertices: 4
edges:
  - {from: 0, to: 1, weight: 1}
  - {from: 1, to: 2, weight: 1}
  - {from: 2, to: 3, weight: 1}
`
	if err := os.WriteFile(yamlPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write edge list: %v", err)
	}

	req, err := LoadEdgeList(yamlPath)
	if err != nil {
		t.Fatalf("failed to load edge list: %v", err)
	}
	g, err := validation.BuildDigraph(req)
	if err != nil {
		t.Fatalf("failed to build graph: %v", err)
	}
	if g.NumVertices() != 4 || g.NumEdges() != 3 {
		t.Errorf("expected 4 vertices and 3 edges, got %d and %d", g.NumVertices(), g.NumEdges())
	}

	jsonPath := filepath.Join(dir, "graph.json")
	if err := os.WriteFile(jsonPath, []byte(`{"vertices": 2, "edges": [{"from": 0, "to": 1, "weight": 2.5}]}`), 0644); err != nil {
		t.Fatalf("failed to write edge list: %v", err)
	}
	req, err = LoadEdgeList(jsonPath)
	if err != nil {
		t.Fatalf("failed to load JSON edge list: %v", err)
	}
	if len(req.Edges) != 1 || req.Edges[0].Weight != 2.5 {
		t.Errorf("unexpected edges %+v", req.Edges)
	}

	badPath := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badPath, []byte("vertices: 1\nedges:\n  - {from: 0, to: 3, weight: 1}\n"), 0644); err != nil {
		t.Fatalf("failed to write edge list: %v", err)
	}
	if _, err := LoadEdgeList(badPath); err == nil {
		t.Error("expected error for out-of-range vertex")
	}
}
