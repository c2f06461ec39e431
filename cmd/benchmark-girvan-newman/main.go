package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dd0wney/cluso-communities/pkg/algorithms"
	"github.com/dd0wney/cluso-communities/pkg/config"
	"github.com/dd0wney/cluso-communities/pkg/graph"
	"github.com/dd0wney/cluso-communities/pkg/logging"
	"github.com/dd0wney/cluso-communities/pkg/metrics"
	"github.com/dd0wney/cluso-communities/pkg/parallel"
	"github.com/dd0wney/cluso-communities/pkg/validation"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	nodes := flag.Int("nodes", 0, "Number of nodes (overrides config)")
	edges := flag.Int("edges", -1, "Number of edges (overrides config)")
	seed := flag.Int64("seed", 0, "Random seed (overrides config)")
	graphFile := flag.String("graph", "", "YAML or JSON edge list to use instead of a random graph")
	workers := flag.Int("workers", 0, "Concurrent detection runs (overrides config)")
	communities := flag.Int("communities", 4, "Number of communities to cut the dendrogram into")
	metricsAddr := flag.String("metrics-addr", "", "Serve Prometheus metrics on this address after the run")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	cfg.Benchmark.Nodes = validation.DefaultOr(*nodes, cfg.Benchmark.Nodes)
	if *edges >= 0 {
		cfg.Benchmark.Edges = *edges
	}
	cfg.Benchmark.Seed = validation.DefaultOr(*seed, cfg.Benchmark.Seed)
	cfg.Benchmark.GraphFile = validation.DefaultOr(*graphFile, cfg.Benchmark.GraphFile)
	cfg.Benchmark.Workers = validation.DefaultOr(*workers, cfg.Benchmark.Workers)
	if err := validation.ValidateConfig(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logging.NewJSONLogger(os.Stderr, cfg.LogLevel())

	var registry *metrics.Registry
	switch {
	case !cfg.Metrics.Enabled:
	case cfg.Metrics.Namespace == metrics.DefaultNamespace:
		registry = metrics.DefaultRegistry()
	default:
		registry = metrics.NewRegistryWithNamespace(cfg.Metrics.Namespace)
	}

	printTitle("Girvan-Newman Community Detection Benchmark")

	start := time.Now()
	source, err := loadGraph(cfg.Benchmark)
	if err != nil {
		log.Fatalf("Failed to build graph: %v", err)
	}
	fmt.Printf("Graph: %d nodes, %d edges (built in %v)\n", source.NumVertices(), source.NumEdges(), time.Since(start))

	// Betweenness of the untouched graph
	start = time.Now()
	evs := algorithms.EdgeBetweennessCentrality(source)
	printHeader("Edge betweenness")
	fmt.Printf("Computed in %v\n", time.Since(start))
	fmt.Printf("  Top %d edges by betweenness:\n", cfg.Benchmark.TopEdges)
	for i, e := range evs.TopEdges(cfg.Benchmark.TopEdges) {
		fmt.Printf("    %d. %d -> %d (score: %.0f)\n", i+1, e.From, e.To, e.Score)
	}
	evs.Release()

	detector := algorithms.NewGirvanNewman(algorithms.GirvanNewmanOptions{
		Logger:  logger,
		Metrics: registry,
	})

	graphs := make([]algorithms.MutableGraph, cfg.Benchmark.Runs)
	for i := range graphs {
		graphs[i] = source.Clone()
	}

	printHeader("Detection")
	fmt.Printf("Running %d detections on %d workers...\n", len(graphs), cfg.Benchmark.Workers)
	start = time.Now()
	results, err := parallel.DetectAll(detector, graphs, cfg.Benchmark.Workers)
	if err != nil {
		log.Fatalf("Detection failed: %v", err)
	}
	fmt.Printf("All runs finished in %v\n", time.Since(start))

	durations := make([]time.Duration, len(results))
	for i, r := range results {
		durations[i] = r.Duration
		fmt.Printf("  Run %d: %v (%d iterations, %d splits)\n", i+1, r.Duration, r.Iterations, r.Levels)
	}
	last := results[len(results)-1]

	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })
	printHeader("Summary")
	fmt.Println(summaryBox(
		[2]string{"Fastest", durations[0].String()},
		[2]string{"Median", durations[len(durations)/2].String()},
		[2]string{"Slowest", durations[len(durations)-1].String()},
		[2]string{"Dendrogram depth", fmt.Sprint(last.Dendrogram.Depth())},
		[2]string{"Edges removed", fmt.Sprint(len(last.RemovedEdges))},
	))

	if cut := communityCut(last.Dendrogram, *communities, source.NumVertices()); len(cut) > 0 {
		printHeader(fmt.Sprintf("%d communities", len(cut)))
		for i, c := range cut {
			fmt.Printf("    %d. %d vertices %v\n", i+1, len(c), preview(c, 10))
		}
	}

	if *metricsAddr != "" && registry != nil {
		serveMetrics(*metricsAddr, registry, logger)
	}

	fmt.Printf("\nBenchmark complete!\n")
}

func loadGraph(cfg config.BenchmarkConfig) (*graph.Digraph, error) {
	if cfg.GraphFile != "" {
		req, err := config.LoadEdgeList(cfg.GraphFile)
		if err != nil {
			return nil, err
		}
		return validation.BuildDigraph(req)
	}
	return randomGraph(cfg), nil
}

// randomGraph adds distinct random edges until the target count is reached.
// Config validation guarantees the target fits.
func randomGraph(cfg config.BenchmarkConfig) *graph.Digraph {
	rng := rand.New(rand.NewSource(cfg.Seed))
	g := graph.NewDigraph(cfg.Nodes)

	for g.NumEdges() < cfg.Edges {
		from := rng.Intn(cfg.Nodes)
		to := rng.Intn(cfg.Nodes)
		if from == to || g.IsAdjacent(from, to) {
			continue
		}
		weight := 1 + rng.Float64()*(cfg.MaxWeight-1)
		if err := g.AddEdge(from, to, weight); err != nil {
			log.Printf("Warning: Failed to create edge: %v", err)
		}
	}
	return g
}

// communityCut cuts d into at most requested communities, clamped to the
// vertex count. An empty graph has nothing to cut.
func communityCut(d *algorithms.Dendrogram, requested, vertices int) [][]int {
	if vertices == 0 {
		return nil
	}
	return d.Communities(validation.ClampInt(requested, 1, vertices))
}

func preview(vertices []int, limit int) string {
	if len(vertices) <= limit {
		return fmt.Sprint(vertices)
	}
	return fmt.Sprintf("%v...", vertices[:limit])
}

// serveMetrics exposes the registry until the process is interrupted.
func serveMetrics(addr string, registry *metrics.Registry, logger logging.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry.GetPrometheusRegistry(), promhttp.HandlerOpts{}))
	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server failed", logging.Error(err))
		}
	}()

	fmt.Printf("\nServing metrics on %s/metrics (Ctrl+C to stop)\n", addr)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	server.Close()
}
