// Package config loads the YAML configuration of the benchmark tool.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-communities/pkg/logging"
	"github.com/dd0wney/cluso-communities/pkg/validation"
)

// Config is the top-level configuration.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Benchmark BenchmarkConfig `yaml:"benchmark"`
}

// LoggingConfig selects the log level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// MetricsConfig controls Prometheus instrumentation.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace" validate:"omitempty,max=64"`
}

// BenchmarkConfig describes the random graphs to generate. When GraphFile
// is set the graph is read from that edge list instead.
type BenchmarkConfig struct {
	Nodes     int     `yaml:"nodes" validate:"min=1,max=4096"`
	Edges     int     `yaml:"edges"`
	Seed      int64   `yaml:"seed"`
	MaxWeight float64 `yaml:"max_weight"`
	Runs      int     `yaml:"runs" validate:"min=1,max=1000"`
	Workers   int     `yaml:"workers" validate:"min=1,max=64"`
	TopEdges  int     `yaml:"top_edges"`
	GraphFile string  `yaml:"graph_file"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "girvan_newman",
		},
		Benchmark: BenchmarkConfig{
			Nodes:     64,
			Edges:     256,
			Seed:      1,
			MaxWeight: 10,
			Runs:      3,
			Workers:   1,
			TopEdges:  5,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogLevels lists the accepted logging.level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks struct tags first, then field and cross-field
// constraints, reporting every failure of the second pass at once.
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	b := c.Benchmark
	cv := validation.NewConfigValidator("config").
		OneOf("logging.level", c.Logging.Level, LogLevels).
		NonNegative("benchmark.edges", b.Edges).
		NonNegative("benchmark.top_edges", b.TopEdges).
		PositiveFloat("benchmark.max_weight", b.MaxWeight).
		Custom("benchmark.edges", func() error {
			if limit := b.Nodes * (b.Nodes - 1); b.Edges > limit {
				return fmt.Errorf("%d edges do not fit in a simple digraph of %d nodes (max %d)", b.Edges, b.Nodes, limit)
			}
			return nil
		}).
		RangeInt("benchmark.nodes", b.Nodes, 1, validation.MaxVertices)

	cv.When(c.Metrics.Enabled, func(v *validation.ConfigValidator) {
		v.Required("metrics.namespace", c.Metrics.Namespace)
	})

	if cv.HasErrors() {
		return fmt.Errorf("invalid config (%d problems): %w", len(cv.Errors()), cv.Validate())
	}
	return nil
}

// LogLevel returns the configured level as a logging.Level.
func (c *Config) LogLevel() logging.Level {
	return logging.ParseLevel(c.Logging.Level)
}

// LoadEdgeList reads and validates a YAML or JSON edge list.
func LoadEdgeList(path string) (*validation.EdgeListRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read edge list: %w", err)
	}

	var req validation.EdgeListRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse edge list %s: %w", path, err)
	}
	if err := validation.ValidateEdgeList(&req); err != nil {
		return nil, fmt.Errorf("invalid edge list %s: %w", path, err)
	}
	return &req, nil
}
