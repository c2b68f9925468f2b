// Package config loads the settings of the textnet command: defaults, then an
// optional YAML file, then environment variables (a .env file is honoured).
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/textnet"
	"github.com/katalvlaran/textnet/community"
	"github.com/katalvlaran/textnet/fca"
	"github.com/katalvlaran/textnet/tfidf"
)

type WeightingConfig struct {
	Sublinear bool `yaml:"sublinear"`
	MinDocs   int  `yaml:"min_docs"`
}

type GraphConfig struct {
	NonzeroEdges bool `yaml:"nonzero_edges"`
}

type ClusteringConfig struct {
	Resolution  float64 `yaml:"resolution"`
	Iterations  int     `yaml:"iterations"`
	Seed        *int64  `yaml:"seed"`
	EdgeWeights bool    `yaml:"edge_weights"`
}

type ContextConfig struct {
	Alpha float64 `yaml:"alpha"`
}

type Config struct {
	LogLevel   string           `yaml:"log_level"`
	Weighting  WeightingConfig  `yaml:"weighting"`
	Graph      GraphConfig      `yaml:"graph"`
	Clustering ClusteringConfig `yaml:"clustering"`
	Context    ContextConfig    `yaml:"context"`
}

// Default returns the library defaults.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Weighting: WeightingConfig{
			Sublinear: true,
			MinDocs:   tfidf.DefaultMinDocs,
		},
		Clustering: ClusteringConfig{
			Resolution: community.DefaultResolution,
			Iterations: community.DefaultIterations,
		},
		Context: ContextConfig{Alpha: fca.DefaultAlpha},
	}
}

// Load resolves the configuration. path may be empty.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config %s: %w", path, err)
		}
	}

	cfg.LogLevel = getEnv("TEXTNET_LOG_LEVEL", cfg.LogLevel)
	cfg.Weighting.Sublinear = getEnvBool("TEXTNET_SUBLINEAR", cfg.Weighting.Sublinear)
	cfg.Weighting.MinDocs = getEnvInt("TEXTNET_MIN_DOCS", cfg.Weighting.MinDocs)
	cfg.Graph.NonzeroEdges = getEnvBool("TEXTNET_NONZERO_EDGES", cfg.Graph.NonzeroEdges)
	cfg.Clustering.Resolution = getEnvFloat("TEXTNET_RESOLUTION", cfg.Clustering.Resolution)
	cfg.Clustering.Iterations = getEnvInt("TEXTNET_ITERATIONS", cfg.Clustering.Iterations)
	cfg.Clustering.EdgeWeights = getEnvBool("TEXTNET_EDGE_WEIGHTS", cfg.Clustering.EdgeWeights)
	if value := os.Getenv("TEXTNET_SEED"); value != "" {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TEXTNET_SEED=%q: %w", value, err)
		}
		cfg.Clustering.Seed = &seed
	}
	cfg.Context.Alpha = getEnvFloat("TEXTNET_ALPHA", cfg.Context.Alpha)

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Weighting.MinDocs < 1 {
		return fmt.Errorf("min_docs must be >= 1, got %d", c.Weighting.MinDocs)
	}
	if !(c.Clustering.Resolution > 0) || math.IsInf(c.Clustering.Resolution, 0) {
		return fmt.Errorf("resolution must be > 0, got %g", c.Clustering.Resolution)
	}
	if c.Clustering.Iterations < 1 {
		return fmt.Errorf("iterations must be >= 1, got %d", c.Clustering.Iterations)
	}
	if math.IsNaN(c.Context.Alpha) || c.Context.Alpha < 0 || c.Context.Alpha > 1 {
		return fmt.Errorf("alpha must be in [0, 1], got %g", c.Context.Alpha)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "error":
	default:
		return fmt.Errorf("log_level must be debug, info or error, got %q", c.LogLevel)
	}

	return nil
}

// Options translates the configuration into textnet options. Call Validate
// first: the option constructors panic on out-of-range values.
func (c *Config) Options() []textnet.Option {
	opts := []textnet.Option{
		textnet.WithSublinear(c.Weighting.Sublinear),
		textnet.WithMinDocs(c.Weighting.MinDocs),
		textnet.WithResolution(c.Clustering.Resolution),
		textnet.WithIterations(c.Clustering.Iterations),
		textnet.WithAlpha(c.Context.Alpha),
	}
	if c.Graph.NonzeroEdges {
		opts = append(opts, textnet.WithNonzeroEdges())
	}
	if c.Clustering.EdgeWeights {
		opts = append(opts, textnet.WithEdgeWeights())
	}
	if c.Clustering.Seed != nil {
		opts = append(opts, textnet.WithSeed(*c.Clustering.Seed))
	}

	return opts
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
