// Package config loads the seed network and diagnostics level for a
// dispatch session from YAML.
//
// A missing file is not an error for the binary: it simply uses Default().
// When a file is given, keys it omits keep their default values and
// unknown keys are rejected.
//
//	log_level: info
//	edges:
//	  - {from: Hospital, to: Fire Station, weight: 5}
//	  - {from: Hospital, to: Police Station, weight: 3}
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dispatchsim/core"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Edge is one undirected road of the seed network.
type Edge struct {
	From   string `yaml:"from" validate:"required"`
	To     string `yaml:"to" validate:"required"`
	Weight int64  `yaml:"weight" validate:"gte=0"`
}

// Config is the complete session configuration.
type Config struct {
	LogLevel string `yaml:"log_level" validate:"required,oneof=debug info warn error"`
	Edges    []Edge `yaml:"edges" validate:"required,min=1,dive"`
}

// Default returns the built-in network: five roads between Hospital,
// Fire Station, Police Station and Accident Site.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Edges: []Edge{
			{From: "Hospital", To: "Fire Station", Weight: 5},
			{From: "Hospital", To: "Police Station", Weight: 3},
			{From: "Fire Station", To: "Accident Site", Weight: 8},
			{From: "Police Station", To: "Accident Site", Weight: 6},
			{From: "Hospital", To: "Accident Site", Weight: 10},
		},
	}
}

// Load reads path and overlays it on Default. The result is validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML bytes on top of Default and validates the result.
// An empty document yields Default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Level maps LogLevel to a slog.Level. Unknown values map to slog.LevelWarn.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Build creates the Location graph described by Edges, in file order.
func (c *Config) Build() (*core.Graph, error) {
	g := core.NewGraph(core.WithNonNegativeWeights())
	for i, e := range c.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("config: edge %d (%s–%s): %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}
