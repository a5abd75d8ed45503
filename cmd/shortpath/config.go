package main

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvpath/graph"
)

// ErrBadConfig indicates a configuration file that decodes but cannot
// describe a query.
var ErrBadConfig = errors.New("shortpath: invalid config")

// Config describes one shortest-path query.
type Config struct {
	Start    int       `toml:"start"`
	End      int       `toml:"end"`
	NoEdge   int64     `toml:"no_edge"`
	Validate bool      `toml:"validate"`
	Matrix   [][]int64 `toml:"matrix"`
}

// LoadConfig decodes the TOML file at path. start, end and matrix are
// required; no_edge defaults to graph.DefaultNoEdge.
func LoadConfig(path string) (*Config, error) {
	cfg := Config{NoEdge: graph.DefaultNoEdge}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	for _, key := range []string{"start", "end", "matrix"} {
		if !md.IsDefined(key) {
			return nil, fmt.Errorf("%w: %s: missing %q", ErrBadConfig, path, key)
		}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: %s: unknown key %q", ErrBadConfig, path, undecoded[0].String())
	}
	if err := cfg.Check(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &cfg, nil
}

// Check rejects an empty matrix. Shape and endpoint errors are left to
// graph.New and dijkstra.New.
func (c *Config) Check() error {
	if len(c.Matrix) == 0 {
		return fmt.Errorf("%w: matrix is empty", ErrBadConfig)
	}

	return nil
}

// Graph builds the graph described by the config.
func (c *Config) Graph() (*graph.Graph, error) {
	g, err := graph.New(c.Matrix, graph.WithNoEdge(c.NoEdge))
	if err != nil {
		return nil, err
	}
	if c.Validate {
		if err := g.Validate(); err != nil {
			return nil, err
		}
	}

	return g, nil
}
