// Package config loads the run configuration of the gridpath tool from a
// YAML file, with overrides from the environment or a .env file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/maze"
	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/search"
)

// Defaults for a fresh board.
const (
	DefaultRows      = 20
	DefaultCols      = 50
	DefaultAlgorithm = "dijkstra"
)

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// NoMaze is the generator name that leaves the board open.
const NoMaze = "none"

// Config is the full run configuration. Compare lists the algorithms of a
// comparison run; empty means all.
type Config struct {
	Rows      int          `yaml:"rows"`
	Cols      int          `yaml:"cols"`
	Start     CellConfig   `yaml:"start"`
	Finish    CellConfig   `yaml:"finish"`
	Algorithm string       `yaml:"algorithm"`
	Compare   []string     `yaml:"compare,omitempty"`
	Maze      MazeConfig   `yaml:"maze"`
	Render    RenderConfig `yaml:"render"`
}

// CellConfig is a grid coordinate.
type CellConfig struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// MazeConfig selects and tunes the wall generator.
type MazeConfig struct {
	Generator       string  `yaml:"generator"`
	Seed            int64   `yaml:"seed"`
	LoopProbability float64 `yaml:"loop_probability"`
	Density         float64 `yaml:"density"`
}

// RenderConfig controls terminal output.
type RenderConfig struct {
	Color       bool `yaml:"color"`
	ShowVisited bool `yaml:"show_visited"`
}

// DefaultConfig returns a 20×50 open board, start (5,5), finish (10,35),
// Dijkstra, no maze.
func DefaultConfig() *Config {
	return &Config{
		Rows:      DefaultRows,
		Cols:      DefaultCols,
		Start:     CellConfig{Row: 5, Col: 5},
		Finish:    CellConfig{Row: 10, Col: 35},
		Algorithm: DefaultAlgorithm,
		Maze: MazeConfig{
			Generator:       NoMaze,
			LoopProbability: maze.DefaultLoopProbability,
			Density:         maze.DefaultDensity,
		},
		Render: RenderConfig{ShowVisited: true},
	}
}

// Load reads a YAML file over DefaultConfig. Unknown keys are rejected.
// An empty file yields the defaults. The result is not validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks dimensions, endpoints, names and probabilities.
// Every error wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	}
	start, finish := c.StartCell(), c.FinishCell()
	for _, cell := range []grid.Cell{start, finish} {
		if cell.Row < 0 || cell.Row >= c.Rows || cell.Col < 0 || cell.Col >= c.Cols {
			return fmt.Errorf("%w: endpoint %v outside %dx%d", ErrInvalidConfig, cell, c.Rows, c.Cols)
		}
	}
	if start == finish {
		return fmt.Errorf("%w: start and finish both at %v", ErrInvalidConfig, start)
	}
	if _, err := c.Kind(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Kinds(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, _, err := c.Generator(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	probs := []struct {
		name string
		p    float64
	}{
		{"loop_probability", c.Maze.LoopProbability},
		{"density", c.Maze.Density},
	}
	for _, pr := range probs {
		if !(pr.p >= 0 && pr.p <= 1) {
			return fmt.Errorf("%w: maze.%s %v outside [0,1]", ErrInvalidConfig, pr.name, pr.p)
		}
	}
	return nil
}

// StartCell returns the configured start.
func (c *Config) StartCell() grid.Cell {
	return grid.Cell{Row: c.Start.Row, Col: c.Start.Col}
}

// FinishCell returns the configured finish.
func (c *Config) FinishCell() grid.Cell {
	return grid.Cell{Row: c.Finish.Row, Col: c.Finish.Col}
}

// Kind parses Algorithm.
func (c *Config) Kind() (search.Kind, error) {
	return search.ParseKind(c.Algorithm)
}

// Kinds parses Compare; an empty list yields every kind.
func (c *Config) Kinds() ([]search.Kind, error) {
	if len(c.Compare) == 0 {
		return search.Kinds(), nil
	}
	kinds := make([]search.Kind, 0, len(c.Compare))
	for _, name := range c.Compare {
		k, err := search.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Generator parses Maze.Generator. ok is false for an empty name or NoMaze.
func (c *Config) Generator() (gen maze.Generator, ok bool, err error) {
	name := strings.TrimSpace(c.Maze.Generator)
	if name == "" || strings.EqualFold(name, NoMaze) {
		return 0, false, nil
	}
	gen, err = maze.ParseGenerator(name)
	if err != nil {
		return 0, false, err
	}
	return gen, true, nil
}

// MazeOptions converts the maze section into generator options.
func (c *Config) MazeOptions() []maze.Option {
	return []maze.Option{
		maze.WithSeed(c.Maze.Seed),
		maze.WithLoopProbability(c.Maze.LoopProbability),
		maze.WithDensity(c.Maze.Density),
	}
}

// NewGrid builds the open board described by c.
func (c *Config) NewGrid() (*grid.Grid, error) {
	return grid.New(c.Rows, c.Cols, c.StartCell(), c.FinishCell())
}
