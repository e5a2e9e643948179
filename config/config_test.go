package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/maze"
	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/search"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, grid.Cell{Row: 5, Col: 5}, cfg.StartCell())
	assert.Equal(t, grid.Cell{Row: 10, Col: 35}, cfg.FinishCell())

	k, err := cfg.Kind()
	require.NoError(t, err)
	assert.Equal(t, search.Dijkstra, k)

	kinds, err := cfg.Kinds()
	require.NoError(t, err)
	assert.Equal(t, search.Kinds(), kinds)

	_, ok, err := cfg.Generator()
	require.NoError(t, err)
	assert.False(t, ok)

	g, err := cfg.NewGrid()
	require.NoError(t, err)
	assert.Equal(t, DefaultRows, g.Rows())
	assert.Equal(t, DefaultCols, g.Cols())
}

func TestLoad_Partial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
rows: 9
cols: 15
algorithm: astar
compare: [bfs, "a*"]
maze:
  generator: prims
  seed: 42
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 9, cfg.Rows)
	assert.Equal(t, 15, cfg.Cols)
	assert.Equal(t, int64(42), cfg.Maze.Seed)
	// Unset keys keep their defaults.
	assert.Equal(t, maze.DefaultLoopProbability, cfg.Maze.LoopProbability)
	assert.Equal(t, CellConfig{Row: 5, Col: 5}, cfg.Start)

	kinds, err := cfg.Kinds()
	require.NoError(t, err)
	assert.Equal(t, []search.Kind{search.BFS, search.AStar}, kinds)

	gen, ok, err := cfg.Generator()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, maze.Prim, gen)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("colour: true\n"), 0o644))
	_, err = Load(unknown)
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	cfg, err := Load(empty)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Algorithm = "bidirectional"
	cfg.Compare = []string{"dijkstra", "greedy"}
	cfg.Maze.Generator = "division"
	cfg.Render.Color = true
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"EmptyBoard", func(c *Config) { c.Rows = 0 }},
		{"StartOutside", func(c *Config) { c.Start = CellConfig{Row: 20, Col: 0} }},
		{"FinishOutside", func(c *Config) { c.Finish = CellConfig{Row: 0, Col: -1} }},
		{"SameEndpoints", func(c *Config) { c.Finish = c.Start }},
		{"UnknownAlgorithm", func(c *Config) { c.Algorithm = "bellman-ford" }},
		{"UnknownCompare", func(c *Config) { c.Compare = []string{"bfs", "ida*"} }},
		{"UnknownMaze", func(c *Config) { c.Maze.Generator = "eller" }},
		{"LoopsAboveOne", func(c *Config) { c.Maze.LoopProbability = 1.5 }},
		{"NegativeDensity", func(c *Config) { c.Maze.Density = -0.1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestMazeOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Maze.Generator = "scatter"
	cfg.Maze.Density = 1
	g, err := cfg.NewGrid()
	require.NoError(t, err)

	gen, ok, err := cfg.Generator()
	require.NoError(t, err)
	require.True(t, ok)
	walls, err := maze.Generate(g, cfg.StartCell(), cfg.FinishCell(), gen, cfg.MazeOptions()...)
	require.NoError(t, err)
	assert.Len(t, walls, cfg.Rows*cfg.Cols-2)
}
