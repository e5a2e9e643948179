// Command gridpath runs pathfinding algorithms on a terminal grid.
//
//	gridpath search --algorithm astar --maze prims --seed 7
//	gridpath compare --grid board.txt --profile
//	gridpath play --algorithm bfs --maze division
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/config"
	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/maze"
	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/render"
	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/search"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds the flag values shared by every subcommand.
type app struct {
	configFile string
	envFile    string
	gridFile   string
	verbose    bool

	rows, cols    int
	start, finish string
	algorithm     string
	algorithms    []string
	generator     string
	seed          int64
	loops         float64
	density       float64
	color         bool
	visited       bool

	profile bool
	frame   time.Duration
	batch   int

	logger *log.Logger
}

// run is a prepared board plus its configuration.
type run struct {
	cfg   *config.Config
	board *grid.Grid
	walls []grid.Cell
	seed  int64
}

func newRootCmd() *cobra.Command {
	a := &app{logger: log.New(io.Discard, "", 0)}

	rootCmd := &cobra.Command{
		Use:          "gridpath",
		Short:        "weighted grid pathfinding and maze generation",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.verbose {
				a.logger = log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&a.envFile, "env", ".env", "dotenv file with GRIDPATH_* overrides")
	pf.StringVar(&a.gridFile, "grid", "", "board text file; overrides size and endpoints")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log to stderr")
	pf.IntVar(&a.rows, "rows", config.DefaultRows, "board rows")
	pf.IntVar(&a.cols, "cols", config.DefaultCols, "board columns")
	pf.StringVar(&a.start, "start", "", "start cell as row,col")
	pf.StringVar(&a.finish, "finish", "", "finish cell as row,col")
	pf.StringVar(&a.generator, "maze", config.NoMaze, "maze generator: "+generatorNames())
	pf.Int64Var(&a.seed, "seed", 0, "maze seed; 0 picks one from the clock")
	pf.Float64Var(&a.loops, "loops", maze.DefaultLoopProbability, "probability of reopening a maze wall")
	pf.Float64Var(&a.density, "density", maze.DefaultDensity, "wall density of the scatter generator")
	pf.BoolVar(&a.color, "color", false, "colored output")
	pf.BoolVar(&a.visited, "visited", true, "mark expanded cells")

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "run one algorithm and draw its path",
		Args:  cobra.NoArgs,
		RunE:  a.runSearch,
	}
	searchCmd.Flags().StringVarP(&a.algorithm, "algorithm", "a", config.DefaultAlgorithm, "algorithm: "+kindNames())

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run several algorithms on the same board",
		Args:  cobra.NoArgs,
		RunE:  a.runCompare,
	}
	compareCmd.Flags().StringSliceVar(&a.algorithms, "algorithms", nil, "algorithms to compare (default all)")
	compareCmd.Flags().BoolVar(&a.profile, "profile", false, "plot distance from start per expansion")

	mazeCmd := &cobra.Command{
		Use:   "maze",
		Short: "generate a maze and print the board",
		Args:  cobra.NoArgs,
		RunE:  a.runMaze,
	}

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "animate a search in the terminal",
		Args:  cobra.NoArgs,
		RunE:  a.runPlay,
	}
	playCmd.Flags().StringVarP(&a.algorithm, "algorithm", "a", config.DefaultAlgorithm, "algorithm: "+kindNames())
	playCmd.Flags().DurationVar(&a.frame, "frame", render.DefaultFrame, "time between frames")
	playCmd.Flags().IntVar(&a.batch, "batch", 1, "cells revealed per frame")

	kindsCmd := &cobra.Command{
		Use:   "kinds",
		Short: "list algorithms and maze generators",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "algorithms:")
			for _, k := range search.Kinds() {
				weighted := ""
				if k.Weighted() {
					weighted = " (weighted)"
				}
				fmt.Fprintf(out, "  %s%s\n", k, weighted)
			}
			fmt.Fprintln(out, "generators:")
			for _, g := range maze.Generators() {
				fmt.Fprintf(out, "  %s\n", g)
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(searchCmd, compareCmd, mazeCmd, playCmd, kindsCmd, initCmd)
	return rootCmd
}

func (a *app) runSearch(cmd *cobra.Command, args []string) error {
	r, err := a.prepare(cmd)
	if err != nil {
		return err
	}
	kind, err := r.cfg.Kind()
	if err != nil {
		return err
	}
	res, err := search.Search(r.board, r.cfg.StartCell(), r.cfg.FinishCell(), kind, search.WithLogger(a.logger))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, render.Result(r.board, res, a.renderOptions(r.cfg)...))
	fmt.Fprintln(out, render.Summary(res))
	return nil
}

func (a *app) runCompare(cmd *cobra.Command, args []string) error {
	r, err := a.prepare(cmd)
	if err != nil {
		return err
	}
	kinds, err := r.cfg.Kinds()
	if err != nil {
		return err
	}
	start := r.cfg.StartCell()
	cmp, err := search.Compare(r.board, start, r.cfg.FinishCell(), kinds, search.WithLogger(a.logger))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if win, ok := cmp.Winner(); ok {
		fmt.Fprint(out, render.Result(r.board, win, a.renderOptions(r.cfg)...))
	} else {
		fmt.Fprint(out, render.Board(r.board, a.renderOptions(r.cfg)...))
	}
	fmt.Fprint(out, render.Comparison(cmp, a.renderOptions(r.cfg)...))
	if a.profile {
		if chart := render.Profile(cmp.Results, start, 70, 12); chart != "" {
			fmt.Fprintln(out)
			fmt.Fprintln(out, chart)
		}
	}
	return nil
}

func (a *app) runMaze(cmd *cobra.Command, args []string) error {
	r, err := a.prepare(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, render.Board(r.board, a.renderOptions(r.cfg)...))
	gen, ok, _ := r.cfg.Generator()
	if !ok {
		fmt.Fprintln(out, "no generator selected")
		return nil
	}
	fmt.Fprintf(out, "%s walls=%d seed=%d\n", gen, len(r.walls), r.seed)
	return nil
}

func (a *app) runPlay(cmd *cobra.Command, args []string) error {
	r, err := a.prepare(cmd)
	if err != nil {
		return err
	}
	kind, err := r.cfg.Kind()
	if err != nil {
		return err
	}
	res, err := search.Search(r.board, r.cfg.StartCell(), r.cfg.FinishCell(), kind, search.WithLogger(a.logger))
	if err != nil {
		return err
	}

	p := render.NewPlayer(r.board, res, a.frame, a.batch, a.renderOptions(r.cfg)...)
	_, err = tea.NewProgram(p, tea.WithOutput(cmd.OutOrStdout())).Run()
	return err
}

// prepare resolves the configuration (file, then environment, then flags),
// builds the board and lays the maze if one is selected.
func (a *app) prepare(cmd *cobra.Command) (*run, error) {
	if err := config.LoadDotEnv(a.logger, a.envFile); err != nil {
		return nil, err
	}
	cfg := config.DefaultConfig()
	if a.configFile != "" {
		loaded, err := config.Load(a.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := a.applyFlags(cmd, cfg); err != nil {
		return nil, err
	}

	var board *grid.Grid
	if a.gridFile != "" {
		b, err := readGrid(a.gridFile)
		if err != nil {
			return nil, err
		}
		board = b
		start, _ := b.Start()
		finish, _ := b.Finish()
		cfg.Rows, cfg.Cols = b.Rows(), b.Cols()
		cfg.Start = config.CellConfig{Row: start.Row, Col: start.Col}
		cfg.Finish = config.CellConfig{Row: finish.Row, Col: finish.Col}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if board == nil {
		b, err := cfg.NewGrid()
		if err != nil {
			return nil, err
		}
		board = b
	}

	r := &run{cfg: cfg, board: board}
	gen, ok, err := cfg.Generator()
	if err != nil || !ok {
		return r, err
	}
	r.seed = cfg.Maze.Seed
	if r.seed == 0 {
		r.seed = time.Now().UnixNano()
		cfg.Maze.Seed = r.seed
	}
	a.logger.Printf("[APP] [INFO] maze %s seed=%d", gen, r.seed)
	opts := append(cfg.MazeOptions(), maze.WithLogger(a.logger))
	if r.walls, err = maze.Build(board, gen, opts...); err != nil {
		return nil, err
	}
	return r, nil
}

// applyFlags copies explicitly set flags over cfg.
func (a *app) applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	set := cmd.Flags().Changed
	if set("rows") {
		cfg.Rows = a.rows
	}
	if set("cols") {
		cfg.Cols = a.cols
	}
	if set("start") {
		c, err := parseCell(a.start)
		if err != nil {
			return err
		}
		cfg.Start = c
	}
	if set("finish") {
		c, err := parseCell(a.finish)
		if err != nil {
			return err
		}
		cfg.Finish = c
	}
	if set("algorithm") {
		cfg.Algorithm = a.algorithm
	}
	if set("algorithms") {
		cfg.Compare = a.algorithms
	}
	if set("maze") {
		cfg.Maze.Generator = a.generator
	}
	if set("seed") {
		cfg.Maze.Seed = a.seed
	}
	if set("loops") {
		cfg.Maze.LoopProbability = a.loops
	}
	if set("density") {
		cfg.Maze.Density = a.density
	}
	if set("color") {
		cfg.Render.Color = a.color
	}
	if set("visited") {
		cfg.Render.ShowVisited = a.visited
	}
	return nil
}

func (a *app) renderOptions(cfg *config.Config) []render.Option {
	return []render.Option{
		render.WithColor(cfg.Render.Color),
		render.WithVisited(cfg.Render.ShowVisited),
	}
}

func readGrid(path string) (*grid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := grid.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// parseCell reads "row,col".
func parseCell(s string) (config.CellConfig, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return config.CellConfig{}, fmt.Errorf("cell %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return config.CellConfig{}, fmt.Errorf("cell %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return config.CellConfig{}, fmt.Errorf("cell %q: %w", s, err)
	}
	return config.CellConfig{Row: row, Col: col}, nil
}

func kindNames() string {
	names := make([]string, 0, len(search.Kinds()))
	for _, k := range search.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

func generatorNames() string {
	names := []string{config.NoMaze}
	for _, g := range maze.Generators() {
		names = append(names, g.String())
	}
	return strings.Join(names, ", ")
}
