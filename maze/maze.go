package maze

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
)

// builder computes the raw wall set of one generator. Endpoint handling,
// loop reopening and ordering happen afterwards in settle.
type builder func(r *run) mapset.Set[grid.Cell]

var builders = [numGenerators]builder{
	Division:    divide,
	Prim:        prim,
	Kruskal:     kruskal,
	Backtracker: backtrack,
	Wilson:      wilson,
	Random:      scatter,
}

// offsets lists the orthogonal steps up, down, left, right.
var offsets = [4]grid.Cell{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}

// run holds the state of one generation. Only the grid's dimensions are
// read; existing walls and terrain are ignored.
type run struct {
	rows, cols    int
	start, finish grid.Cell
	rng           *rand.Rand
	opts          Options
}

// RecursiveDivision generates a recursive-division maze. See Generate.
func RecursiveDivision(g *grid.Grid, start, finish grid.Cell, opts ...Option) ([]grid.Cell, error) {
	return Generate(g, start, finish, Division, opts...)
}

// Prims generates a randomized Prim's maze. See Generate.
func Prims(g *grid.Grid, start, finish grid.Cell, opts ...Option) ([]grid.Cell, error) {
	return Generate(g, start, finish, Prim, opts...)
}

// RandomizedKruskal generates a randomized Kruskal maze. See Generate.
func RandomizedKruskal(g *grid.Grid, start, finish grid.Cell, opts ...Option) ([]grid.Cell, error) {
	return Generate(g, start, finish, Kruskal, opts...)
}

// RecursiveBacktracker generates a depth-first maze. See Generate.
func RecursiveBacktracker(g *grid.Grid, start, finish grid.Cell, opts ...Option) ([]grid.Cell, error) {
	return Generate(g, start, finish, Backtracker, opts...)
}

// Wilsons generates a uniform spanning tree maze. See Generate.
func Wilsons(g *grid.Grid, start, finish grid.Cell, opts ...Option) ([]grid.Cell, error) {
	return Generate(g, start, finish, Wilson, opts...)
}

// Scatter walls off each cell independently with probability Density.
// See Generate.
func Scatter(g *grid.Grid, start, finish grid.Cell, opts ...Option) ([]grid.Cell, error) {
	return Generate(g, start, finish, Random, opts...)
}

// Generate computes a wall set for a grid of g's dimensions. The grid is not
// modified; use Build to apply the result.
//
// The returned cells are unique, sorted row-major, in bounds, and never
// include start or finish. For every generator except Random, start and
// finish are connected through the remaining open cells, and reopening loops
// only removes walls, so that holds for any LoopProbability.
//
// Errors: ErrNilGrid, ErrUnknownGenerator, grid.ErrOutOfBounds for an
// endpoint outside g, ErrOptionViolation for an invalid option.
func Generate(g *grid.Grid, start, finish grid.Cell, gen Generator, opts ...Option) ([]grid.Cell, error) {
	r, err := newRun(g, start, finish, opts)
	if err != nil {
		return nil, err
	}
	if gen < 0 || gen >= numGenerators {
		return nil, fmt.Errorf("%w: %d", ErrUnknownGenerator, int(gen))
	}

	walls := r.settle(builders[gen](r), gen)
	r.opts.Logger.Printf("[MAZE] [INFO] %s %dx%d walls=%d", gen, r.rows, r.cols, len(walls))

	return walls, nil
}

// Build generates a maze between g's own start and finish and writes it
// into g: previous walls and terrain are cleared, then the new walls are
// applied. It returns the applied wall cells.
func Build(g *grid.Grid, gen Generator, opts ...Option) ([]grid.Cell, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	start, err := g.Start()
	if err != nil {
		return nil, err
	}
	finish, err := g.Finish()
	if err != nil {
		return nil, err
	}
	walls, err := Generate(g, start, finish, gen, opts...)
	if err != nil {
		return nil, err
	}
	g.ClearWalls()
	g.ClearTerrain()
	g.ApplyWalls(walls)

	return walls, nil
}

func newRun(g *grid.Grid, start, finish grid.Cell, opts []Option) (*run, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	for _, c := range []grid.Cell{start, finish} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: endpoint %v", grid.ErrOutOfBounds, c)
		}
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rngFromSeed(cfg.Seed)
	}

	return &run{
		rows:   g.Rows(),
		cols:   g.Cols(),
		start:  start,
		finish: finish,
		rng:    rng,
		opts:   cfg,
	}, nil
}

func (r *run) inBounds(c grid.Cell) bool {
	return c.Row >= 0 && c.Row < r.rows && c.Col >= 0 && c.Col < r.cols
}

// around returns the in-bounds orthogonal neighbors of c, walls included.
func (r *run) around(c grid.Cell) []grid.Cell {
	out := make([]grid.Cell, 0, 4)
	for _, d := range offsets {
		n := grid.Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if r.inBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// complement returns every cell not in open.
func (r *run) complement(open mapset.Set[grid.Cell]) mapset.Set[grid.Cell] {
	walls := mapset.New[grid.Cell]()
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			c := grid.Cell{Row: row, Col: col}
			if !open.Has(c) {
				walls.Put(c)
			}
		}
	}
	return walls
}

// settle frees the endpoints, releases a boxed-in finish, reopens loops and
// returns the walls in row-major order. Cells are scanned row-major so the
// random draws do not depend on set iteration order.
func (r *run) settle(walls mapset.Set[grid.Cell], gen Generator) []grid.Cell {
	walls.Remove(r.start)
	walls.Remove(r.finish)
	if gen.Connected() {
		r.release(walls)
	}

	p := r.opts.LoopProbability
	if gen == Random {
		p = 0
	}
	out := make([]grid.Cell, 0, walls.Size())
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			c := grid.Cell{Row: row, Col: col}
			if !walls.Has(c) {
				continue
			}
			if p > 0 && r.rng.Float64() < p {
				continue
			}
			out = append(out, c)
		}
	}

	return out
}

// release opens one neighbor of a walled-in finish. The chosen neighbor is
// the first (up, down, left, right) that touches an open cell other than the
// finish, which joins the finish to the carved component.
func (r *run) release(walls mapset.Set[grid.Cell]) {
	if r.finish == r.start {
		return
	}
	nbrs := r.around(r.finish)
	for _, n := range nbrs {
		if !walls.Has(n) {
			return
		}
	}
	for _, n := range nbrs {
		for _, m := range r.around(n) {
			if m != r.finish && !walls.Has(m) {
				walls.Remove(n)
				r.opts.Logger.Printf("[MAZE] [DEBUG] finish %v released through %v", r.finish, n)
				return
			}
		}
	}
}
