package search

import (
	"fmt"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
)

// algorithm is the shared signature of every search: it fills the visit
// order in s and returns the start→finish path as grid indices, or nil.
type algorithm func(s *state, start, finish int) []int

// algorithms is the dispatch table, indexed by Kind.
var algorithms = [numKinds]algorithm{
	Dijkstra:         dijkstra,
	AStar:            astar,
	Greedy:           greedy,
	BFS:              bfs,
	DFS:              dfs,
	BidirectionalBFS: bidirectionalBFS,
}

// Search runs the algorithm kind on g from start to finish.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. kind must be one of Kinds() (ErrUnknownKind).
//  3. g must satisfy grid.Validate (ErrInvalidGrid wrapping the cause).
//  4. start and finish must be in bounds (grid.ErrOutOfBounds).
//  5. start and finish must be passable (ErrEndpointBlocked).
//
// start and finish are usually the grid's role cells, but any passable pair
// is accepted. If start == finish the result is Visited = Path = [start].
// An unreachable finish yields an empty Path and a nil error.
//
// The grid is only read; all per-run state is local to the call. A hook set
// with WithOnVisit sees each cell of Result.Visited, in order, as it happens.
func Search(g *grid.Grid, start, finish grid.Cell, kind Kind, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(g, start, finish, kind); err != nil {
		return Result{}, err
	}

	res := run(g, start, finish, kind, cfg.OnVisit)
	cfg.Logger.Printf("[SEARCH] [INFO] %s %v→%v visited=%d path=%d cost=%d",
		kind, start, finish, len(res.Visited), len(res.Path), res.Cost)

	return res, nil
}

// validate applies the Search preconditions.
func validate(g *grid.Grid, start, finish grid.Cell, kind Kind) error {
	if g == nil {
		return ErrNilGrid
	}
	if kind < 0 || kind >= numKinds {
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	if err := g.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidGrid, err)
	}
	for _, c := range []grid.Cell{start, finish} {
		if !g.InBounds(c) {
			return fmt.Errorf("%w: endpoint %v", grid.ErrOutOfBounds, c)
		}
		if !g.Passable(c) {
			return fmt.Errorf("%w: %v", ErrEndpointBlocked, c)
		}
	}

	return nil
}

// run dispatches a validated request. onVisit may be nil.
func run(g *grid.Grid, start, finish grid.Cell, kind Kind, onVisit func(grid.Cell)) Result {
	if start == finish {
		if onVisit != nil {
			onVisit(start)
		}
		return Result{
			Kind:    kind,
			Visited: []grid.Cell{start},
			Path:    []grid.Cell{start},
		}
	}

	s := newState(g)
	s.onVisit = onVisit
	path := algorithms[kind](s, g.Index(start), g.Index(finish))
	res := Result{
		Kind:    kind,
		Visited: s.toCells(s.order),
		Path:    s.toCells(path),
	}
	res.Cost = PathCost(g, res.Path)

	return res
}
