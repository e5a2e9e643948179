package search

import (
	"math"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
)

const (
	// none marks an absent predecessor or successor.
	none = -1
	// inf is the tentative cost of an undiscovered cell.
	inf = math.MaxInt
)

// state holds the per-run side arrays, indexed by grid.Grid.Index.
// It is allocated per call and never shared.
type state struct {
	g       *grid.Grid
	cost    []int  // tentative cost (g-score) from start
	visited []bool // finalized / expanded (BFS: enqueued)
	prev    []int  // predecessor towards start
	next    []int  // successor towards finish; bidirectional only
	order   []int  // visit order
	onVisit func(grid.Cell)
	cells   []grid.Cell
	nbrs    []int
}

func newState(g *grid.Grid) *state {
	n := g.Size()
	s := &state{
		g:       g,
		cost:    make([]int, n),
		visited: make([]bool, n),
		prev:    make([]int, n),
		cells:   make([]grid.Cell, 0, 4),
		nbrs:    make([]int, 0, 4),
	}
	for i := 0; i < n; i++ {
		s.cost[i] = inf
		s.prev[i] = none
	}

	return s
}

// withSuccessors allocates the successor links used by the backward frontier.
func (s *state) withSuccessors() {
	s.next = make([]int, len(s.prev))
	for i := range s.next {
		s.next[i] = none
	}
}

// neighbors returns the indices of the passable neighbors of u in the fixed
// up, down, left, right order. The slice is reused by the next call.
func (s *state) neighbors(u int) []int {
	s.cells = s.g.AppendNeighbors(s.cells[:0], s.g.Coordinate(u))
	s.nbrs = s.nbrs[:0]
	for _, c := range s.cells {
		s.nbrs = append(s.nbrs, s.g.Index(c))
	}
	return s.nbrs
}

// weight is the cost of entering cell v.
func (s *state) weight(v int) int {
	return s.g.Weight(s.g.Coordinate(v))
}

// heuristic is the Manhattan distance from u to target. Computed on demand so
// nothing outlives the call.
func (s *state) heuristic(u, target int) int {
	return grid.Manhattan(s.g.Coordinate(u), s.g.Coordinate(target))
}

// visit marks u finalized and records it in the visit order.
func (s *state) visit(u int) {
	s.visited[u] = true
	s.record(u)
}

// record appends u to the visit order and reports it to the hook.
func (s *state) record(u int) {
	s.order = append(s.order, u)
	if s.onVisit != nil {
		s.onVisit(s.g.Coordinate(u))
	}
}

// toCells converts indices to cells; nil stays nil.
func (s *state) toCells(idx []int) []grid.Cell {
	if len(idx) == 0 {
		return nil
	}
	out := make([]grid.Cell, len(idx))
	for i, v := range idx {
		out[i] = s.g.Coordinate(v)
	}
	return out
}
