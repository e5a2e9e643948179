package maze

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
)

// disjointSet is a union-find forest over grid indices with union by rank
// and path compression.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	s := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range s.parent {
		s.parent[i] = i
	}
	return s
}

// find returns the root of x, compressing the path on the way.
func (s *disjointSet) find(x int) int {
	for s.parent[x] != x {
		s.parent[x] = s.parent[s.parent[x]]
		x = s.parent[x]
	}
	return x
}

// union merges the sets of a and b and reports whether they were disjoint.
func (s *disjointSet) union(a, b int) bool {
	x, y := s.find(a), s.find(b)
	if x == y {
		return false
	}
	if s.rank[x] > s.rank[y] {
		x, y = y, x
	}
	s.parent[x] = y
	if s.rank[x] == s.rank[y] {
		s.rank[y]++
	}
	return true
}

// forward are the two coarse steps that list each lattice edge once.
var forward = [2]grid.Cell{{Col: 2}, {Row: 2}}

// latticeEdge joins a lattice cell to the one two steps right or down.
type latticeEdge struct {
	a, b grid.Cell
}

// kruskal joins random lattice edges whose ends are still in different
// trees, carving the connector each time, until no candidate edge remains.
//
// Complexity: O(R×C·α(R×C)) time, O(R×C) memory.
func kruskal(r *run) mapset.Set[grid.Cell] {
	cells := r.latticeCells()
	carved := mapset.New[grid.Cell]()
	edges := make([]latticeEdge, 0, 2*len(cells))
	for _, c := range cells {
		carved.Put(c)
		for _, d := range forward {
			n := grid.Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
			if r.inBounds(n) {
				edges = append(edges, latticeEdge{a: c, b: n})
			}
		}
	}

	sets := newDisjointSet(r.rows * r.cols)
	index := func(c grid.Cell) int { return c.Row*r.cols + c.Col }
	for len(edges) > 0 {
		i := r.rng.Intn(len(edges))
		e := edges[i]
		edges[i] = edges[len(edges)-1]
		edges = edges[:len(edges)-1]
		if sets.union(index(e.a), index(e.b)) {
			carved.Put(between(e.a, e.b))
		}
	}
	carved.Put(r.finish)

	return r.complement(carved)
}
