package maze

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
)

// wilson builds a uniform spanning tree over the lattice with loop-erased
// random walks. The tree starts as {start}. From every lattice cell still
// outside it, in row-major order, a walk steps to random coarse neighbors
// until it touches the tree, remembering only the last exit taken from each
// cell. Retracing those exits from the walk's origin carves a branch with
// every loop erased.
//
// The first walks are long on large grids; later ones hit the tree quickly.
//
// Complexity: expected O(R×C) walk steps per cell in the worst case; memory O(R×C).
func wilson(r *run) mapset.Set[grid.Cell] {
	carved := mapset.New[grid.Cell]()
	carved.Put(r.start)
	exit := make([]grid.Cell, r.rows*r.cols)
	at := func(c grid.Cell) int { return c.Row*r.cols + c.Col }
	nbrs := make([]grid.Cell, 0, 4)

	for _, origin := range r.latticeCells() {
		if carved.Has(origin) {
			continue
		}
		for c := origin; !carved.Has(c); {
			nbrs = r.coarse(nbrs[:0], c)
			next := nbrs[r.rng.Intn(len(nbrs))]
			exit[at(c)] = next
			c = next
		}
		for c := origin; !carved.Has(c); c = exit[at(c)] {
			carved.Put(c)
			carved.Put(between(c, exit[at(c)]))
		}
	}
	carved.Put(r.finish)

	return r.complement(carved)
}
