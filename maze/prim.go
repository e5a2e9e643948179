package maze

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
)

// prim grows a spanning tree over the lattice from start.
//
//  1. Carve start and push its coarse neighbors onto the frontier.
//  2. Remove a uniformly random frontier cell; skip it if already carved.
//  3. Join it to a uniformly random carved coarse neighbor by carving the
//     cell and their connector, then push its uncarved coarse neighbors.
//
// Finish is carved at the end; settle links it if it is off the lattice.
// Everything not carved becomes a wall.
//
// Complexity: O(R×C) expected time and memory.
func prim(r *run) mapset.Set[grid.Cell] {
	carved := mapset.New[grid.Cell]()
	carved.Put(r.start)
	frontier := r.coarse(nil, r.start)
	partners := make([]grid.Cell, 0, 4)

	for len(frontier) > 0 {
		i := r.rng.Intn(len(frontier))
		c := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if carved.Has(c) {
			continue
		}

		partners = partners[:0]
		for _, n := range r.coarse(nil, c) {
			if carved.Has(n) {
				partners = append(partners, n)
			}
		}
		if len(partners) == 0 {
			continue
		}
		p := partners[r.rng.Intn(len(partners))]
		carved.Put(c)
		carved.Put(between(c, p))

		for _, n := range r.coarse(nil, c) {
			if !carved.Has(n) {
				frontier = append(frontier, n)
			}
		}
	}
	carved.Put(r.finish)

	return r.complement(carved)
}
