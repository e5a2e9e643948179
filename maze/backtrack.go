package maze

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
)

// backtrack carves a depth-first spanning tree over the lattice from start.
// The top of the stack moves to a random uncarved coarse neighbor, carving
// the connector; a cell with none left is popped. Long corridors with few
// branches are typical.
//
// Complexity: O(R×C) time and memory.
func backtrack(r *run) mapset.Set[grid.Cell] {
	carved := mapset.New[grid.Cell]()
	carved.Put(r.start)
	stack := []grid.Cell{r.start}
	options := make([]grid.Cell, 0, 4)

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		options = r.coarse(options[:0], top)
		shuffleCells(options, r.rng)

		moved := false
		for _, n := range options {
			if carved.Has(n) {
				continue
			}
			carved.Put(between(top, n))
			carved.Put(n)
			stack = append(stack, n)
			moved = true
			break
		}
		if !moved {
			stack = stack[:len(stack)-1]
		}
	}
	carved.Put(r.finish)

	return r.complement(carved)
}
