package search

import (
	"cmp"
	"slices"
)

// relaxed is a neighbor whose cost improved during one expansion, with the
// cost and rank it held before.
type relaxed struct {
	cell     int
	cost     int
	prevCost int
	prevRank int
}

// dijkstra repeatedly finalizes the open cell with the lowest tentative cost.
//
// Cells not yet discovered have cost +∞ and are left out of the heap, so an
// empty heap means the minimum remaining cost is +∞ and finish is unreachable.
// Relaxation: newCost = cost[u] + weight(v), accepted only when strictly
// smaller. With every weight ≥ 1 a finalized cost is minimal.
//
// Ties: the frontier behaves like one list of every cell in row-major order,
// stably re-sorted by cost before each pick. A cell whose cost improves is
// ranked after all cells already holding that cost; cells improved by the
// same expansion keep their previous relative order, and undiscovered cells
// compare by grid index.
//
// Complexity: O(V log V) time, O(V) memory.
func dijkstra(s *state, start, finish int) []int {
	open := newOpenSet(len(s.cost))
	s.cost[start] = 0
	open.set(start, 0)
	improved := make([]relaxed, 0, 4)

	for open.Len() > 0 {
		u := open.pop()
		s.visit(u)
		if u == finish {
			return reconstruct(s.prev, finish)
		}
		improved = improved[:0]
		for _, v := range s.neighbors(u) {
			if s.visited[v] {
				continue
			}
			newCost := s.cost[u] + s.weight(v)
			if newCost >= s.cost[v] {
				continue
			}
			r := relaxed{cell: v, cost: newCost, prevCost: s.cost[v], prevRank: v}
			if seq, ok := open.rank(v); ok {
				r.prevRank = seq
			}
			improved = append(improved, r)
		}
		slices.SortFunc(improved, func(a, b relaxed) int {
			if a.prevCost != b.prevCost {
				return cmp.Compare(a.prevCost, b.prevCost)
			}
			return cmp.Compare(a.prevRank, b.prevRank)
		})
		for _, r := range improved {
			s.cost[r.cell] = r.cost
			s.prev[r.cell] = u
			open.requeue(r.cell, r.cost)
		}
	}

	return nil
}

