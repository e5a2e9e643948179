package search

// rankFunc orders open cells from their accumulated cost g and heuristic h.
type rankFunc func(g, h int) int

// byCostAndHeuristic is the A* rank f = g + h.
func byCostAndHeuristic(g, h int) int { return g + h }

// byHeuristic is the greedy rank: distance to finish only.
func byHeuristic(_, h int) int { return h }

// astar runs A* with the Manhattan heuristic. Every weight is ≥ 1, so the
// Manhattan distance never overestimates and the path is minimal.
func astar(s *state, start, finish int) []int {
	return bestFirst(s, start, finish, byCostAndHeuristic)
}

// greedy runs greedy best-first search. A finalized cell is never reopened,
// so each cell is expanded at most once; the path need not be optimal.
func greedy(s *state, start, finish int) []int {
	return bestFirst(s, start, finish, byHeuristic)
}

// bestFirst is the shared open-set loop of A* and greedy search.
//
//  1. Seed the open set with start (g = 0).
//  2. Pop the open cell with the lowest rank, finalize it, stop at finish.
//  3. For each non-finalized neighbor, accept a strictly better g, record
//     the predecessor, and insert it or update its rank in place.
//
// Complexity: O(V log V) time, O(V) memory.
func bestFirst(s *state, start, finish int, rank rankFunc) []int {
	open := newOpenSet(len(s.cost))
	s.cost[start] = 0
	open.set(start, rank(0, s.heuristic(start, finish)))

	for open.Len() > 0 {
		u := open.pop()
		s.visit(u)
		if u == finish {
			return reconstruct(s.prev, finish)
		}
		for _, v := range s.neighbors(u) {
			if s.visited[v] {
				continue
			}
			tentative := s.cost[u] + s.weight(v)
			if tentative >= s.cost[v] {
				continue
			}
			s.cost[v] = tentative
			s.prev[v] = u
			open.set(v, rank(tentative, s.heuristic(v, finish)))
		}
	}

	return nil
}
