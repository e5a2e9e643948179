package search

// side records which frontier discovered a cell.
type side uint8

const (
	unowned side = iota
	fromStart
	fromFinish
)

// bidirectionalBFS grows one FIFO frontier from start (linking predecessors)
// and one from finish (linking successors). Each iteration advances each
// non-empty frontier by one cell. A newly discovered cell already owned by
// the other frontier ends the search, and the two halves are joined there.
//
// The loop continues until both frontiers are exhausted, so an unreachable
// finish reports the components of both endpoints in the visit order.
//
// Complexity: O(V) time and memory.
func bidirectionalBFS(s *state, start, finish int) []int {
	s.withSuccessors()
	owner := make([]side, len(s.prev))
	fwd := []int{start}
	bwd := []int{finish}
	owner[start] = fromStart
	owner[finish] = fromFinish

	fi, bi := 0, 0
	for fi < len(fwd) || bi < len(bwd) {
		if fi < len(fwd) {
			u := fwd[fi]
			fi++
			s.visit(u)
			for _, v := range s.neighbors(u) {
				switch owner[v] {
				case fromStart:
					continue
				case fromFinish:
					return join(s.prev, s.next, u, v)
				}
				owner[v] = fromStart
				s.prev[v] = u
				fwd = append(fwd, v)
			}
		}
		if bi < len(bwd) {
			u := bwd[bi]
			bi++
			s.visit(u)
			for _, v := range s.neighbors(u) {
				switch owner[v] {
				case fromFinish:
					continue
				case fromStart:
					return join(s.prev, s.next, v, u)
				}
				owner[v] = fromFinish
				s.next[v] = u
				bwd = append(bwd, v)
			}
		}
	}

	return nil
}
