package search

// dfs expands cells in LIFO order. A cell is marked when popped, so the stack
// may hold stale duplicates; those are skipped on pop. Neighbors are pushed
// up, down, left, right, which makes "right" the first one explored.
//
// Complexity: O(V) time; the stack holds at most 4V entries.
func dfs(s *state, start, finish int) []int {
	stack := make([]int, 0, 64)
	stack = append(stack, start)

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.visited[u] {
			continue
		}
		s.visit(u)
		if u == finish {
			return reconstruct(s.prev, finish)
		}
		for _, v := range s.neighbors(u) {
			if s.visited[v] {
				continue
			}
			s.prev[v] = u
			stack = append(stack, v)
		}
	}

	return nil
}
