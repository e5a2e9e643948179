package search

// bfs expands cells in FIFO order. A cell is marked when enqueued so it is
// never queued twice; it joins the visit order when dequeued. The first path
// to reach finish has the fewest edges.
//
// Complexity: O(V) time and memory.
func bfs(s *state, start, finish int) []int {
	queue := make([]int, 0, 64)
	queue = append(queue, start)
	s.visited[start] = true

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		s.record(u)
		if u == finish {
			return reconstruct(s.prev, finish)
		}
		for _, v := range s.neighbors(u) {
			if s.visited[v] {
				continue
			}
			s.visited[v] = true
			s.prev[v] = u
			queue = append(queue, v)
		}
	}

	return nil
}
