package search

import "github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"

// reconstruct follows predecessor links back from end and returns the path
// in start→end order. A negative end yields nil.
func reconstruct(prev []int, end int) []int {
	if end < 0 {
		return nil
	}
	var path []int
	for v := end; v != none; v = prev[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// join builds the path of a bidirectional search that met between the
// adjacent cells a (owned by the start frontier) and b (owned by the finish
// frontier): the predecessor chain start…a followed by the successor chain
// b…finish. Each cell appears once.
func join(prev, next []int, a, b int) []int {
	path := reconstruct(prev, a)
	for v := b; v != none; v = next[v] {
		path = append(path, v)
	}

	return path
}

// PathCost returns the total weight of entering every cell of path after the
// first. An empty or single-cell path costs 0.
func PathCost(g *grid.Grid, path []grid.Cell) int {
	total := 0
	for i := 1; i < len(path); i++ {
		total += g.Weight(path[i])
	}
	return total
}
