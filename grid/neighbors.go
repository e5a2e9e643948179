package grid

// offsets lists orthogonal moves in the fixed order up, down, left, right.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbors returns the orthogonally adjacent, in-bounds, passable cells of c
// in the order up, down, left, right. c itself need not be passable.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	return g.AppendNeighbors(make([]Cell, 0, 4), c)
}

// AppendNeighbors appends the neighbors of c to dst and returns the extended
// slice. Search loops reuse one buffer through it.
func (g *Grid) AppendNeighbors(dst []Cell, c Cell) []Cell {
	for _, d := range offsets {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.Passable(n) {
			dst = append(dst, n)
		}
	}

	return dst
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b Cell) int {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}
