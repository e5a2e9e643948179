package maze

import "github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"

// The carving generators work on a lattice: the cells sharing start's row
// and column parity. Two lattice cells two steps apart are joined by carving
// the connector between them; cells off the lattice in both axes stay walls.

// jumps are the coarse steps between lattice cells: up, down, left, right.
var jumps = [4]grid.Cell{{Row: -2}, {Row: 2}, {Col: -2}, {Col: 2}}

// coarse appends the in-bounds lattice neighbors of c to dst.
func (r *run) coarse(dst []grid.Cell, c grid.Cell) []grid.Cell {
	for _, d := range jumps {
		n := grid.Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if r.inBounds(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// between returns the connector cell of two lattice neighbors.
func between(a, b grid.Cell) grid.Cell {
	return grid.Cell{Row: (a.Row + b.Row) / 2, Col: (a.Col + b.Col) / 2}
}

// latticeCells lists every lattice cell in row-major order.
func (r *run) latticeCells() []grid.Cell {
	var out []grid.Cell
	for row := r.start.Row % 2; row < r.rows; row += 2 {
		for col := r.start.Col % 2; col < r.cols; col += 2 {
			out = append(out, grid.Cell{Row: row, Col: col})
		}
	}
	return out
}
