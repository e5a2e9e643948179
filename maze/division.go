package maze

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
)

// region is an open rectangle, bounds inclusive.
type region struct {
	top, left, bottom, right int
}

// divider carries the fixed parities of one recursive division.
// Wall lines sit on the row/column parity opposite to start and gaps on
// start's parity, so start is never walled and a later line can never land
// on an earlier gap.
type divider struct {
	*run
	walls   mapset.Set[grid.Cell]
	wallRow int // parity of horizontal wall rows
	wallCol int // parity of vertical wall columns
}

// divide runs recursive division over the whole grid.
func divide(r *run) mapset.Set[grid.Cell] {
	d := &divider{
		run:     r,
		walls:   mapset.New[grid.Cell](),
		wallRow: 1 - r.start.Row%2,
		wallCol: 1 - r.start.Col%2,
	}
	horizontal := r.rows > r.cols
	if r.rows == r.cols {
		horizontal = r.rng.Intn(2) == 0
	}
	d.split(region{top: 0, left: 0, bottom: r.rows - 1, right: r.cols - 1}, horizontal)

	return d.walls
}

// split divides reg with one wall line, preferring the given orientation and
// alternating below it. A region too thin for either orientation is a leaf.
func (d *divider) split(reg region, horizontal bool) {
	if horizontal && d.splitRows(reg) {
		return
	}
	if d.splitCols(reg) {
		return
	}
	if !horizontal {
		d.splitRows(reg)
	}
}

// splitRows draws a horizontal line strictly inside reg with one gap and
// recurses into both halves. It reports false if no row fits.
func (d *divider) splitRows(reg region) bool {
	row, ok := pickParity(reg.top+1, reg.bottom-1, d.wallRow, d.rng)
	if !ok {
		return false
	}
	gap, ok := pickParity(reg.left, reg.right, 1-d.wallCol, d.rng)
	if !ok {
		gap = pickRange(reg.left, reg.right, d.rng)
	}
	for col := reg.left; col <= reg.right; col++ {
		if col != gap {
			d.walls.Put(grid.Cell{Row: row, Col: col})
		}
	}
	d.split(region{top: reg.top, left: reg.left, bottom: row - 1, right: reg.right}, false)
	d.split(region{top: row + 1, left: reg.left, bottom: reg.bottom, right: reg.right}, false)

	return true
}

// splitCols is splitRows turned on its side.
func (d *divider) splitCols(reg region) bool {
	col, ok := pickParity(reg.left+1, reg.right-1, d.wallCol, d.rng)
	if !ok {
		return false
	}
	gap, ok := pickParity(reg.top, reg.bottom, 1-d.wallRow, d.rng)
	if !ok {
		gap = pickRange(reg.top, reg.bottom, d.rng)
	}
	for row := reg.top; row <= reg.bottom; row++ {
		if row != gap {
			d.walls.Put(grid.Cell{Row: row, Col: col})
		}
	}
	d.split(region{top: reg.top, left: reg.left, bottom: reg.bottom, right: col - 1}, true)
	d.split(region{top: reg.top, left: col + 1, bottom: reg.bottom, right: reg.right}, true)

	return true
}
