package maze

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
)

// scatter walls off each non-endpoint cell with probability Density,
// scanning row-major. The finish may end up unreachable.
func scatter(r *run) mapset.Set[grid.Cell] {
	walls := mapset.New[grid.Cell]()
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			c := grid.Cell{Row: row, Col: col}
			if c == r.start || c == r.finish {
				continue
			}
			if r.rng.Float64() < r.opts.Density {
				walls.Put(c)
			}
		}
	}
	return walls
}
