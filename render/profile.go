package render

import (
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/search"
)

// Profile plots, for each result, the Manhattan distance from start of every
// visited cell in visit order. BFS climbs in steps, DFS and greedy shoot out
// early, A* hugs the straight line. Results with no visits are skipped; an
// empty string means there was nothing to plot.
func Profile(results []search.Result, start grid.Cell, width, height int) string {
	var (
		series [][]float64
		names  []string
	)
	for _, r := range results {
		if len(r.Visited) == 0 {
			continue
		}
		s := make([]float64, 0, len(r.Visited)+1)
		for _, c := range r.Visited {
			s = append(s, float64(grid.Manhattan(start, c)))
		}
		if len(s) == 1 {
			s = append(s, s[0])
		}
		series = append(series, s)
		names = append(names, r.Kind.String())
	}
	if len(series) == 0 {
		return ""
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("distance from start per expansion: "+strings.Join(names, ", ")),
	)
}
