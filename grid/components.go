package grid

// Reachable returns every passable cell connected to from, in BFS discovery
// order starting with from itself. It returns nil if from is a wall or out of
// bounds.
//
// Time:   O(R×C).
// Memory: O(R×C) for visited flags and output.
func (g *Grid) Reachable(from Cell) []Cell {
	if !g.Passable(from) {
		return nil
	}
	seen := make([]bool, len(g.nodes))
	return g.flood(from, seen, nil)
}

// ConnectedComponents finds all contiguous regions of passable cells.
// Components are listed in row-major order of their first cell; each
// component is in BFS discovery order.
//
// Time:   O(R×C).
// Memory: O(R×C) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]Cell {
	seen := make([]bool, len(g.nodes))
	var comps [][]Cell
	for i, n := range g.nodes {
		if !n.Passable || seen[i] {
			continue
		}
		comps = append(comps, g.flood(g.Coordinate(i), seen, nil))
	}

	return comps
}

// flood collects the component of from into comp, marking seen.
func (g *Grid) flood(from Cell, seen []bool, comp []Cell) []Cell {
	queue := []Cell{from}
	seen[g.Index(from)] = true
	buf := make([]Cell, 0, 4)
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		comp = append(comp, u)
		buf = g.AppendNeighbors(buf[:0], u)
		for _, v := range buf {
			vi := g.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}

	return comp
}
