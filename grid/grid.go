package grid

import (
	"fmt"
	"math"
)

// New builds an all-open rows×cols grid with start and finish roles set.
// Returns ErrEmptyGrid if rows or cols is not positive, ErrOutOfBounds if an
// endpoint lies outside the grid, ErrSameEndpoints if start == finish.
// Complexity: O(R×C) time and memory.
func New(rows, cols int, start, finish Cell) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{rows: rows, cols: cols, nodes: make([]Node, rows*cols)}
	for i := range g.nodes {
		g.nodes[i] = openNode()
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.InBounds(finish) {
		return nil, fmt.Errorf("%w: finish %v", ErrOutOfBounds, finish)
	}
	if start == finish {
		return nil, ErrSameEndpoints
	}
	g.nodes[g.Index(start)].Role = RoleStart
	g.nodes[g.Index(finish)].Role = RoleFinish

	return g, nil
}

// FromNodes constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input; roles and weights are taken as given and are
// checked only by Validate.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs.
func FromNodes(nodes [][]Node) (*Grid, error) {
	if len(nodes) == 0 || len(nodes[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(nodes), len(nodes[0])
	for _, row := range nodes {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{rows: h, cols: w, nodes: make([]Node, 0, h*w)}
	for _, row := range nodes {
		g.nodes = append(g.nodes, row...)
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return len(g.nodes) }

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps c to its row-major index row*cols + col.
// The result is meaningless for cells outside the grid.
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Cell.
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

// Node returns a copy of the node at c. c must be in bounds.
func (g *Grid) Node(c Cell) Node {
	return g.nodes[g.Index(c)]
}

// Passable reports whether c is in bounds and not a wall.
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c) && g.nodes[g.Index(c)].Passable
}

// MaxWeight is the largest weight a cell of g may carry. A simple path
// enters fewer than Size cells, so any path cost, plus a Manhattan estimate,
// stays below math.MaxInt.
func (g *Grid) MaxWeight() int {
	return math.MaxInt / g.Size()
}

// Weight returns the traversal cost of entering c. c must be in bounds.
func (g *Grid) Weight(c Cell) int {
	return g.nodes[g.Index(c)].Weight
}

// Start returns the unique start cell.
func (g *Grid) Start() (Cell, error) {
	return g.findRole(RoleStart, ErrNoStart, ErrMultipleStarts)
}

// Finish returns the unique finish cell.
func (g *Grid) Finish() (Cell, error) {
	return g.findRole(RoleFinish, ErrNoFinish, ErrMultipleFinishes)
}

func (g *Grid) findRole(role Role, errNone, errMany error) (Cell, error) {
	found := -1
	for i, n := range g.nodes {
		if n.Role != role {
			continue
		}
		if found >= 0 {
			return Cell{}, fmt.Errorf("%w: %v and %v", errMany, g.Coordinate(found), g.Coordinate(i))
		}
		found = i
	}
	if found < 0 {
		return Cell{}, errNone
	}

	return g.Coordinate(found), nil
}

// Validate checks the grid invariants: exactly one start, exactly one finish,
// both passable, and every passable weight in [1, MaxWeight]. It returns the
// first violation found.
// Complexity: O(R×C).
func (g *Grid) Validate() error {
	start, err := g.Start()
	if err != nil {
		return err
	}
	finish, err := g.Finish()
	if err != nil {
		return err
	}
	for _, c := range []Cell{start, finish} {
		if !g.nodes[g.Index(c)].Passable {
			return fmt.Errorf("%w: %v", ErrEndpointCell, c)
		}
	}
	maxW := g.MaxWeight()
	for i, n := range g.nodes {
		if n.Passable && (n.Weight < 1 || n.Weight > maxW) {
			return fmt.Errorf("%w: cell %v weight=%d", ErrInvalidWeight, g.Coordinate(i), n.Weight)
		}
	}

	return nil
}

// SetWall walls off or reopens c. Start and finish cannot be walled.
// Reopening keeps the cell's previous weight.
func (g *Grid) SetWall(c Cell, wall bool) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	n := &g.nodes[g.Index(c)]
	if wall && n.Role != RoleNone {
		return fmt.Errorf("%w: %v", ErrEndpointCell, c)
	}
	n.Passable = !wall
	if n.Weight < 1 {
		n.Weight = DefaultWeight
	}

	return nil
}

// SetWeight paints c with a cost in [1, MaxWeight]. Painting a wall opens it.
func (g *Grid) SetWeight(c Cell, w int) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if w < 1 || w > g.MaxWeight() {
		return fmt.Errorf("%w: cell %v weight=%d", ErrInvalidWeight, c, w)
	}
	n := &g.nodes[g.Index(c)]
	n.Passable = true
	n.Weight = w

	return nil
}

// SetTerrain paints c with a named terrain.
func (g *Grid) SetTerrain(c Cell, t Terrain) error {
	return g.SetWeight(c, int(t))
}

// MoveStart relocates the start role to c, which must not be the finish.
// The target becomes passable.
func (g *Grid) MoveStart(c Cell) error {
	return g.moveRole(c, RoleStart, RoleFinish)
}

// MoveFinish relocates the finish role to c, which must not be the start.
// The target becomes passable.
func (g *Grid) MoveFinish(c Cell) error {
	return g.moveRole(c, RoleFinish, RoleStart)
}

func (g *Grid) moveRole(c Cell, role, other Role) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	target := &g.nodes[g.Index(c)]
	if target.Role == other {
		return ErrSameEndpoints
	}
	for i := range g.nodes {
		if g.nodes[i].Role == role {
			g.nodes[i].Role = RoleNone
		}
	}
	target.Role = role
	if !target.Passable {
		target.Passable = true
		target.Weight = DefaultWeight
	}

	return nil
}

// ApplyWalls walls off every in-bounds cell of walls except start and finish,
// resetting its weight to DefaultWeight. It returns the number of cells that
// were changed from passable to wall.
func (g *Grid) ApplyWalls(walls []Cell) int {
	changed := 0
	for _, c := range walls {
		if !g.InBounds(c) {
			continue
		}
		n := &g.nodes[g.Index(c)]
		if n.Role != RoleNone {
			continue
		}
		if n.Passable {
			changed++
		}
		n.Passable = false
		n.Weight = DefaultWeight
	}

	return changed
}

// Walls returns every wall cell in row-major order.
func (g *Grid) Walls() []Cell {
	var walls []Cell
	for i, n := range g.nodes {
		if !n.Passable {
			walls = append(walls, g.Coordinate(i))
		}
	}

	return walls
}

// ClearWalls reopens every wall cell with DefaultWeight.
func (g *Grid) ClearWalls() {
	for i := range g.nodes {
		if !g.nodes[i].Passable {
			g.nodes[i].Passable = true
			g.nodes[i].Weight = DefaultWeight
		}
	}
}

// ClearTerrain resets every passable cell to DefaultWeight.
func (g *Grid) ClearTerrain() {
	for i := range g.nodes {
		if g.nodes[i].Passable {
			g.nodes[i].Weight = DefaultWeight
		}
	}
}

// Clone returns an independent deep copy of g.
func (g *Grid) Clone() *Grid {
	cp := &Grid{rows: g.rows, cols: g.cols, nodes: make([]Node, len(g.nodes))}
	copy(cp.nodes, g.nodes)

	return cp
}
