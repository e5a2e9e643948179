package grid

import "fmt"

// Cell identifies one grid position by row and column.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Role marks the start and finish cells.
type Role uint8

const (
	// RoleNone is an ordinary cell.
	RoleNone Role = iota
	// RoleStart is the search origin.
	RoleStart
	// RoleFinish is the search target.
	RoleFinish
)

func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleStart:
		return "start"
	case RoleFinish:
		return "finish"
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

// Terrain is a named traversal cost.
type Terrain int

// Terrain costs used by the visualizer palette.
const (
	Normal Terrain = 1
	Mud    Terrain = 5
	Forest Terrain = 10
	Water  Terrain = 50
)

// DefaultWeight is the weight of open, unpainted ground.
const DefaultWeight = int(Normal)

// Node holds the static attributes of one cell.
// Weight is only meaningful when Passable is true.
type Node struct {
	Passable bool
	Weight   int
	Role     Role
}

// openNode returns a passable node of default weight.
func openNode() Node {
	return Node{Passable: true, Weight: DefaultWeight}
}

// Grid is a fixed rows×cols rectangle of nodes stored row-major.
type Grid struct {
	rows, cols int
	nodes      []Node
}
