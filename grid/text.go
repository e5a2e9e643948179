package grid

import (
	"fmt"
	"strings"
)

// glyphs used by Parse and String.
const (
	glyphOpen   = '.'
	glyphWall   = '#'
	glyphStart  = 'S'
	glyphFinish = 'F'
	glyphMud    = 'm'
	glyphForest = 'f'
	glyphWater  = 'w'
	glyphOther  = '+'
)

// Parse reads the text format described in the package documentation.
// Blank lines and surrounding spaces are ignored. Roles are not validated;
// call Validate before searching.
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrBadGlyph.
func Parse(s string) (*Grid, error) {
	var rows [][]Node
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		glyphs := []rune(line)
		row := make([]Node, 0, len(glyphs))
		for col, r := range glyphs {
			n, ok := nodeForGlyph(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrBadGlyph, r, len(rows), col)
			}
			row = append(row, n)
		}
		rows = append(rows, row)
	}

	return FromNodes(rows)
}

// MustParse is like Parse but panics on error. Intended for tests and examples.
func MustParse(s string) *Grid {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

func nodeForGlyph(r rune) (Node, bool) {
	n := openNode()
	switch {
	case r == glyphOpen:
	case r == glyphWall:
		n.Passable = false
	case r == glyphStart:
		n.Role = RoleStart
	case r == glyphFinish:
		n.Role = RoleFinish
	case r == glyphMud:
		n.Weight = int(Mud)
	case r == glyphForest:
		n.Weight = int(Forest)
	case r == glyphWater:
		n.Weight = int(Water)
	case r >= '1' && r <= '9':
		n.Weight = int(r - '0')
	default:
		return Node{}, false
	}

	return n, true
}

func glyphForNode(n Node) rune {
	switch {
	case n.Role == RoleStart:
		return glyphStart
	case n.Role == RoleFinish:
		return glyphFinish
	case !n.Passable:
		return glyphWall
	}
	switch n.Weight {
	case DefaultWeight:
		return glyphOpen
	case int(Mud):
		return glyphMud
	case int(Forest):
		return glyphForest
	case int(Water):
		return glyphWater
	}
	if n.Weight >= 2 && n.Weight <= 9 {
		return rune('0' + n.Weight)
	}
	return glyphOther
}

// Glyph returns the text-format character for c.
func (g *Grid) Glyph(c Cell) rune {
	return glyphForNode(g.Node(c))
}

// String renders g in the text format, one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			b.WriteRune(glyphForNode(g.nodes[r*g.cols+c]))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
