package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
)

// TestReachable_Enclosed verifies that a walled-in finish is unreachable.
func TestReachable_Enclosed(t *testing.T) {
	g := grid.MustParse(`
		S....
		...#.
		..#F#
		...#.
	`)
	got := g.Reachable(grid.Cell{})
	assert.Len(t, got, 14)
	assert.NotContains(t, got, grid.Cell{Row: 2, Col: 3})
	assert.NotContains(t, got, grid.Cell{Row: 3, Col: 4}, "cut off by the walls around F")
	assert.Equal(t, grid.Cell{}, got[0])

	assert.Equal(t, []grid.Cell{{Row: 2, Col: 3}}, g.Reachable(grid.Cell{Row: 2, Col: 3}))
	assert.Nil(t, g.Reachable(grid.Cell{Row: 1, Col: 3}), "wall has no component")
	assert.Nil(t, g.Reachable(grid.Cell{Row: -1, Col: 0}))
}

// TestConnectedComponents_Islands counts disjoint passable regions.
func TestConnectedComponents_Islands(t *testing.T) {
	g := grid.MustParse(`
		S#.#F
		.#.#.
		##.##
	`)
	comps := g.ConnectedComponents()
	if len(comps) != 3 {
		t.Fatalf("components = %d; want 3", len(comps))
	}
	sizes := []int{len(comps[0]), len(comps[1]), len(comps[2])}
	assert.Equal(t, []int{2, 3, 2}, sizes)
	assert.Equal(t, grid.Cell{Row: 0, Col: 0}, comps[0][0])
	assert.Equal(t, grid.Cell{Row: 0, Col: 2}, comps[1][0])
	assert.Equal(t, grid.Cell{Row: 0, Col: 4}, comps[2][0])
}
