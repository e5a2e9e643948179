package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/search"
)

func TestCompare_AllKinds(t *testing.T) {
	g := grid.MustParse("S..\n...\n..F")
	cmp, err := search.Compare(g, grid.Cell{}, grid.Cell{Row: 2, Col: 2}, nil)
	require.NoError(t, err)
	require.Len(t, cmp.Results, 6)
	for i, k := range search.Kinds() {
		assert.Equal(t, k, cmp.Results[i].Kind)
	}
	// Every cost-4 run ties; bidirectional touches only four cells.
	win, ok := cmp.Winner()
	require.True(t, ok)
	assert.Equal(t, search.BidirectionalBFS, win.Kind)
	assert.Equal(t, 4, win.Cost)
	assert.Len(t, win.Visited, 4)
}

func TestCompare_MatchesSearch(t *testing.T) {
	g := grid.MustParse(`
		S.w.F
		.....
	`)
	start, finish := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 4}
	cmp, err := search.Compare(g, start, finish, search.Kinds())
	require.NoError(t, err)
	for _, res := range cmp.Results {
		want, err := search.Search(g, start, finish, res.Kind)
		require.NoError(t, err)
		assert.Equal(t, want, res)
	}
	// Dijkstra and A* tie on cost and visits; request order decides.
	assert.Equal(t, 0, cmp.Best)

	cmp, err = search.Compare(g, start, finish, []search.Kind{search.BFS, search.AStar, search.Dijkstra})
	require.NoError(t, err)
	assert.Equal(t, 1, cmp.Best)
}

func TestCompare_NoPath(t *testing.T) {
	g := grid.MustParse("S#F")
	cmp, err := search.Compare(g, grid.Cell{}, grid.Cell{Row: 0, Col: 2}, []search.Kind{search.BFS, search.DFS})
	require.NoError(t, err)
	assert.Equal(t, -1, cmp.Best)
	_, ok := cmp.Winner()
	assert.False(t, ok)
}

func TestCompare_Validation(t *testing.T) {
	g := grid.MustParse("S.F")
	_, err := search.Compare(g, grid.Cell{}, grid.Cell{Row: 0, Col: 2}, []search.Kind{search.BFS, search.Kind(99)})
	assert.ErrorIs(t, err, search.ErrUnknownKind)
	_, err = search.Compare(nil, grid.Cell{}, grid.Cell{Row: 0, Col: 2}, nil)
	assert.ErrorIs(t, err, search.ErrNilGrid)
}

func TestCompare_LeavesGridUntouched(t *testing.T) {
	g := grid.MustParse("S.m\n#f.\n..F")
	before := g.String()
	_, err := search.Compare(g, grid.Cell{}, grid.Cell{Row: 2, Col: 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, before, g.String())
}
