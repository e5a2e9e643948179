package search_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/search"
)

var terrainWeights = []int{1, 1, 2, 5, 9, 10, 50}

// randomGrid builds a small grid with ~30% walls and, unless unit is set,
// random terrain. Endpoints are distinct and passable.
func randomGrid(t *testing.T, rng *rand.Rand, unit bool) (*grid.Grid, grid.Cell, grid.Cell) {
	t.Helper()
	rows, cols := 1+rng.Intn(7), 2+rng.Intn(7)
	n := rows * cols
	si := rng.Intn(n)
	fi := rng.Intn(n - 1)
	if fi >= si {
		fi++
	}
	start := grid.Cell{Row: si / cols, Col: si % cols}
	finish := grid.Cell{Row: fi / cols, Col: fi % cols}
	g, err := grid.New(rows, cols, start, finish)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		c := grid.Cell{Row: i / cols, Col: i % cols}
		if c == start || c == finish {
			continue
		}
		if rng.Float64() < 0.3 {
			require.NoError(t, g.SetWall(c, true))
			continue
		}
		if !unit {
			require.NoError(t, g.SetWeight(c, terrainWeights[rng.Intn(len(terrainWeights))]))
		}
	}

	return g, start, finish
}

// relaxAll is a Bellman-Ford reference: it relaxes every edge until nothing
// changes and returns the minimum cost to finish, or math.MaxInt.
func relaxAll(g *grid.Grid, start, finish grid.Cell) int {
	dist := make([]int, g.Size())
	for i := range dist {
		dist[i] = math.MaxInt
	}
	dist[g.Index(start)] = 0
	for changed := true; changed; {
		changed = false
		for i := range dist {
			if dist[i] == math.MaxInt {
				continue
			}
			for _, v := range g.Neighbors(g.Coordinate(i)) {
				vi := g.Index(v)
				if d := dist[i] + g.Weight(v); d < dist[vi] {
					dist[vi] = d
					changed = true
				}
			}
		}
	}

	return dist[g.Index(finish)]
}

func runAll(t *testing.T, g *grid.Grid, start, finish grid.Cell) map[search.Kind]search.Result {
	t.Helper()
	out := make(map[search.Kind]search.Result, len(search.Kinds()))
	for _, k := range search.Kinds() {
		res, err := search.Search(g, start, finish, k)
		require.NoError(t, err, k)
		out[k] = res
	}
	return out
}

// TestProperties_Random checks, over many random grids:
//   - every algorithm finds a path iff the finish is reachable;
//   - paths are valid and Cost matches PathCost;
//   - visit orders hold no duplicates;
//   - Dijkstra and A* reach the reference minimum cost;
//   - on unit grids Dijkstra, A*, BFS and bidirectional agree on length;
//   - bidirectional length always equals BFS length (both ignore weights);
//   - greedy and DFS are never shorter than BFS.
func TestProperties_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 500; iter++ {
		unit := iter%2 == 0
		g, start, finish := randomGrid(t, rng, unit)
		best := relaxAll(g, start, finish)
		reachable := best != math.MaxInt
		results := runAll(t, g, start, finish)

		for k, res := range results {
			require.Equal(t, reachable, res.Found(), "kind %v on\n%s", k, g)
			assertNoDuplicates(t, res.Visited)
			if !reachable {
				continue
			}
			assertValidPath(t, g, start, finish, res.Path)
			assert.Equal(t, search.PathCost(g, res.Path), res.Cost)
		}
		if !reachable {
			continue
		}

		require.Equal(t, best, results[search.Dijkstra].Cost, "dijkstra on\n%s", g)
		require.Equal(t, best, results[search.AStar].Cost, "astar on\n%s", g)

		bfsLen := len(results[search.BFS].Path)
		assert.Len(t, results[search.BidirectionalBFS].Path, bfsLen, "bidirectional on\n%s", g)
		assert.GreaterOrEqual(t, len(results[search.Greedy].Path), bfsLen)
		assert.GreaterOrEqual(t, len(results[search.DFS].Path), bfsLen)
		if unit {
			assert.Len(t, results[search.Dijkstra].Path, bfsLen)
			assert.Len(t, results[search.AStar].Path, bfsLen)
		}
	}
}

// TestProperties_Idempotent: the same input always yields the same result.
func TestProperties_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 50; iter++ {
		g, start, finish := randomGrid(t, rng, false)
		first := runAll(t, g, start, finish)
		second := runAll(t, g, start, finish)
		assert.Equal(t, first, second)
	}
}

// TestProperties_FiniteCost: a found path's cost is finite and bounded by
// the sum of all weights.
func TestProperties_FiniteCost(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for iter := 0; iter < 100; iter++ {
		g, start, finish := randomGrid(t, rng, false)
		total := 0
		for i := 0; i < g.Size(); i++ {
			total += g.Weight(g.Coordinate(i))
		}
		for k, res := range runAll(t, g, start, finish) {
			assert.LessOrEqual(t, res.Cost, total, k)
			assert.GreaterOrEqual(t, res.Cost, 0, k)
		}
	}
}
