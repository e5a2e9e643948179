package grid_test

import (
	"math/rand"
	"testing"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
)

// randomGrid builds an n×n grid with roughly 30% walls from a fixed seed.
func randomGrid(b *testing.B, n int) *grid.Grid {
	b.Helper()
	g, err := grid.New(n, n, grid.Cell{}, grid.Cell{Row: n - 1, Col: n - 1})
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	r := rand.New(rand.NewSource(42))
	for i := 0; i < g.Size(); i++ {
		if r.Float64() < 0.3 {
			_ = g.SetWall(g.Coordinate(i), true)
		}
	}
	return g
}

// BenchmarkConnectedComponents measures flood filling a 500×500 grid.
func BenchmarkConnectedComponents(b *testing.B) {
	g := randomGrid(b, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}

// BenchmarkNeighbors measures neighbor lookup with a reused buffer.
func BenchmarkNeighbors(b *testing.B) {
	g := randomGrid(b, 100)
	buf := make([]grid.Cell, 0, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = g.AppendNeighbors(buf[:0], g.Coordinate(i%g.Size()))
	}
}
