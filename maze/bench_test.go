package maze_test

import (
	"testing"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/maze"
)

func benchmarkGenerator(b *testing.B, gen maze.Generator) {
	s, f := grid.Cell{Row: 1, Col: 1}, grid.Cell{Row: 199, Col: 199}
	g, err := grid.New(201, 201, s, f)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := maze.Generate(g, s, f, gen, maze.WithSeed(int64(i+1))); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDivision(b *testing.B)    { benchmarkGenerator(b, maze.Division) }
func BenchmarkPrim(b *testing.B)        { benchmarkGenerator(b, maze.Prim) }
func BenchmarkKruskal(b *testing.B)     { benchmarkGenerator(b, maze.Kruskal) }
func BenchmarkBacktracker(b *testing.B) { benchmarkGenerator(b, maze.Backtracker) }
func BenchmarkWilson(b *testing.B)      { benchmarkGenerator(b, maze.Wilson) }
func BenchmarkScatter(b *testing.B)     { benchmarkGenerator(b, maze.Random) }
