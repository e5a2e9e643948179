package maze_test

import (
	"fmt"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/maze"
	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/search"
)

// ExampleBuild generates a Prim's maze in place and solves it.
func ExampleBuild() {
	g, err := grid.New(9, 15, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 8, Col: 14})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err := maze.Build(g, maze.Prim, maze.WithSeed(42), maze.WithLoopProbability(0)); err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := search.Search(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 8, Col: 14}, search.AStar)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("solvable:", res.Found())
	// Output:
	// solvable: true
}

// ExampleScatter shows that full density walls off everything but the
// endpoints.
func ExampleScatter() {
	g := grid.MustParse(`
		S...
		....
		...F
	`)
	walls, _ := maze.Scatter(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 3}, maze.WithDensity(1))
	g.ApplyWalls(walls)
	fmt.Print(g)
	// Output:
	// S###
	// ####
	// ###F
}
