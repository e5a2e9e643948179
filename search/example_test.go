package search_test

import (
	"fmt"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/search"
)

// ExampleSearch contrasts an unweighted and a weighted search around a
// water cell.
func ExampleSearch() {
	g := grid.MustParse(`
		S.w.F
		.....
	`)
	start, _ := g.Start()
	finish, _ := g.Finish()

	for _, k := range []search.Kind{search.BFS, search.Dijkstra} {
		res, err := search.Search(g, start, finish, k)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(k, res.Path, "cost =", res.Cost)
	}
	// Output:
	// bfs [(0,0) (0,1) (0,2) (0,3) (0,4)] cost = 53
	// dijkstra [(0,0) (0,1) (1,1) (1,2) (1,3) (0,3) (0,4)] cost = 6
}

// ExampleCompare runs every algorithm and reports the winner.
func ExampleCompare() {
	g := grid.MustParse(`
		S..
		.#.
		..F
	`)
	cmp, err := search.Compare(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2}, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range cmp.Results {
		fmt.Printf("%-13s visited=%d cost=%d\n", r.Kind, len(r.Visited), r.Cost)
	}
	win, _ := cmp.Winner()
	fmt.Println("winner:", win.Kind)
	// Output:
	// dijkstra      visited=8 cost=4
	// astar         visited=8 cost=4
	// greedy        visited=5 cost=4
	// bfs           visited=8 cost=4
	// dfs           visited=5 cost=4
	// bidirectional visited=5 cost=4
	// winner: greedy
}
