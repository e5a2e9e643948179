package search

import (
	"sync"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
)

// Comparison holds side-by-side results of several algorithms.
type Comparison struct {
	// Results are in the order the kinds were requested.
	Results []Result
	// Best indexes the winning result, or -1 if no run found a path.
	// A found path beats none; then lower cost wins, then fewer visited
	// cells, then request order.
	Best int
}

// Compare runs every kind against its own Clone of g concurrently and ranks
// the results. An empty kinds slice runs all of Kinds(). Validation is the
// same as Search and happens once, before any run starts. WithOnVisit is
// ignored here since the runs are concurrent.
func Compare(g *grid.Grid, start, finish grid.Cell, kinds []Kind, opts ...Option) (Comparison, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(kinds) == 0 {
		kinds = Kinds()
	}
	for _, k := range kinds {
		if err := validate(g, start, finish, k); err != nil {
			return Comparison{}, err
		}
	}

	results := make([]Result, len(kinds))
	var wg sync.WaitGroup
	for i, k := range kinds {
		wg.Add(1)
		go func(idx int, kind Kind, board *grid.Grid) {
			defer wg.Done()
			results[idx] = run(board, start, finish, kind, nil)
		}(i, k, g.Clone())
	}
	wg.Wait()

	cmp := Comparison{Results: results, Best: -1}
	for i, r := range results {
		cfg.Logger.Printf("[SEARCH] [INFO] compare %s visited=%d path=%d cost=%d",
			r.Kind, len(r.Visited), len(r.Path), r.Cost)
		if !r.Found() {
			continue
		}
		if cmp.Best < 0 || better(r, results[cmp.Best]) {
			cmp.Best = i
		}
	}

	return cmp, nil
}

// better reports whether found result a strictly beats found result b.
func better(a, b Result) bool {
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}
	return len(a.Visited) < len(b.Visited)
}

// Winner returns the best result and true, or a zero Result and false.
func (c Comparison) Winner() (Result, bool) {
	if c.Best < 0 || c.Best >= len(c.Results) {
		return Result{}, false
	}
	return c.Results[c.Best], true
}
