// Package search runs single-source, single-target searches over a grid.Grid.
//
// Six algorithms share one entry point, Search, and are selected by the
// closed enumeration Kind through a lookup table:
//
//   - Dijkstra:         minimum total weight path; weights ≥ 1.
//   - AStar:            Dijkstra guided by the Manhattan distance to finish.
//   - Greedy:           best-first by Manhattan distance only; not optimal.
//   - BFS:              fewest edges; weights ignored.
//   - DFS:              depth-first; neither shortest nor cheapest.
//   - BidirectionalBFS: two BFS frontiers meeting in the middle.
//
// Every run returns a Result holding the cells in the order they were
// finalized (Visited) and the start→finish path inclusive (Path), or an empty
// Path when finish is unreachable. When start == finish the result is the
// trivial one-cell path with no expansion.
//
// Compare runs several kinds concurrently, each on its own Clone of the
// grid, and ranks the results. WithLogger receives a summary line per run;
// WithOnVisit streams the visit order of a single Search as it happens.
//
// Determinism:
//
//	Whenever several open cells share the best priority, the one that entered
//	the open set first wins. A* and Greedy keep a cell's entry rank when its
//	priority improves. Dijkstra behaves like a row-major list of every cell,
//	stably re-sorted by cost before each pick: cells reaching a cost in the
//	same expansion enter in grid order, and an improved cell re-enters after
//	those already at its new cost. Nothing is randomized, so repeated runs on
//	an unchanged grid return identical results.
//
// State:
//
//	Per-run state (tentative cost, visited flag, predecessor and successor
//	links) lives in side arrays indexed by grid.Grid.Index and is allocated
//	fresh for every call. The grid is only read. Heuristic values are
//	computed inside the call and never cached.
//
// Errors (sentinel):
//
//   - ErrNilGrid          if the grid pointer is nil.
//   - ErrUnknownKind      if kind is not one of Kinds().
//   - ErrInvalidGrid      wraps the first grid.Validate violation.
//   - grid.ErrOutOfBounds if start or finish is outside the grid.
//   - ErrEndpointBlocked  if start or finish is a wall.
//
// An unreachable finish is not an error.
//
// Complexity (V = rows×cols):
//
//   - Dijkstra, AStar, Greedy: O(V log V) time, O(V) memory.
//   - BFS, DFS, BidirectionalBFS: O(V) time and memory.
package search
