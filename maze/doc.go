// Package maze generates wall layouts for a grid.Grid.
//
// A generator reads only the grid's dimensions and the two endpoints and
// returns the cells that should become walls. The result is unique, sorted
// row-major, and never contains start or finish. Generate leaves the grid
// untouched; Build clears the grid and applies a fresh maze in one call.
//
// Generators:
//
//   - Division:    recursive division. Wall lines on the parity opposite to
//     start, one gap per line, orientation alternating with depth.
//   - Prim:        randomized Prim's over the start-parity lattice.
//   - Kruskal:     randomized Kruskal over the same lattice, union-find.
//   - Backtracker: depth-first carving with random turns.
//   - Wilson:      loop-erased random walks; every spanning tree of the
//     lattice is equally likely.
//   - Random:      independent walls with probability Density.
//
// All generators except Random keep start and finish connected. If finish
// ends up boxed in (an intersection of two wall lines, or an off-lattice
// cell) one of its neighbors is reopened. LoopProbability then reopens each
// remaining wall independently, which adds cycles and never disconnects.
//
// Randomness:
//
//	Every run draws from one *rand.Rand. WithRand supplies it; otherwise it
//	is seeded from WithSeed, with 0 mapped to a fixed default. The same
//	seed, options and dimensions always produce the same walls.
//
// Errors (sentinel):
//
//   - ErrNilGrid          if the grid pointer is nil.
//   - ErrUnknownGenerator if gen is not one of Generators().
//   - ErrOptionViolation  for a probability outside [0,1].
//   - grid.ErrOutOfBounds if an endpoint lies outside the grid.
//
// Complexity: O(R×C) time and memory for every generator except Wilson,
// whose random walks take O(R×C) expected steps per lattice cell in the
// worst case. Kruskal adds an inverse-Ackermann factor.
package maze
