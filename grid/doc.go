// Package grid models the weighted rectangular grid that the search engine and
// the maze generators operate on.
//
// What:
//
//   - Grid is a fixed rows×cols row-major array of Node values.
//   - A Node carries only static topology: passability, terrain weight and role.
//   - Exactly one cell holds RoleStart and exactly one holds RoleFinish.
//   - Neighbors yields orthogonal, in-bounds, passable cells in the fixed
//     order up, down, left, right.
//
// Per-run search state (tentative costs, visited flags, predecessor links) is
// not stored here. Algorithms keep it in their own side arrays indexed by
// Index(c) = row*cols + col, so a Grid can be searched any number of times
// without a reset pass.
//
// Terrain:
//
//	Normal = 1, Mud = 5, Forest = 10, Water = 50
//
// A wall supersedes terrain: ApplyWalls resets the weight of every cell it
// walls off to DefaultWeight.
//
// Text format (Parse / String):
//
//	S..#....
//	.m.#.ff.
//	...#...F
//
// '.' open, '#' wall, 'S' start, 'F' finish, 'm' mud, 'f' forest, 'w' water,
// '1'..'9' explicit weight.
//
// Complexity:
//
//   - Neighbors:          O(1).
//   - Validate:           O(R×C).
//   - Reachable:          O(R×C), Memory: O(R×C).
//   - ConnectedComponents: O(R×C), Memory: O(R×C).
//
// Concurrency: a Grid is not safe for concurrent mutation. Searches only read
// it, so concurrent searches on an unchanging Grid are fine; use Clone for
// side-by-side runs that mutate.
package grid
