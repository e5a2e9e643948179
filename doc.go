// Package gridpath is a pathfinding and maze-generation engine for weighted
// grids, with a terminal front end.
//
// What is in the box?
//
//	A rectangular board of open cells, walls and terrain (mud, forest,
//	water), searched by six algorithms and carved by six generators:
//		• Searches: Dijkstra, A*, Greedy best-first, BFS, DFS, bidirectional BFS
//		• Comparison runs: every algorithm on its own copy, concurrently
//		• Mazes: recursive division, Prim, Kruskal, backtracker, Wilson, scatter
//		• Rendering: plain or coloured boards, comparison tables, expansion
//		  profiles, an animated replay
//
// Packages:
//
//	grid/         board model, neighbor function, flood fill, text format
//	search/       the six searches, path reconstruction, Compare
//	maze/         wall generators and Build
//	config/       YAML configuration with .env and environment overrides
//	render/       terminal output and the bubbletea replay Player
//	cmd/gridpath/ the CLI
//
// A board in the text format:
//
//	S..#....
//	.#.#.ww.
//	.#...#.F
//
// Searches never modify the board: per-run state lives in side arrays, so a
// grid can be searched any number of times, or by several goroutines at once.
//
//	go install github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/cmd/gridpath@latest
package gridpath
