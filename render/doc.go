// Package render draws grids and search results for terminals.
//
// Board, Result and Overlay produce one line per grid row using the grid
// text glyphs, with '*' for path cells and 'o' for cells a search expanded.
// WithColor styles each glyph with lipgloss; the plain output stays stable
// for tests and pipes.
//
// Comparison prints a side-by-side table of a search.Comparison, Profile
// charts how far from the start each algorithm wandered as it expanded
// cells, and Player is a bubbletea model that replays a result frame by
// frame.
package render
