package render

import (
	"fmt"
	"strings"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/search"
)

// Overlay glyphs. Board glyphs come from grid.Grid.Glyph.
const (
	GlyphPath    = '*'
	GlyphVisited = 'o'
)

// Options controls rendering.
type Options struct {
	// Color styles cells with lipgloss; plain glyphs otherwise.
	Color bool
	// ShowVisited marks expanded cells that are not on the path.
	ShowVisited bool
}

// Option is a functional option for the renderers.
type Option func(*Options)

// DefaultOptions returns plain output with visited cells shown.
func DefaultOptions() Options {
	return Options{ShowVisited: true}
}

// WithColor toggles lipgloss styling.
func WithColor(on bool) Option {
	return func(o *Options) { o.Color = on }
}

// WithVisited toggles the visited overlay.
func WithVisited(on bool) Option {
	return func(o *Options) { o.ShowVisited = on }
}

func options(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Board renders g alone, one line per row.
func Board(g *grid.Grid, opts ...Option) string {
	return Overlay(g, nil, nil, opts...)
}

// Result renders g with the visit order and path of res on top.
func Result(g *grid.Grid, res search.Result, opts ...Option) string {
	return Overlay(g, res.Visited, res.Path, opts...)
}

// Overlay renders g with visited and path cells marked. Start and finish
// always keep their own glyphs; the path wins over visited.
func Overlay(g *grid.Grid, visited, path []grid.Cell, opts ...Option) string {
	o := options(opts)
	marks := make([]rune, g.Size())
	if o.ShowVisited {
		for _, c := range visited {
			if g.InBounds(c) {
				marks[g.Index(c)] = GlyphVisited
			}
		}
	}
	for _, c := range path {
		if g.InBounds(c) {
			marks[g.Index(c)] = GlyphPath
		}
	}

	var b strings.Builder
	b.Grow(g.Size() + g.Rows())
	for r := 0; r < g.Rows(); r++ {
		for col := 0; col < g.Cols(); col++ {
			c := grid.Cell{Row: r, Col: col}
			glyph := g.Glyph(c)
			if m := marks[g.Index(c)]; m != 0 && g.Node(c).Role == grid.RoleNone {
				glyph = m
			}
			if o.Color {
				b.WriteString(styleFor(glyph).Render(string(glyph)))
			} else {
				b.WriteRune(glyph)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Summary is a one-line report of res.
func Summary(res search.Result) string {
	if !res.Found() {
		return fmt.Sprintf("%s: no path, visited=%d", res.Kind, len(res.Visited))
	}
	return fmt.Sprintf("%s: visited=%d path=%d cost=%d", res.Kind, len(res.Visited), len(res.Path), res.Cost)
}

// Comparison renders one row per result and marks the winner.
func Comparison(cmp search.Comparison, opts ...Option) string {
	o := options(opts)
	var b strings.Builder
	header := fmt.Sprintf("%-13s %8s %6s %7s", "ALGORITHM", "VISITED", "PATH", "COST")
	if o.Color {
		header = headerStyle.Render(header)
	}
	b.WriteString(header)
	b.WriteByte('\n')
	for i, r := range cmp.Results {
		cost := "-"
		if r.Found() {
			cost = fmt.Sprint(r.Cost)
		}
		line := fmt.Sprintf("%-13s %8d %6d %7s", r.Kind, len(r.Visited), len(r.Path), cost)
		if i == cmp.Best {
			line += "  ← winner"
			if o.Color {
				line = winnerStyle.Render(line)
			}
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if cmp.Best < 0 {
		b.WriteString("no algorithm reached the finish\n")
	}

	return b.String()
}
