package render

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/search"
)

// DefaultFrame is the tick interval of a Player.
const DefaultFrame = time.Second / 60

// TickMsg advances a running Player.
type TickMsg time.Time

// Player replays a search result: visited cells appear in order, then the
// path is drawn. It implements tea.Model.
type Player struct {
	g     *grid.Grid
	res   search.Result
	opts  []Option
	frame time.Duration
	// batch is the number of visited cells revealed per tick.
	batch   int
	shown   int
	running bool
	// ticking is set while a TickMsg is scheduled.
	ticking bool
}

// NewPlayer returns a running Player revealing batch cells every frame.
// Non-positive frame or batch fall back to DefaultFrame and 1.
func NewPlayer(g *grid.Grid, res search.Result, frame time.Duration, batch int, opts ...Option) Player {
	if frame <= 0 {
		frame = DefaultFrame
	}
	if batch < 1 {
		batch = 1
	}
	p := Player{g: g, res: res, opts: opts, frame: frame, batch: batch, running: true}
	p.ticking = !p.Done()
	return p
}

func (p Player) tick() tea.Cmd {
	return tea.Tick(p.frame, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Init starts the tick loop.
func (p Player) Init() tea.Cmd {
	if !p.ticking {
		return nil
	}
	return p.tick()
}

// schedule starts the tick loop if the replay is running, unfinished and has
// no tick pending. The loop stops on pause or once every cell is shown.
func (p *Player) schedule() tea.Cmd {
	if p.ticking || !p.running || p.Done() {
		return nil
	}
	p.ticking = true
	return p.tick()
}

// Update handles keys and ticks.
func (p Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return p, tea.Quit
		case " ":
			p.running = !p.running
		case "r":
			p.shown = 0
			p.running = true
		case "right", "l":
			p.advance()
		case "end":
			p.shown = len(p.res.Visited)
		}
	case TickMsg:
		p.ticking = false
		if p.running {
			p.advance()
		}
	}

	cmd := p.schedule()
	return p, cmd
}

func (p *Player) advance() {
	p.shown = min(p.shown+p.batch, len(p.res.Visited))
}

// Done reports whether every visited cell has been revealed.
func (p Player) Done() bool {
	return p.shown >= len(p.res.Visited)
}

// Shown returns how many visited cells are on screen.
func (p Player) Shown() int { return p.shown }

// Running reports whether ticks advance the replay.
func (p Player) Running() bool { return p.running }

// View renders the current frame with a status line.
func (p Player) View() string {
	var path []grid.Cell
	if p.Done() {
		path = p.res.Path
	}

	var b strings.Builder
	b.WriteString(Overlay(p.g, p.res.Visited[:p.shown], path, p.opts...))
	status := fmt.Sprintf("%s  visited %d/%d", p.res.Kind, p.shown, len(p.res.Visited))
	switch {
	case p.Done() && p.res.Found():
		status += fmt.Sprintf("  path=%d cost=%d", len(p.res.Path), p.res.Cost)
	case p.Done():
		status += "  no path"
	case !p.running:
		status += "  paused"
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render("space:pause  r:restart  →:step  end:skip  q:quit"))
	b.WriteString("\n")

	return b.String()
}
