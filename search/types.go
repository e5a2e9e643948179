package search

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
)

// Sentinel errors returned by Search and Compare.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrInvalidGrid indicates that the grid violates its invariants.
	ErrInvalidGrid = errors.New("search: invalid grid")

	// ErrUnknownKind indicates an algorithm kind outside the enumeration.
	ErrUnknownKind = errors.New("search: unknown algorithm kind")

	// ErrEndpointBlocked indicates that start or finish is a wall.
	ErrEndpointBlocked = errors.New("search: endpoint is a wall")
)

// Kind selects a search algorithm.
type Kind int

const (
	// Dijkstra extracts the open cell with the lowest tentative cost.
	Dijkstra Kind = iota
	// AStar extracts the open cell with the lowest cost plus heuristic.
	AStar
	// Greedy extracts the open cell with the lowest heuristic.
	Greedy
	// BFS expands cells in FIFO order.
	BFS
	// DFS expands cells in LIFO order.
	DFS
	// BidirectionalBFS runs BFS from both ends until the frontiers meet.
	BidirectionalBFS

	numKinds
)

var kindNames = [numKinds]string{
	Dijkstra:         "dijkstra",
	AStar:            "astar",
	Greedy:           "greedy",
	BFS:              "bfs",
	DFS:              "dfs",
	BidirectionalBFS: "bidirectional",
}

// String returns the lower-case name used by ParseKind.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Weighted reports whether the algorithm accounts for terrain weights.
func (k Kind) Weighted() bool {
	return k == Dijkstra || k == AStar
}

// Kinds returns every algorithm kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, numKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ParseKind maps a name (case-insensitive) to its Kind.
// "a*" and "bidirectional-bfs" are accepted as aliases.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "a*":
		return AStar, nil
	case "bidirectional-bfs", "bibfs":
		return BidirectionalBFS, nil
	}
	for k, kn := range kindNames {
		if kn == n {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Result is the outcome of one search.
type Result struct {
	Kind Kind
	// Visited lists cells in the order they were finalized or expanded.
	Visited []grid.Cell
	// Path runs from start to finish inclusive; empty if unreachable.
	Path []grid.Cell
	// Cost is the total weight of the path cells after start.
	Cost int
}

// Found reports whether a path was found.
func (r Result) Found() bool {
	return len(r.Path) > 0
}

// Options configures Search and Compare.
type Options struct {
	// Logger receives one line per run. Defaults to a discarding logger.
	Logger *log.Logger

	// OnVisit, if set, is called with each cell as it joins the visit order.
	// Search only.
	OnVisit func(c grid.Cell)
}

// Option is a functional option for Search and Compare.
type Option func(*Options)

// WithLogger routes run summaries to l. A nil l is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnVisit streams visited cells to fn during Search.
func WithOnVisit(fn func(c grid.Cell)) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// DefaultOptions returns Options with a logger writing to io.Discard.
func DefaultOptions() Options {
	return Options{
		Logger: log.New(io.Discard, "", 0),
	}
}
