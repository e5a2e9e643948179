package maze

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"strings"
)

// Sentinel errors for maze generation.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrUnknownGenerator indicates a Generator outside the enumeration.
	ErrUnknownGenerator = errors.New("maze: unknown generator")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)

// Generator selects a maze algorithm.
type Generator int

const (
	// Division is recursive division: walls with single gaps split the grid
	// into ever smaller rooms.
	Division Generator = iota
	// Prim grows a spanning tree over the coarse lattice from start,
	// picking frontier cells uniformly at random.
	Prim
	// Kruskal joins random lattice edges between disjoint trees.
	Kruskal
	// Backtracker carves a depth-first spanning tree with random turns.
	Backtracker
	// Wilson carves a uniform spanning tree with loop-erased random walks.
	Wilson
	// Random scatters independent walls with no connectivity guarantee.
	Random

	numGenerators
)

var generatorNames = [numGenerators]string{
	Division:    "division",
	Prim:        "prims",
	Kruskal:     "kruskal",
	Backtracker: "backtracker",
	Wilson:      "wilson",
	Random:      "scatter",
}

func (gen Generator) String() string {
	if gen < 0 || gen >= numGenerators {
		return fmt.Sprintf("Generator(%d)", int(gen))
	}
	return generatorNames[gen]
}

// Connected reports whether the generator guarantees a start→finish route
// when no loops are opened.
func (gen Generator) Connected() bool {
	return gen >= 0 && gen < numGenerators && gen != Random
}

// Generators returns every generator in declaration order.
func Generators() []Generator {
	out := make([]Generator, numGenerators)
	for i := range out {
		out[i] = Generator(i)
	}
	return out
}

// ParseGenerator maps a name (case-insensitive) to its Generator.
func ParseGenerator(name string) (Generator, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "recursive-division", "recursive":
		return Division, nil
	case "prim":
		return Prim, nil
	case "dfs", "backtrack":
		return Backtracker, nil
	case "wilsons":
		return Wilson, nil
	case "random":
		return Random, nil
	}
	for i, gn := range generatorNames {
		if gn == n {
			return Generator(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
}

// Default option values.
const (
	DefaultLoopProbability = 0.1
	DefaultDensity         = 0.3
)

// Option configures a generator via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// generator runs.
type Option func(*Options)

// Options holds generation parameters.
type Options struct {
	// Seed feeds the default random source. 0 selects a fixed default seed,
	// so unseeded runs are reproducible.
	Seed int64

	// Rand, if set, overrides Seed. It is not safe for concurrent use.
	Rand *rand.Rand

	// LoopProbability is the chance that a final wall cell is reopened,
	// adding cycles to tree mazes. Ignored by Random.
	LoopProbability float64

	// Density is the wall probability per cell for Random.
	Density float64

	// Logger receives one summary line per run.
	Logger *log.Logger

	err error
}

// DefaultOptions returns Options with seed 0, 10% loops, 30% scatter density
// and a discarding logger.
func DefaultOptions() Options {
	return Options{
		LoopProbability: DefaultLoopProbability,
		Density:         DefaultDensity,
		Logger:          log.New(io.Discard, "", 0),
	}
}

// WithSeed sets the seed of the default random source.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand supplies the random source directly. nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithLoopProbability sets the wall reopening chance; p must lie in [0,1].
func WithLoopProbability(p float64) Option {
	return func(o *Options) {
		if !isProbability(p) {
			o.err = fmt.Errorf("%w: loop probability %v outside [0,1]", ErrOptionViolation, p)
			return
		}
		o.LoopProbability = p
	}
}

// WithDensity sets the Random wall density; p must lie in [0,1].
func WithDensity(p float64) Option {
	return func(o *Options) {
		if !isProbability(p) {
			o.err = fmt.Errorf("%w: density %v outside [0,1]", ErrOptionViolation, p)
			return
		}
		o.Density = p
	}
}

// WithLogger routes run summaries to l. A nil l is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func isProbability(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}
