package maze

import (
	"math/rand"

	"github.com/Ppratik765/Pathfinding-Algorithm-Visualiser/grid"
)

// defaultSeed is used when callers leave the seed at 0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// seed == 0 selects defaultSeed; any other value is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// shuffleCells performs an in-place Fisher–Yates shuffle of a.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleCells(a []grid.Cell, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// pickParity returns a uniformly random v in [lo, hi] with v%2 == parity.
// ok is false when no such value exists.
func pickParity(lo, hi, parity int, rng *rand.Rand) (v int, ok bool) {
	if lo < 0 {
		lo = 0
	}
	first := lo
	if first%2 != parity {
		first++
	}
	if first > hi {
		return 0, false
	}
	n := (hi-first)/2 + 1
	return first + 2*rng.Intn(n), true
}

// pickRange returns a uniformly random v in [lo, hi]; hi ≥ lo.
func pickRange(lo, hi int, rng *rand.Rand) int {
	return lo + rng.Intn(hi-lo+1)
}
