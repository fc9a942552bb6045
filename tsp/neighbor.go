package tsp

import "math/rand"

// Swap exchanges the cities at tour positions I and J.
// A Swap is its own inverse: applying it twice restores the tour.
type Swap struct {
	I, J int
}

// Apply exchanges tour[s.I] and tour[s.J] in place.
func (s Swap) Apply(tour []int) {
	tour[s.I], tour[s.J] = tour[s.J], tour[s.I]
}

// proposeSwap draws I then J uniformly from 0..n-1; they may coincide.
// n ≤ 0 yields the zero Swap without consuming randomness.
func proposeSwap(n int, rng *rand.Rand) Swap {
	if n <= 0 {
		return Swap{}
	}
	i := rng.Intn(n)
	j := rng.Intn(n)

	return Swap{I: i, J: j}
}

// ProposeSwap picks two positions uniformly at random, applies the exchange
// to tour in place and returns it so the caller can roll back with Apply.
// If rng is nil, the default deterministic stream is used.
//
// Complexity: O(1).
func ProposeSwap(tour []int, rng *rand.Rand) Swap {
	if rng == nil {
		rng = NewRNG(0)
	}
	s := proposeSwap(len(tour), rng)
	if len(tour) > 0 {
		s.Apply(tour)
	}

	return s
}
