// Package tsp - random streams for the annealer.
//
// A run draws every random number from one *rand.Rand: the initial shuffle,
// the swap positions and the acceptance draws. Equal seeds therefore replay
// equal runs. Nothing here reads the clock; callers that want a wall-clock
// seed pass it in.
//
// A *rand.Rand is not goroutine-safe. Concurrent runs each get their own
// stream from DeriveRNG.
package tsp

import "math/rand"

// defaultRNGSeed backs Options.Seed == 0.
const defaultRNGSeed int64 = 1

// NewRNG returns the stream Solve uses for Options.Seed == seed.
// Seed 0 selects the fixed default stream.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveRNG returns stream number `stream` derived from base. Each call
// consumes one Int63 from base, so the derived seeds depend on call order;
// derive all streams up front on the goroutine that owns base. A nil base
// stands for the default stream's seed.
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}
	seed := splitmix64(uint64(parent) ^ splitmix64(stream))

	return rand.New(rand.NewSource(int64(seed)))
}

// splitmix64 is one step of the SplitMix64 generator. Adjacent inputs map to
// unrelated outputs.
func splitmix64(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return z ^ (z >> 31)
}

// RandomTour returns the identity permutation of 0..n-1 after a Fisher–Yates
// shuffle driven by rng (nil uses the default stream). n ≤ 0 yields an empty
// tour.
func RandomTour(n int, rng *rand.Rand) []int {
	if n <= 0 {
		return []int{}
	}
	if rng == nil {
		rng = NewRNG(0)
	}

	tour := make([]int, n)
	for i := range tour {
		tour[i] = i
	}
	rng.Shuffle(n, func(i, j int) { tour[i], tour[j] = tour[j], tour[i] })

	return tour
}
