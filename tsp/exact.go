package tsp

import (
	"fmt"
	"math"
)

// MaxExactPoints bounds OptimalTour; the DP table holds n·2ⁿ entries.
const MaxExactPoints = 13

// OptimalTour solves the instance exactly with the Held–Karp dynamic program
// and returns an optimal open-form tour starting at city 0 and its cost.
//
// dp[mask·n+j] is the cheapest path that starts at 0, visits exactly the
// cities in mask (bit 0 always set) and ends at j. The tour is closed by
// returning from the best j to 0.
//
// Errors: ErrInvalidInput for an empty, non-finite or overflowing point set,
// ErrTooManyPoints when len(points) > MaxExactPoints.
//
// Time complexity:   O(n²·2ⁿ)
// Memory complexity: O(n·2ⁿ)
func OptimalTour(points []Point, metric Metric) ([]int, float64, error) {
	if err := validatePoints(points, metric); err != nil {
		return nil, 0, err
	}
	if !metric.valid() {
		return nil, 0, fmt.Errorf("%w %s", ErrUnknownMetric, metric)
	}
	n := len(points)
	if n > MaxExactPoints {
		return nil, 0, fmt.Errorf("%w: %d > %d", ErrTooManyPoints, n, MaxExactPoints)
	}
	if n == 1 {
		return []int{0}, 0, nil
	}

	dist, err := newDistanceFunc(points, metric, true)
	if err != nil {
		return nil, 0, err
	}

	full := 1<<n - 1
	dp := make([]float64, (full+1)*n)
	parent := make([]int, (full+1)*n)
	for i := range dp {
		dp[i] = math.Inf(1)
		parent[i] = -1
	}
	dp[1*n+0] = 0

	var (
		mask, prev, j, k int
		cand             float64
	)
	for mask = 1; mask <= full; mask += 2 { // odd masks contain city 0
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 || math.IsInf(dp[prev*n+k], 1) {
					continue
				}
				cand = dp[prev*n+k] + dist(k, j)
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = k
				}
			}
		}
	}

	bestCost := math.Inf(1)
	last := -1
	for j = 1; j < n; j++ {
		cand = dp[full*n+j] + dist(j, 0)
		if cand < bestCost {
			bestCost = cand
			last = j
		}
	}

	// Walk parents back from last to 0, filling the tour from the end.
	tour := make([]int, n)
	mask = full
	for pos := n - 1; pos > 0; pos-- {
		tour[pos] = last
		k = parent[mask*n+last]
		mask ^= 1 << last
		last = k
	}
	tour[0] = 0

	return tour, bestCost, nil
}
