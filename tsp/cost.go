// Package tsp - tour cost evaluation.
//
// Two evaluators share one distance source:
//
//   - tourCost: full closed-tour length, O(n).
//   - applySwapDelta: exchanges two positions in place and returns the cost
//     change by re-summing only the edges that start at positions
//     {i−1, i, j−1, j} (mod n), deduplicated. O(1).
//
// The distance source is either the point set itself or a precomputed
// symmetric *matrix.Dense built once per run.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspanneal/matrix"
)

// distanceFunc returns the distance between city indices i and j.
type distanceFunc func(i, j int) float64

// pointDistance reads distances straight from the points.
func pointDistance(points []Point, metric Metric) distanceFunc {
	return func(i, j int) float64 {
		return metric.Distance(points[i], points[j])
	}
}

// newDistanceFunc returns the run's distance source. With precompute the
// n×n table is filled once through matrix.NewSymmetric and read without
// bounds checks; tours are validated permutations so indices are in range.
//
// Complexity: O(1) or O(n²) time/memory with precompute.
func newDistanceFunc(points []Point, metric Metric, precompute bool) (distanceFunc, error) {
	direct := pointDistance(points, metric)
	if !precompute {
		return direct, nil
	}

	table, err := matrix.NewSymmetric(len(points), matrix.PairFunc(direct))
	if err != nil {
		return nil, fmt.Errorf("%w: distance table: %v", ErrInvalidInput, err)
	}

	return table.Get, nil
}

// tourCost sums dist over consecutive pairs of tour, including (last, first).
// An empty tour costs 0; a single city costs dist(c, c) == 0.
//
// Complexity: O(n).
func tourCost(dist distanceFunc, tour []int) float64 {
	n := len(tour)
	if n == 0 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += dist(tour[i], tour[i+1])
	}
	sum += dist(tour[n-1], tour[0])

	return sum
}

// TourCost returns the closed-tour length of tour over points under metric.
// tour must index into points; it is not modified.
//
// Complexity: O(n).
func TourCost(points []Point, tour []int, metric Metric) float64 {
	return tourCost(pointDistance(points, metric), tour)
}

// swapEdges returns the distinct edge start positions affected by exchanging
// positions s.I and s.J in a tour of length n, and how many there are.
func swapEdges(n int, s Swap) ([4]int, int) {
	var (
		out  [4]int
		k    int
		cand = [4]int{s.I - 1, s.I, s.J - 1, s.J}
	)
	for _, p := range cand {
		p = (p + n) % n
		dup := false
		for q := 0; q < k; q++ {
			if out[q] == p {
				dup = true
				break
			}
		}
		if !dup {
			out[k] = p
			k++
		}
	}

	return out, k
}

// edgesCost sums the edges starting at the given positions.
func edgesCost(dist distanceFunc, tour []int, pos []int) float64 {
	n := len(tour)

	var sum float64
	for _, p := range pos {
		sum += dist(tour[p], tour[(p+1)%n])
	}

	return sum
}

// applySwapDelta applies s to tour in place and returns newCost − oldCost.
// A no-op swap (I == J) returns exactly 0.
//
// Complexity: O(1).
func applySwapDelta(dist distanceFunc, tour []int, s Swap) float64 {
	if s.I == s.J {
		return 0
	}
	edges, k := swapEdges(len(tour), s)
	before := edgesCost(dist, tour, edges[:k])
	s.Apply(tour)

	return edgesCost(dist, tour, edges[:k]) - before
}

// SwapDelta returns the change in closed-tour length that exchanging
// positions s.I and s.J would cause. tour is left unchanged on return.
//
// Complexity: O(1).
func SwapDelta(points []Point, tour []int, metric Metric, s Swap) float64 {
	d := applySwapDelta(pointDistance(points, metric), tour, s)
	s.Apply(tour)

	return d
}
