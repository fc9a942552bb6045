// Package tsp_test provides helpers shared across *_test.go files in this package.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tspanneal/tsp"
	"github.com/stretchr/testify/require"
)

const (
	// epsTiny is the tolerance for costs computed along different summation orders.
	epsTiny = 1e-9

	// seedDet is a fixed non-default seed.
	seedDet = int64(42)
)

// unitSquare returns the corners of the unit square in perimeter order.
func unitSquare() []tsp.Point {
	return []tsp.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

// randomPoints returns n points uniform in [0,100)² from a fixed seed.
func randomPoints(n int, seed int64) []tsp.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]tsp.Point, n)
	for i := range pts {
		pts[i] = tsp.Point{X: r.Float64() * 100, Y: r.Float64() * 100}
	}

	return pts
}

// circlePoints returns n points evenly spaced on a circle of radius r, in order.
func circlePoints(n int, r float64) []tsp.Point {
	pts := make([]tsp.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = tsp.Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}

	return pts
}

// regularPolygonPerimeter is the optimal tour length over circlePoints(n, r).
func regularPolygonPerimeter(n int, r float64) float64 {
	return 2 * float64(n) * r * math.Sin(math.Pi/float64(n))
}

// requirePermutation fails the test unless tour is a permutation of 0..n-1.
func requirePermutation(t testing.TB, tour []int, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidatePermutation(tour, n))
}

// quickOptions returns DefaultOptions with a fixed seed and the given budget.
func quickOptions(iters int) tsp.Options {
	opts := tsp.DefaultOptions()
	opts.MaxIterations = iters
	opts.Seed = seedDet

	return opts
}
