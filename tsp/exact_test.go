package tsp_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/tspanneal/tsp"
	"github.com/stretchr/testify/require"
)

func TestOptimalTour_UnitSquare(t *testing.T) {
	tour, cost, err := tsp.OptimalTour(unitSquare(), tsp.Euclidean)
	require.NoError(t, err)
	require.Equal(t, 4.0, cost)
	require.True(t, tsp.SameCycle([]int{0, 1, 2, 3}, tour))
}

// TestOptimalTour_Circle: the optimum over a regular polygon is its perimeter.
func TestOptimalTour_Circle(t *testing.T) {
	const n = 10
	pts := circlePoints(n, 5)
	tour, cost, err := tsp.OptimalTour(pts, tsp.Euclidean)
	require.NoError(t, err)
	requirePermutation(t, tour, n)
	require.Equal(t, 0, tour[0])
	require.InDelta(t, regularPolygonPerimeter(n, 5), cost, epsTiny)
	require.InDelta(t, tsp.TourCost(pts, tour, tsp.Euclidean), cost, epsTiny)
}

func TestOptimalTour_Small(t *testing.T) {
	tour, cost, err := tsp.OptimalTour([]tsp.Point{{X: 1, Y: 1}}, tsp.Euclidean)
	require.NoError(t, err)
	require.Equal(t, []int{0}, tour)
	require.Equal(t, 0.0, cost)

	tour, cost, err = tsp.OptimalTour([]tsp.Point{{X: 0, Y: 0}, {X: 3, Y: 4}}, tsp.Euclidean)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, tour)
	require.Equal(t, 10.0, cost)
}

func TestOptimalTour_Errors(t *testing.T) {
	_, _, err := tsp.OptimalTour(nil, tsp.Euclidean)
	require.ErrorIs(t, err, tsp.ErrInvalidInput)

	_, _, err = tsp.OptimalTour(randomPoints(tsp.MaxExactPoints+1, 1), tsp.Euclidean)
	require.ErrorIs(t, err, tsp.ErrTooManyPoints)

	_, _, err = tsp.OptimalTour(unitSquare(), tsp.Metric(5))
	require.ErrorIs(t, err, tsp.ErrUnknownMetric)
}

// TestOptimalTour_LowerBoundsAnnealer: no annealing run beats the exact optimum.
func TestOptimalTour_LowerBoundsAnnealer(t *testing.T) {
	for _, m := range []tsp.Metric{tsp.Euclidean, tsp.LegacyCubed} {
		for seed := int64(1); seed <= 5; seed++ {
			pts := randomPoints(9, seed)
			_, opt, err := tsp.OptimalTour(pts, m)
			require.NoError(t, err)

			opts := quickOptions(20000)
			opts.Seed = seed
			opts.Metric = m
			res, err := tsp.Solve(context.Background(), pts, opts)
			require.NoError(t, err)
			require.GreaterOrEqual(t, res.Cost, opt-epsTiny, "metric %s seed %d", m, seed)
		}
	}
}
