package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tspanneal/tsp"
	"github.com/stretchr/testify/require"
)

func TestDistance_Euclidean(t *testing.T) {
	a := tsp.Point{X: 0, Y: 0}
	b := tsp.Point{X: 3, Y: 4}

	require.Equal(t, 5.0, tsp.Distance(a, b))
	require.Equal(t, 5.0, tsp.Distance(b, a))
	require.Equal(t, 0.0, tsp.Distance(a, a))
	require.Equal(t, 5.0, tsp.Euclidean.Distance(a, b))
}

func TestDistance_LegacyCubed(t *testing.T) {
	a := tsp.Point{X: 0, Y: 0}
	b := tsp.Point{X: 2, Y: 1}

	// sqrt(|2|³ + 1²) = 3
	require.Equal(t, 3.0, tsp.LegacyCubed.Distance(a, b))
	require.Equal(t, 3.0, tsp.LegacyCubed.Distance(b, a), "magnitude form keeps it symmetric")
	require.Equal(t, 0.0, tsp.LegacyCubed.Distance(b, b))
}

// TestDistance_SymmetryRandom checks d(a,b)==d(b,a) for both metrics on random pairs.
func TestDistance_SymmetryRandom(t *testing.T) {
	pts := randomPoints(50, 3)
	for _, m := range []tsp.Metric{tsp.Euclidean, tsp.LegacyCubed} {
		for i := range pts {
			for j := range pts {
				d := m.Distance(pts[i], pts[j])
				require.False(t, math.IsNaN(d))
				require.GreaterOrEqual(t, d, 0.0)
				require.Equal(t, d, m.Distance(pts[j], pts[i]), "metric %s", m)
			}
		}
	}
}

func TestParseMetric(t *testing.T) {
	cases := []struct {
		in   string
		want tsp.Metric
	}{
		{"", tsp.Euclidean},
		{"euclidean", tsp.Euclidean},
		{" Legacy-Cubed ", tsp.LegacyCubed},
	}
	for _, tc := range cases {
		got, err := tsp.ParseMetric(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got)
	}

	_, err := tsp.ParseMetric("manhattan")
	require.ErrorIs(t, err, tsp.ErrUnknownMetric)
	require.ErrorIs(t, err, tsp.ErrInvalidInput)

	require.Equal(t, "legacy-cubed", tsp.LegacyCubed.String())
	require.Equal(t, "Metric(9)", tsp.Metric(9).String())
}

func TestParseEvaluation(t *testing.T) {
	e, err := tsp.ParseEvaluation("FULL")
	require.NoError(t, err)
	require.Equal(t, tsp.EvalFull, e)

	e, err = tsp.ParseEvaluation("")
	require.NoError(t, err)
	require.Equal(t, tsp.EvalDelta, e)

	_, err = tsp.ParseEvaluation("lazy")
	require.ErrorIs(t, err, tsp.ErrUnknownEvaluation)
	require.ErrorIs(t, err, tsp.ErrInvalidInput)
}
