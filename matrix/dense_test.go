// Package matrix_test contains unit tests for the Dense implementation
// and the symmetric table builder.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tspanneal/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

// TestSetGetClone validates Set/At/Get and that Clone does not alias storage.
func TestSetGetClone(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 7.89))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, v)
	require.Equal(t, 7.89, m.Get(1, 2))

	cp := m.Clone()
	require.NoError(t, m.Set(1, 2, 0))
	v, err = cp.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, v, "clone must keep its own copy")
}

func TestDenseString(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 1.5))
	require.Equal(t, "[0, 1.5]\n[0, 0]\n", m.String())
}

// TestNewSymmetric checks mirroring, zero diagonal and the call count.
func TestNewSymmetric(t *testing.T) {
	const n = 4
	calls := 0
	m, err := matrix.NewSymmetric(n, func(i, j int) float64 {
		calls++
		return float64(10*i + j)
	})
	require.NoError(t, err)
	require.Equal(t, n*(n-1)/2, calls)

	for i := 0; i < n; i++ {
		require.Equal(t, 0.0, m.Get(i, i))
		for j := i + 1; j < n; j++ {
			require.Equal(t, float64(10*i+j), m.Get(i, j))
			require.Equal(t, m.Get(i, j), m.Get(j, i))
		}
	}
}

func TestNewSymmetric_Errors(t *testing.T) {
	_, err := matrix.NewSymmetric(3, nil)
	require.ErrorIs(t, err, matrix.ErrNilFunc)

	_, err = matrix.NewSymmetric(0, func(i, j int) float64 { return 1 })
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewSymmetric(3, func(i, j int) float64 { return math.NaN() })
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewSymmetric(3, func(i, j int) float64 { return math.Inf(1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestNewSymmetric_SinglePoint is the degenerate 1×1 table: nothing to fill.
func TestNewSymmetric_SinglePoint(t *testing.T) {
	m, err := matrix.NewSymmetric(1, func(i, j int) float64 {
		t.Fatalf("pair function must not be called for n=1")
		return 0
	})
	require.NoError(t, err)
	require.Equal(t, 0.0, m.Get(0, 0))
}
