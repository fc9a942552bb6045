// SPDX-License-Identifier: MIT

package matrix

import "math"

// PairFunc returns the value stored at (i, j) and (j, i) of a symmetric matrix.
type PairFunc func(i, j int) float64

// NewSymmetric builds an n×n Dense whose entries are f(i, j) for i<j,
// mirrored to (j, i), with a zero diagonal. f is called exactly once per
// unordered pair, in row-major order of the upper triangle.
//
// Errors:
//   - ErrInvalidDimensions if n ≤ 0,
//   - ErrNilFunc if f is nil,
//   - ErrNaNInf (wrapped with the offending index) if f returns NaN or ±Inf.
//
// Complexity: O(n²) time and memory, n(n−1)/2 calls to f.
func NewSymmetric(n int, f PairFunc) (*Dense, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = f(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf("NewSymmetric", i, j, ErrNaNInf)
			}
			m.data[i*n+j] = v
			m.data[j*n+i] = v
		}
	}

	return m, nil
}
