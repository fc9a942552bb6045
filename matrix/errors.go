// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Sentinel errors. Every message is prefixed with "matrix: " so it can be
// grepped in logs; wrap with fmt.Errorf("ctx: %w", ErrX) at the boundary and
// match with errors.Is.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilFunc is returned when a builder receives a nil pair function.
	ErrNilFunc = errors.New("matrix: nil pair function")
)
