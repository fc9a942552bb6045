// SPDX-License-Identifier: MIT
// Package matrix provides the dense float64 matrix used as a precomputed
// pairwise-distance table by the annealing solver.
//
// The package is deliberately small:
//
//   - Matrix: the read/write surface (Rows, Cols, At, Set, Clone).
//   - Dense: a row-major implementation backed by a single flat slice.
//   - NewSymmetric: fills an n×n Dense from a pair function, evaluating each
//     unordered pair once and mirroring it across the diagonal.
//
// Accessors never panic on user input; they return the sentinels declared in
// errors.go. Hot loops that already know their indices are valid may use
// Dense.Get, which skips the bounds check.
//
// Memory is O(r·c). For a distance table over n points this is O(n²), so
// callers enable it only when n is moderate.
package matrix
