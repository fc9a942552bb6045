// Package tsp - tour utilities.
//
// Helpers operate purely on open-form tours (index sequences of length n,
// closing edge implied) and never look at coordinates:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - CopyTour: independent copy of a tour slice.
//   - SameCycle: equality up to rotation and reversal.
//   - Canonical: rotate to start at 0 and orient towards the smaller neighbour.
package tsp

import "fmt"

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// Errors wrap ErrInvalidInput and name the offending position.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("%w: tour length %d, want %d", ErrInvalidInput, len(perm), n)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: tour[%d]=%d out of range [0,%d)", ErrInvalidInput, i, v, n)
		}
		if seen[v] {
			return fmt.Errorf("%w: tour[%d]=%d repeated", ErrInvalidInput, i, v)
		}
		seen[v] = true
	}

	return nil
}

// CopyTour returns an independent copy of t (nil stays nil).
//
// Complexity: O(n).
func CopyTour(t []int) []int {
	if t == nil {
		return nil
	}
	out := make([]int, len(t))
	copy(out, t)

	return out
}

// SameCycle reports whether a and b describe the same undirected cycle,
// i.e. b is a rotation of a or of a reversed. Both must be open-form tours.
//
// Complexity: O(n).
func SameCycle(a, b []int) bool {
	n := len(a)
	if n != len(b) {
		return false
	}
	if n == 0 {
		return true
	}

	off := -1
	for i := 0; i < n; i++ {
		if b[i] == a[0] {
			off = i
			break
		}
	}
	if off < 0 {
		return false
	}

	forward, backward := true, true
	for k := 0; k < n && (forward || backward); k++ {
		if b[(off+k)%n] != a[k] {
			forward = false
		}
		if b[(off-k+n)%n] != a[k] {
			backward = false
		}
	}

	return forward || backward
}

// Canonical returns a copy of t rotated so that city 0 comes first and
// oriented so that the second city is the smaller of 0's two neighbours.
// Tours without city 0 are copied unchanged.
//
// Complexity: O(n).
func Canonical(t []int) []int {
	n := len(t)
	out := make([]int, n)

	start := -1
	for i, v := range t {
		if v == 0 {
			start = i
			break
		}
	}
	if start < 0 {
		copy(out, t)

		return out
	}

	step := 1
	if n >= 3 && t[(start-1+n)%n] < t[(start+1)%n] {
		step = n - 1
	}
	for k := 0; k < n; k++ {
		out[k] = t[(start+k*step)%n]
	}

	return out
}
