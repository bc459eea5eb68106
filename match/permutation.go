// SPDX-License-Identifier: MIT

package match

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Apply returns B_perm with B_perm[i,j] = B[perm[i], perm[j]], the second
// network relabelled into the node order of the first.
// Complexity: O(n²).
func Apply(b mat.Matrix, perm []int) (*mat.Dense, error) {
	if b == nil {
		return nil, fmt.Errorf("Apply: nil input: %w", ErrShapeMismatch)
	}
	r, c := b.Dims()
	if r != c || len(perm) != r {
		return nil, fmt.Errorf("Apply: B is %dx%d, len(perm)=%d: %w", r, c, len(perm), ErrShapeMismatch)
	}
	seen := make([]bool, r)
	for i, p := range perm {
		if p < 0 || p >= r || seen[p] {
			return nil, fmt.Errorf("Apply: perm[%d]=%d: %w", i, p, ErrInvalidPermutation)
		}
		seen[p] = true
	}

	return reorder(b, perm), nil
}

// MatchRatio returns the fraction of positions where perm agrees with truth.
// Slices of different length, or empty ones, give 0.
func MatchRatio(perm, truth []int) float64 {
	if len(perm) == 0 || len(perm) != len(truth) {
		return 0
	}
	hits := 0
	for i := range perm {
		if perm[i] == truth[i] {
			hits++
		}
	}

	return float64(hits) / float64(len(perm))
}
