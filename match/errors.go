// SPDX-License-Identifier: MIT

package match

import "errors"

var (
	// ErrShapeMismatch signals nil, empty, non-square or differently sized inputs.
	ErrShapeMismatch = errors.New("match: adjacency shapes differ")

	// ErrInfeasibleSeed signals a seed index out of range or used twice on one side.
	ErrInfeasibleSeed = errors.New("match: infeasible seed correspondence")

	// ErrNaNInf signals a NaN or ±Inf adjacency entry.
	ErrNaNInf = errors.New("match: NaN or Inf encountered")

	// ErrInvalidPermutation signals a slice that is not a permutation of 0..n-1.
	ErrInvalidPermutation = errors.New("match: not a permutation")
)
