// SPDX-License-Identifier: MIT

package simulate

import "errors"

var (
	// ErrInvalidProbability signals a probability outside [0,1].
	ErrInvalidProbability = errors.New("simulate: probability out of [0,1]")

	// ErrInvalidCorrelation signals a correlation outside [0,1].
	ErrInvalidCorrelation = errors.New("simulate: correlation out of [0,1]")

	// ErrTooFewVertices signals a network size below 1 or a negative block size.
	ErrTooFewVertices = errors.New("simulate: too few vertices")

	// ErrShape signals a block matrix that does not match the block sizes or is
	// asymmetric for an undirected model.
	ErrShape = errors.New("simulate: block matrix shape mismatch")

	// ErrInvalidPermutation signals a slice that is not a permutation of 0..n-1.
	ErrInvalidPermutation = errors.New("simulate: not a permutation")
)
