// SPDX-License-Identifier: MIT

package decompose

import "errors"

var (
	// ErrEmpty is returned for nil or zero-sized input.
	ErrEmpty = errors.New("decompose: empty matrix")

	// ErrNumerical signals NaN/Inf input or a factorization that failed to converge.
	ErrNumerical = errors.New("decompose: numerical failure")

	// ErrDimension signals a requested rank outside [1, min(rows, cols)].
	ErrDimension = errors.New("decompose: invalid dimension")

	// ErrUnknownAlgorithm signals an algorithm name or value that is not supported.
	ErrUnknownAlgorithm = errors.New("decompose: unknown algorithm")
)
