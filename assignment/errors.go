// SPDX-License-Identifier: MIT

package assignment

import "errors"

var (
	// ErrEmpty is returned for a nil or zero-sized cost matrix.
	ErrEmpty = errors.New("assignment: empty cost matrix")

	// ErrShape signals more rows than columns.
	ErrShape = errors.New("assignment: more rows than columns")

	// ErrNaNInf signals a NaN or ±Inf cost.
	ErrNaNInf = errors.New("assignment: NaN or Inf cost")
)
