// SPDX-License-Identifier: MIT

package graphio

import "errors"

var (
	// ErrParse indicates a malformed token or record.
	ErrParse = errors.New("graphio: parse error")

	// ErrEmptyInput indicates the input held no data lines.
	ErrEmptyInput = errors.New("graphio: empty input")

	// ErrShape indicates ragged rows or a wrong field count.
	ErrShape = errors.New("graphio: inconsistent shape")

	// ErrOutOfRange indicates a node index outside [0,n).
	ErrOutOfRange = errors.New("graphio: index out of range")
)
