// SPDX-License-Identifier: MIT

package embed

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInput is returned when a nil network or matrix is passed.
	ErrNilInput = errors.New("embed: nil input")

	// ErrDimension signals a requested dimension larger than the number of nodes.
	ErrDimension = errors.New("embed: dimension exceeds node count")

	// ErrNoNetworks is returned by Omnibus and Dissimilarity for an empty input list.
	ErrNoNetworks = errors.New("embed: no networks")

	// ErrSizeMismatch signals networks or positions that do not share a vertex set
	// (different n, d or directedness).
	ErrSizeMismatch = errors.New("embed: size mismatch")
)

// RankDeficiencyWarning reports that fewer non-zero singular values were
// available than the requested dimension. It is informational: the embedding
// is returned with zero-padded trailing columns.
type RankDeficiencyWarning struct {
	Requested int // dimension that was asked for (or selected)
	Effective int // number of non-zero singular values found
}

// Error implements error.
func (w *RankDeficiencyWarning) Error() string {
	return fmt.Sprintf("embed: rank deficient: requested %d dimensions, only %d non-zero singular values",
		w.Requested, w.Effective)
}
