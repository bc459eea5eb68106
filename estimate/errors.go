// SPDX-License-Identifier: MIT

package estimate

import "errors"

var (
	// ErrEmptyNetwork is returned for a nil network or one with fewer than two nodes.
	ErrEmptyNetwork = errors.New("estimate: network has fewer than two nodes")

	// ErrLabelMismatch signals a label vector of the wrong length, K < 1, or a
	// label outside [1,K].
	ErrLabelMismatch = errors.New("estimate: labels do not match network")

	// ErrNilPositions is returned when RDPG receives no latent positions.
	ErrNilPositions = errors.New("estimate: nil latent positions")
)
