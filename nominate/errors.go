// SPDX-License-Identifier: MIT

package nominate

import "errors"

var (
	// ErrNotFit is returned when predicting before Fit.
	ErrNotFit = errors.New("nominate: nominator is not fit")

	// ErrEmptyInput is returned when Fit receives a nil or empty matrix.
	ErrEmptyInput = errors.New("nominate: empty latent positions")

	// ErrEmptySeedSet is returned for an empty seed set.
	ErrEmptySeedSet = errors.New("nominate: empty seed set")

	// ErrSeedOutOfRange signals a seed index outside [0,n).
	ErrSeedOutOfRange = errors.New("nominate: seed index out of range")

	// ErrInvalidMetric signals an unknown or nil distance metric.
	ErrInvalidMetric = errors.New("nominate: invalid metric")

	// ErrInvalidK signals k < 1 in PredictPerSeed.
	ErrInvalidK = errors.New("nominate: k must be >= 1")
)
