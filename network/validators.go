// SPDX-License-Identifier: MIT
// Package: network
//
// Purpose:
//   - Provide a single, canonical source of truth for adjacency validation.
//   - Keep builders minimal by delegating shape/finite/sign/symmetry checks here.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry check runs O(n²) on the strict upper triangle only.
//
// Note:
//   - Validators report the first offending coordinate in fixed i→j order, so the
//     same input always produces the same message.

package network

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying sentinel with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare ensures m is non-empty and square.
//
// Errors: ErrEmpty on 0 rows, ErrShape (with r×c) when rows != cols.
// Complexity: O(1).
func ValidateSquare(m mat.Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrEmpty)
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return validatorErrorf("ValidateSquare", ErrEmpty)
	}
	if r != c {
		return fmt.Errorf("ValidateSquare: got %dx%d: %w", r, c, ErrShape)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf entries, reporting the first (i,j).
//
// Complexity: O(r·c).
func ValidateFinite(m mat.Matrix) error {
	r, c := m.Dims()
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("ValidateFinite: entry (%d,%d)=%v: %w", i, j, v, ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateEntries checks the sign policy (non-negative) and, for unweighted
// networks, the binary policy (entries in {0,1}). Diagonal entries are skipped
// when skipDiag is set because loopless builders zero them afterwards.
//
// Complexity: O(n²).
func ValidateEntries(m mat.Matrix, weighted, skipDiag bool) error {
	r, c := m.Dims()
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if skipDiag && i == j {
				continue
			}
			v = m.At(i, j)
			if v < 0 {
				return fmt.Errorf("ValidateEntries: entry (%d,%d)=%g: %w", i, j, v, ErrNegativeWeight)
			}
			if !weighted && v != 0 && v != 1 {
				return fmt.Errorf("ValidateEntries: entry (%d,%d)=%g: %w", i, j, v, ErrNonBinary)
			}
		}
	}

	return nil
}

// ValidateSymmetric checks |A[i,j] − A[j,i]| ≤ eps for all i<j.
//
// Inputs: square matrix m, tolerance eps ≥ 0.
// Complexity: O(n²). Space: O(1).
func ValidateSymmetric(m mat.Matrix, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	n, _ := m.Dims()
	var aij, aji float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij = m.At(i, j)
			aji = m.At(j, i)
			if math.Abs(aij-aji) > eps {
				return fmt.Errorf("ValidateSymmetric: (%d,%d)=%g vs (%d,%d)=%g: %w",
					i, j, aij, j, i, aji, ErrAsymmetry)
			}
		}
	}

	return nil
}
