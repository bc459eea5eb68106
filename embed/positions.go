// SPDX-License-Identifier: MIT

package embed

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// LatentPositions is an n×d embedding. For undirected input only the out
// positions exist and In returns the same values; directed input carries
// separate in positions.
//
// LatentPositions implements mat.Matrix over its out positions, so it can be
// handed straight to nominate.Nominator.Fit or another decomposition.
type LatentPositions struct {
	out      *mat.Dense
	in       *mat.Dense // nil when undirected
	values   []float64
	warnings []error
}

var _ mat.Matrix = (*LatentPositions)(nil)

// NewLatentPositions wraps externally obtained positions. in may be nil for
// undirected positions; otherwise it must have the same shape as out.
// Both matrices are copied.
func NewLatentPositions(out, in mat.Matrix) (*LatentPositions, error) {
	if out == nil {
		return nil, fmt.Errorf("NewLatentPositions: %w", ErrNilInput)
	}
	lp := &LatentPositions{out: mat.DenseCopyOf(out)}
	if in != nil {
		ro, co := out.Dims()
		ri, ci := in.Dims()
		if ro != ri || co != ci {
			return nil, fmt.Errorf("NewLatentPositions: out %dx%d vs in %dx%d: %w", ro, co, ri, ci, ErrSizeMismatch)
		}
		lp.in = mat.DenseCopyOf(in)
	}

	return lp, nil
}

// Dims returns (n, d).
func (lp *LatentPositions) Dims() (int, int) { return lp.out.Dims() }

// At returns out position (i, j).
func (lp *LatentPositions) At(i, j int) float64 { return lp.out.At(i, j) }

// T returns the transpose of the out positions.
func (lp *LatentPositions) T() mat.Matrix { return mat.Transpose{Matrix: lp} }

// N returns the number of embedded nodes.
func (lp *LatentPositions) N() int {
	n, _ := lp.out.Dims()
	return n
}

// Dimension returns d.
func (lp *LatentPositions) Dimension() int {
	_, d := lp.out.Dims()
	return d
}

// Directed reports whether separate in positions exist.
func (lp *LatentPositions) Directed() bool { return lp.in != nil }

// Out returns a copy of the out (or only) positions.
func (lp *LatentPositions) Out() *mat.Dense { return mat.DenseCopyOf(lp.out) }

// In returns a copy of the in positions; for undirected embeddings that is a
// copy of the out positions.
func (lp *LatentPositions) In() *mat.Dense {
	if lp.in == nil {
		return mat.DenseCopyOf(lp.out)
	}

	return mat.DenseCopyOf(lp.in)
}

// Values returns the singular values the embedding was scaled by.
func (lp *LatentPositions) Values() []float64 { return append([]float64(nil), lp.values...) }

// Warnings returns the non-fatal conditions met while embedding, such as
// *RankDeficiencyWarning.
func (lp *LatentPositions) Warnings() []error { return append([]error(nil), lp.warnings...) }

// scaleColumns returns m·diag(√s).
func scaleColumns(m *mat.Dense, s []float64) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, j int, v float64) float64 { return v * math.Sqrt(s[j]) }, m)

	return &out
}

// normalizeRows scales every non-zero row of m to unit L2 norm in place.
func normalizeRows(m *mat.Dense) {
	r, _ := m.Dims()
	for i := 0; i < r; i++ {
		row := m.RawRowView(i)
		if norm := floats.Norm(row, 2); norm > 0 {
			floats.Scale(1/norm, row)
		}
	}
}
