// SPDX-License-Identifier: MIT

// Package network - degree views and Laplacian forms.
//
// Purpose:
//   - Derive D and the Laplacian variants used by spectral embedding as pure
//     functions of the adjacency (fresh allocations, no shared state).
//
// Directed policy:
//   - Row sums are out-degrees, column sums in-degrees.
//   - Normalized forms scale rows by out-degree and columns by in-degree:
//     D_out^{-1/2} A D_in^{-1/2}. The combinatorial form uses D_out − A.
//
// Isolated nodes:
//   - A zero degree contributes a zero scale factor (0^{-1/2} := 0), so isolated
//     rows/columns stay zero instead of producing Inf.

package network

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// LaplacianForm selects which Laplacian variant to build.
type LaplacianForm int

const (
	// Combinatorial is L = D − A (symmetric PSD for undirected inputs).
	Combinatorial LaplacianForm = iota
	// DAD is the normalized adjacency D^{-1/2} A D^{-1/2}.
	DAD
	// IDAD is I − D^{-1/2} A D^{-1/2} (the symmetric normalized Laplacian).
	IDAD
	// RDAD is the regularized form (D+τI)^{-1/2} A (D+τI)^{-1/2}, τ = mean degree.
	RDAD
)

// String returns the canonical name used by ParseLaplacianForm.
func (f LaplacianForm) String() string {
	switch f {
	case Combinatorial:
		return "L"
	case DAD:
		return "DAD"
	case IDAD:
		return "I-DAD"
	case RDAD:
		return "R-DAD"
	default:
		return fmt.Sprintf("LaplacianForm(%d)", int(f))
	}
}

// ParseLaplacianForm maps "L", "DAD", "I-DAD" and "R-DAD" (case-insensitive)
// to a LaplacianForm.
func ParseLaplacianForm(s string) (LaplacianForm, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L", "D-A", "COMBINATORIAL":
		return Combinatorial, nil
	case "DAD":
		return DAD, nil
	case "I-DAD", "IDAD":
		return IDAD, nil
	case "R-DAD", "RDAD":
		return RDAD, nil
	}

	return 0, fmt.Errorf("ParseLaplacianForm(%q): %w", s, ErrUnknownForm)
}

// Degrees returns out-degrees (row sums). For undirected networks these are
// the usual degrees. Weighted networks yield weighted degrees.
// Complexity: O(n²).
func (g *Network) Degrees() []float64 {
	d := make([]float64, g.n)
	for i := 0; i < g.n; i++ {
		d[i] = floats.Sum(g.adj.RawRowView(i))
	}

	return d
}

// InDegrees returns column sums (equal to Degrees for undirected networks).
// Complexity: O(n²).
func (g *Network) InDegrees() []float64 {
	d := make([]float64, g.n)
	for i := 0; i < g.n; i++ {
		row := g.adj.RawRowView(i)
		for j, v := range row {
			d[j] += v
		}
	}

	return d
}

// DegreeMatrix returns diag(Degrees()).
func (g *Network) DegreeMatrix() *mat.DiagDense {
	return mat.NewDiagDense(g.n, g.Degrees())
}

// invSqrt maps each degree to d^{-1/2}, with 0 for zero degrees.
func invSqrt(d []float64, shift float64) []float64 {
	out := make([]float64, len(d))
	for i, v := range d {
		if v+shift > 0 {
			out[i] = 1 / math.Sqrt(v+shift)
		}
	}

	return out
}

// Laplacian builds the requested Laplacian form as a fresh n×n matrix.
//
// Implementation:
//   - Combinatorial: L[i,j] = −A[i,j] off-diagonal, L[i,i] = d_i − A[i,i].
//   - DAD family: scale A[i,j] by r_i·c_j where r/c are inverse square roots
//     of (shifted) out/in degrees; IDAD subtracts from the identity.
//
// Complexity: O(n²).
func (g *Network) Laplacian(form LaplacianForm) (*mat.Dense, error) {
	n := g.n
	out := mat.NewDense(n, n, nil)
	outDeg := g.Degrees()

	switch form {
	case Combinatorial:
		out.Scale(-1, g.adj)
		for i := 0; i < n; i++ {
			out.Set(i, i, outDeg[i]+out.At(i, i))
		}

		return out, nil

	case DAD, IDAD, RDAD:
		inDeg := outDeg
		if g.opts.directed {
			inDeg = g.InDegrees()
		}
		var tau float64
		if form == RDAD {
			tau = floats.Sum(outDeg) / float64(n)
		}
		r := invSqrt(outDeg, tau)
		c := invSqrt(inDeg, tau)
		out.Apply(func(i, j int, v float64) float64 {
			return r[i] * v * c[j]
		}, g.adj)
		if form == IDAD {
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					v := -out.At(i, j)
					if i == j {
						v += 1
					}
					out.Set(i, j, v)
				}
			}
		}

		return out, nil
	}

	return nil, fmt.Errorf("Laplacian(%v): %w", form, ErrUnknownForm)
}
