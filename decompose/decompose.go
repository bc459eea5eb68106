// SPDX-License-Identifier: MIT

// Package decompose - truncated decomposition kernels.
//
// Implementation overview:
//   - Stage 1 (Validate): non-empty, finite, 0 ≤ d ≤ min(r,c).
//   - Stage 2 (Factorize): pick the backend (Auto resolves on symmetry) and
//     compute the spectrum.
//   - Stage 3 (Select): fixed d or Selector over the full spectrum.
//   - Stage 4 (Finalize): truncate, sign-normalize, zero-pad rank-deficient tails.
//
// Determinism:
//   - Column signs are normalized so the largest-magnitude entry of every U
//     column is positive (V columns flip with them), so repeated calls and
//     different backends agree on orientation.

package decompose

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphstats/internal/rng"
)

// machEps is float64 machine epsilon, used for the rank tolerance n·ε·σ₁.
const machEps = 2.220446049250313e-16

// Result holds a truncated decomposition M ≈ U·diag(S)·Vᵀ.
type Result struct {
	U *mat.Dense // rows(M)×d left singular (or eigen) vectors
	S []float64  // d singular values, descending
	V *mat.Dense // cols(M)×d right singular vectors

	// Effective counts the non-zero values in S; Effective < len(S) means the
	// trailing components were zero-padded.
	Effective int

	// Spectrum is the full value sequence the Selector saw; nil for Randomized.
	Spectrum []float64

	// Algorithm is the backend that actually ran (Auto resolved).
	Algorithm Algorithm
}

// Rank returns the number of kept components d.
func (r *Result) Rank() int { return len(r.S) }

// Reconstruct returns U·diag(S)·Vᵀ.
// Complexity: O(r·c·d).
func (r *Result) Reconstruct() *mat.Dense {
	var us mat.Dense
	us.Apply(func(_, j int, v float64) float64 { return v * r.S[j] }, r.U)
	var out mat.Dense
	out.Mul(&us, r.V.T())

	return &out
}

// Decompose computes the top-d decomposition of m. With no fixed rank the
// configured Selector chooses d from the full spectrum.
//
// Errors:
//   - ErrEmpty for nil/zero-sized input.
//   - ErrNumerical for NaN/Inf entries, non-symmetric input to Eigen, or
//     factorization failure.
//   - ErrDimension when the fixed or selected d is outside [1, min(r,c)].
func Decompose(m mat.Matrix, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	if m == nil {
		return nil, fmt.Errorf("Decompose: %w", ErrEmpty)
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("Decompose: %dx%d: %w", r, c, ErrEmpty)
	}
	if err := checkFinite(m); err != nil {
		return nil, err
	}
	k := min(r, c)
	if o.rank > k {
		return nil, fmt.Errorf("Decompose: rank %d exceeds min(%d,%d)=%d: %w", o.rank, r, c, k, ErrDimension)
	}

	sym := r == c && isSymmetric(m, o.symTol)
	algo := o.algo
	if algo == Auto {
		algo = Full
		if sym {
			algo = Eigen
		}
	}
	if algo == Randomized && o.rank == 0 {
		// dimension selection needs the whole spectrum
		o.logger.Debug().Msg("randomized backend needs a fixed rank; falling back to full spectrum")
		algo = Full
		if sym {
			algo = Eigen
		}
	}

	var (
		res *Result
		err error
	)
	switch algo {
	case Eigen:
		if !sym {
			return nil, fmt.Errorf("Decompose: eigen backend on non-symmetric %dx%d input: %w", r, c, ErrNumerical)
		}
		res, err = eigenSym(m)
	case Full:
		res, err = thinSVD(m)
	case Randomized:
		res, err = randomizedSVD(m, o.rank, o)
	default:
		return nil, fmt.Errorf("Decompose: %v: %w", algo, ErrUnknownAlgorithm)
	}
	if err != nil {
		return nil, err
	}
	res.Algorithm = algo

	d := o.rank
	if d == 0 {
		d, err = o.selector.Select(res.Spectrum)
		if err != nil {
			return nil, fmt.Errorf("Decompose: select: %w", err)
		}
		if d < 1 || d > len(res.Spectrum) {
			return nil, fmt.Errorf("Decompose: selector chose %d of %d: %w", d, len(res.Spectrum), ErrDimension)
		}
	}

	res.truncate(d)
	res.flipSigns()
	res.padDeficient(float64(max(r, c)) * machEps)

	o.logger.Debug().
		Str("algorithm", algo.String()).
		Int("rows", r).
		Int("cols", c).
		Int("rank", d).
		Int("effective", res.Effective).
		Msg("decomposed")

	return res, nil
}

// Values returns the full singular value spectrum of m, descending.
// Complexity: O(n³).
func Values(m mat.Matrix) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("Values: %w", ErrEmpty)
	}
	if r, c := m.Dims(); r == 0 || c == 0 {
		return nil, fmt.Errorf("Values: %dx%d: %w", r, c, ErrEmpty)
	}
	if err := checkFinite(m); err != nil {
		return nil, err
	}
	var svd mat.SVD
	if !svd.Factorize(m, mat.SVDNone) {
		return nil, fmt.Errorf("Values: SVD did not converge: %w", ErrNumerical)
	}

	return svd.Values(nil), nil
}

// checkFinite rejects NaN/±Inf, reporting the first offending coordinate.
func checkFinite(m mat.Matrix) error {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("Decompose: entry (%d,%d)=%v: %w", i, j, v, ErrNumerical)
			}
		}
	}

	return nil
}

// isSymmetric reports |m[i,j] − m[j,i]| ≤ tol for every i<j.
func isSymmetric(m mat.Matrix, tol float64) bool {
	n, _ := m.Dims()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.At(i, j)-m.At(j, i)) > tol {
				return false
			}
		}
	}

	return true
}

// eigenSym factorizes a symmetric matrix and reorders eigenpairs by |λ|
// descending: S = |λ|, U = vectors, V = vectors·sign(λ).
// Complexity: O(n³).
func eigenSym(m mat.Matrix) (*Result, error) {
	n, _ := m.Dims()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, (m.At(i, j)+m.At(j, i))/2)
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return nil, fmt.Errorf("Decompose: EigenSym did not converge: %w", ErrNumerical)
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return math.Abs(vals[order[a]]) > math.Abs(vals[order[b]])
	})

	u := mat.NewDense(n, n, nil)
	v := mat.NewDense(n, n, nil)
	s := make([]float64, n)
	for k, idx := range order {
		lambda := vals[idx]
		s[k] = math.Abs(lambda)
		sign := 1.0
		if lambda < 0 {
			sign = -1
		}
		for i := 0; i < n; i++ {
			x := vecs.At(i, idx)
			u.Set(i, k, x)
			v.Set(i, k, sign*x)
		}
	}

	return &Result{U: u, S: s, V: v, Spectrum: append([]float64(nil), s...)}, nil
}

// thinSVD computes the thin SVD; gonum returns values in descending order.
// Complexity: O(r·c·min(r,c)).
func thinSVD(m mat.Matrix) (*Result, error) {
	var svd mat.SVD
	if !svd.Factorize(m, mat.SVDThin) {
		return nil, fmt.Errorf("Decompose: SVD did not converge: %w", ErrNumerical)
	}
	s := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	return &Result{U: &u, S: s, V: &v, Spectrum: append([]float64(nil), s...)}, nil
}

// randomizedSVD is the Halko–Martinsson–Tropp range finder: sample the range
// of m with a Gaussian test matrix, refine with q power iterations
// (re-orthonormalized each pass), then take the small SVD of Qᵀm.
// Complexity: O(r·c·k·(q+1)) with k = d + oversample.
func randomizedSVD(m mat.Matrix, d int, o options) (*Result, error) {
	r, c := m.Dims()
	k := min(d+o.oversample, min(r, c))
	rnd := rng.FromSeed(o.seed)

	omega := mat.NewDense(c, k, nil)
	for i := 0; i < c; i++ {
		for j := 0; j < k; j++ {
			omega.Set(i, j, rnd.NormFloat64())
		}
	}

	var y mat.Dense
	y.Mul(m, omega)
	q := orthonormalColumns(&y)
	for it := 0; it < o.power; it++ {
		var z mat.Dense
		z.Mul(m.T(), q)
		qz := orthonormalColumns(&z)
		var next mat.Dense
		next.Mul(m, qz)
		q = orthonormalColumns(&next)
	}

	var b mat.Dense
	b.Mul(q.T(), m)
	var svd mat.SVD
	if !svd.Factorize(&b, mat.SVDThin) {
		return nil, fmt.Errorf("Decompose: randomized SVD did not converge: %w", ErrNumerical)
	}
	s := svd.Values(nil)
	var ub, v mat.Dense
	svd.UTo(&ub)
	svd.VTo(&v)
	var u mat.Dense
	u.Mul(q, &ub)

	return &Result{U: &u, S: s, V: &v}, nil
}

// orthonormalColumns returns an orthonormal basis (r×c) for the columns of a
// (r ≥ c) via Householder QR.
func orthonormalColumns(a *mat.Dense) *mat.Dense {
	r, c := a.Dims()
	var qr mat.QR
	qr.Factorize(a)
	var q mat.Dense
	qr.QTo(&q)

	return mat.DenseCopyOf(q.Slice(0, r, 0, c))
}

// truncate keeps the first d components (copying, so no aliasing with the
// full factorization survives).
func (r *Result) truncate(d int) {
	rows, _ := r.U.Dims()
	cols, _ := r.V.Dims()
	r.U = mat.DenseCopyOf(r.U.Slice(0, rows, 0, d))
	r.V = mat.DenseCopyOf(r.V.Slice(0, cols, 0, d))
	r.S = append([]float64(nil), r.S[:d]...)
}

// flipSigns makes the largest-magnitude entry of each U column positive,
// flipping the matching V column so U·diag(S)·Vᵀ is unchanged.
func (r *Result) flipSigns() {
	rows, d := r.U.Dims()
	cols, _ := r.V.Dims()
	for k := 0; k < d; k++ {
		best, bestAbs := 0.0, -1.0
		for i := 0; i < rows; i++ {
			if v := r.U.At(i, k); math.Abs(v) > bestAbs {
				best, bestAbs = v, math.Abs(v)
			}
		}
		if best >= 0 {
			continue
		}
		for i := 0; i < rows; i++ {
			r.U.Set(i, k, -r.U.At(i, k))
		}
		for i := 0; i < cols; i++ {
			r.V.Set(i, k, -r.V.At(i, k))
		}
	}
}

// padDeficient zeroes every component whose value is ≤ relTol·σ₁ and records
// how many survived in Effective. Values are descending, so the zeroed ones
// form a tail.
func (r *Result) padDeficient(relTol float64) {
	rows, d := r.U.Dims()
	cols, _ := r.V.Dims()
	threshold := 0.0
	if d > 0 {
		threshold = relTol * r.S[0]
	}
	eff := 0
	for eff < d && r.S[eff] > threshold {
		eff++
	}
	r.Effective = eff
	for k := eff; k < d; k++ {
		r.S[k] = 0
		for i := 0; i < rows; i++ {
			r.U.Set(i, k, 0)
		}
		for i := 0; i < cols; i++ {
			r.V.Set(i, k, 0)
		}
	}
}
