// SPDX-License-Identifier: MIT

// Package match - FAQ relaxation.
//
// Notation: after moving seeds to the front of both node orders, A and B
// split into blocks [A11 A12; A21 A22] with A11 the s×s seed block. For the
// m×m unseeded doubly-stochastic block P the objective is
//
//	g(P) = Σ A11⊙B11 + Σ C⊙P + Σ A22⊙(P·B22·Pᵀ),   C = A21·B21ᵀ + A12ᵀ·B12,
//
// with gradient ∇g(P) = C + A22·P·B22ᵀ + A22ᵀ·P·B22. Along D = Q − P the
// objective is an exact quadratic in t, so the line search needs only its two
// coefficients.

package match

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphstats/assignment"
	"github.com/katalvlaran/graphstats/internal/rng"
)

const (
	sinkhornMaxIter = 1000
	sinkhornTol     = 1e-10
)

// SeedPair is a known correspondence: node A of the first network matches
// node B of the second.
type SeedPair struct {
	A int
	B int
}

// Result is the outcome of Match.
type Result struct {
	// Perm maps nodes of A to nodes of B: node i of A matches node Perm[i] of B.
	Perm []int

	// Score is the edge overlap Σ A[i,j]·B[Perm[i],Perm[j]].
	Score float64

	// Disagreement is ‖A − B_Perm‖²_F.
	Disagreement float64

	// Iterations and Converged describe the winning restart.
	Iterations int
	Converged  bool

	// Objective is the relaxed objective −tr(Aᵀ·P·B·Pᵀ) of the winning restart,
	// starting point first; it is non-increasing.
	Objective []float64

	// Restart is the index of the winning restart.
	Restart int
}

// Matcher runs seeded graph matching with fixed options. A Matcher holds no
// mutable state and may be shared.
type Matcher struct {
	opts options
}

// New returns a Matcher.
func New(opts ...Option) *Matcher {
	return &Matcher{opts: gatherOptions(opts...)}
}

// Match aligns b to a. seeds fix known correspondences and may be empty.
//
// Errors: ErrShapeMismatch, ErrNaNInf, ErrInfeasibleSeed.
func (mt *Matcher) Match(a, b mat.Matrix, seeds []SeedPair) (*Result, error) {
	n, err := checkInputs(a, b)
	if err != nil {
		return nil, err
	}
	orderA, orderB, err := seedOrder(n, seeds)
	if err != nil {
		return nil, err
	}
	s := len(seeds)
	pr := newProblem(reorder(a, orderA), reorder(b, orderB), s)

	if pr.m == 0 {
		res := assemble(a, b, orderA, orderB, s, nil)
		res.Converged = true
		res.Objective = []float64{-pr.constant}

		return res, nil
	}

	o := mt.opts
	base := rng.FromSeed(o.seed)
	var best *Result
	for r := 0; r < o.restarts; r++ {
		var start *mat.Dense
		if r == 0 && o.init == Barycenter {
			start = barycenter(pr.m)
		} else {
			start = randomStart(pr.m, rng.Derive(base, uint64(r)))
		}

		p, iters, converged, hist, err := mt.relax(pr, start, r)
		if err != nil {
			return nil, err
		}
		cols, _, err := assignment.Solve(p, true)
		if err != nil {
			return nil, fmt.Errorf("Match: projection: %w", err)
		}

		res := assemble(a, b, orderA, orderB, s, cols)
		res.Iterations, res.Converged, res.Objective, res.Restart = iters, converged, hist, r
		o.logger.Debug().
			Int("restart", r).
			Int("iterations", iters).
			Bool("converged", converged).
			Float64("score", res.Score).
			Msg("restart finished")
		if best == nil || res.Score > best.Score {
			best = res
		}
	}

	return best, nil
}

// relax runs the Frank–Wolfe iterations from p.
func (mt *Matcher) relax(pr *problem, p *mat.Dense, restart int) (*mat.Dense, int, bool, []float64, error) {
	o := mt.opts
	m := pr.m
	scale := math.Sqrt(float64(m))
	hist := []float64{-pr.objective(p)}
	q := mat.NewDense(m, m, nil)
	var d mat.Dense

	for it := 1; it <= o.maxIter; it++ {
		cols, _, err := assignment.Solve(pr.gradient(p), true)
		if err != nil {
			return nil, 0, false, nil, fmt.Errorf("Match: restart %d iteration %d: %w", restart, it, err)
		}
		q.Zero()
		for i, j := range cols {
			q.Set(i, j, 1)
		}
		d.Sub(q, p)

		// f(t) = −g(P + tD) = f(0) + bt + at²
		a := -pr.quad(&d, &d)
		b := -(frobDot(pr.c, &d) + pr.quad(p, &d) + pr.quad(&d, p))
		t := math.Max(0, math.Min(1, o.lineSearch.Step(a, b)))

		next := mat.NewDense(m, m, nil)
		next.Scale(t, &d)
		next.Add(p, next)
		step := t * mat.Norm(&d, 2) / scale
		p = next
		hist = append(hist, -pr.objective(p))

		o.logger.Debug().
			Int("restart", restart).
			Int("iteration", it).
			Float64("step", t).
			Float64("delta", step).
			Float64("objective", hist[len(hist)-1]).
			Msg("faq iteration")

		if step < o.tol {
			return p, it, true, hist, nil
		}
	}

	return p, o.maxIter, false, hist, nil
}

// problem holds the seed-reduced quadratic.
type problem struct {
	a22, b22 *mat.Dense
	c        *mat.Dense // linear coefficient from seed blocks
	constant float64    // Σ A11⊙B11
	m        int
}

func newProblem(ap, bp *mat.Dense, s int) *problem {
	n, _ := ap.Dims()
	m := n - s
	pr := &problem{m: m, c: mat.NewDense(max(m, 1), max(m, 1), nil)}
	if m > 0 {
		pr.a22 = mat.DenseCopyOf(ap.Slice(s, n, s, n))
		pr.b22 = mat.DenseCopyOf(bp.Slice(s, n, s, n))
	}
	if s == 0 {
		return pr
	}
	pr.constant = frobDot(ap.Slice(0, s, 0, s), bp.Slice(0, s, 0, s))
	if m == 0 {
		return pr
	}
	var t1, t2 mat.Dense
	t1.Mul(ap.Slice(s, n, 0, s), bp.Slice(s, n, 0, s).T())
	t2.Mul(ap.Slice(0, s, s, n).T(), bp.Slice(0, s, s, n))
	pr.c.Add(&t1, &t2)

	return pr
}

// quad returns Σ A22⊙(X·B22·Yᵀ).
func (pr *problem) quad(x, y mat.Matrix) float64 {
	var xb, xby mat.Dense
	xb.Mul(x, pr.b22)
	xby.Mul(&xb, y.T())

	return frobDot(pr.a22, &xby)
}

// objective returns g(P).
func (pr *problem) objective(p *mat.Dense) float64 {
	return pr.constant + frobDot(pr.c, p) + pr.quad(p, p)
}

// gradient returns C + A22·P·B22ᵀ + A22ᵀ·P·B22.
func (pr *problem) gradient(p *mat.Dense) *mat.Dense {
	var ap, apb, atp, atpb mat.Dense
	ap.Mul(pr.a22, p)
	apb.Mul(&ap, pr.b22.T())
	atp.Mul(pr.a22.T(), p)
	atpb.Mul(&atp, pr.b22)

	g := mat.DenseCopyOf(pr.c)
	g.Add(g, &apb)
	g.Add(g, &atpb)

	return g
}

// frobDot returns Σ X⊙Y.
func frobDot(x, y mat.Matrix) float64 {
	r, c := x.Dims()
	var s float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			s += x.At(i, j) * y.At(i, j)
		}
	}

	return s
}

// barycenter returns J = 11ᵀ/m.
func barycenter(m int) *mat.Dense {
	p := mat.NewDense(m, m, nil)
	v := 1 / float64(m)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			p.Set(i, j, v)
		}
	}

	return p
}

// randomStart returns (J + K)/2 with K a Sinkhorn-balanced uniform matrix.
func randomStart(m int, rnd *rand.Rand) *mat.Dense {
	k := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			k.Set(i, j, rnd.Float64()+1e-3)
		}
	}
	sinkhorn(k)
	k.Add(k, barycenter(m))
	k.Scale(0.5, k)

	return k
}

// sinkhorn alternately normalizes rows and columns of a positive matrix
// in place until it is doubly stochastic within sinkhornTol.
func sinkhorn(k *mat.Dense) {
	m, _ := k.Dims()
	col := make([]float64, m)
	for it := 0; it < sinkhornMaxIter; it++ {
		for i := 0; i < m; i++ {
			row := k.RawRowView(i)
			floats.Scale(1/floats.Sum(row), row)
		}
		worst := 0.0
		for j := 0; j < m; j++ {
			mat.Col(col, j, k)
			sum := floats.Sum(col)
			worst = math.Max(worst, math.Abs(sum-1))
			for i := 0; i < m; i++ {
				k.Set(i, j, k.At(i, j)/sum)
			}
		}
		if worst < sinkhornTol {
			return
		}
	}
}

// assemble maps the unseeded assignment cols back to original node indices
// and scores the permutation against the original matrices.
func assemble(a, b mat.Matrix, orderA, orderB []int, s int, cols []int) *Result {
	n := len(orderA)
	perm := make([]int, n)
	for i := 0; i < n; i++ {
		j := i
		if i >= s {
			j = s + cols[i-s]
		}
		perm[orderA[i]] = orderB[j]
	}
	score, dis := scorePermutation(a, b, perm)

	return &Result{Perm: perm, Score: score, Disagreement: dis}
}

// scorePermutation returns Σ A⊙B_perm and ‖A − B_perm‖²_F.
func scorePermutation(a, b mat.Matrix, perm []int) (float64, float64) {
	var score, dis float64
	for i := range perm {
		for j := range perm {
			x, y := a.At(i, j), b.At(perm[i], perm[j])
			score += x * y
			dis += (x - y) * (x - y)
		}
	}

	return score, dis
}

// reorder returns M[order][:, order] as a fresh dense matrix.
func reorder(m mat.Matrix, order []int) *mat.Dense {
	n := len(order)
	out := mat.NewDense(n, n, nil)
	for i, oi := range order {
		for j, oj := range order {
			out.Set(i, j, m.At(oi, oj))
		}
	}

	return out
}

// checkInputs validates shapes and finiteness, returning n.
func checkInputs(a, b mat.Matrix) (int, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("Match: nil input: %w", ErrShapeMismatch)
	}
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ra != ca || rb != cb || ra != rb || ra == 0 {
		return 0, fmt.Errorf("Match: A is %dx%d, B is %dx%d: %w", ra, ca, rb, cb, ErrShapeMismatch)
	}
	for _, m := range []mat.Matrix{a, b} {
		for i := 0; i < ra; i++ {
			for j := 0; j < ra; j++ {
				if v := m.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
					return 0, fmt.Errorf("Match: entry (%d,%d)=%v: %w", i, j, v, ErrNaNInf)
				}
			}
		}
	}

	return ra, nil
}

// seedOrder validates seeds and returns node orders with seeds first (in the
// given order) followed by the remaining nodes ascending.
func seedOrder(n int, seeds []SeedPair) ([]int, []int, error) {
	usedA := make([]bool, n)
	usedB := make([]bool, n)
	orderA := make([]int, 0, n)
	orderB := make([]int, 0, n)
	for k, sp := range seeds {
		if sp.A < 0 || sp.A >= n || sp.B < 0 || sp.B >= n {
			return nil, nil, fmt.Errorf("Match: seed %d (%d,%d) outside [0,%d): %w", k, sp.A, sp.B, n, ErrInfeasibleSeed)
		}
		if usedA[sp.A] || usedB[sp.B] {
			return nil, nil, fmt.Errorf("Match: seed %d (%d,%d) reuses a node: %w", k, sp.A, sp.B, ErrInfeasibleSeed)
		}
		usedA[sp.A], usedB[sp.B] = true, true
		orderA = append(orderA, sp.A)
		orderB = append(orderB, sp.B)
	}
	for i := 0; i < n; i++ {
		if !usedA[i] {
			orderA = append(orderA, i)
		}
		if !usedB[i] {
			orderB = append(orderB, i)
		}
	}

	return orderA, orderB, nil
}
