// SPDX-License-Identifier: MIT

// Package simulate - samplers.
//
// Every model reduces to a probability function prob(i,j) over node pairs;
// sampleAdjacency runs the Bernoulli trials in the canonical order and
// network.New validates the result.
//
// Complexity: O(n²) trials per network.

package simulate

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphstats/internal/rng"
	"github.com/katalvlaran/graphstats/network"
)

const (
	methodER            = "ER"
	methodSBM           = "SBM"
	methodRDPG          = "RDPG"
	methodCorrelatedER  = "CorrelatedER"
	methodCorrelatedSBM = "CorrelatedSBM"
	minVertices         = 1
	probMin             = 0.0
	probMax             = 1.0
)

// probFunc returns the edge probability of the ordered pair (i,j).
type probFunc func(i, j int) float64

// forEachPair visits the admissible pairs in canonical order:
// i ascending, then j ascending (j > i when undirected; i == j only with loops).
func forEachPair(n int, o options, visit func(i, j int)) {
	for i := 0; i < n; i++ {
		start := 0
		if !o.directed {
			start = i
		}
		for j := start; j < n; j++ {
			if i == j && !o.loops {
				continue
			}
			visit(i, j)
		}
	}
}

// setEdge marks (i,j), mirroring it for undirected networks.
func setEdge(a *mat.Dense, i, j int, directed bool) {
	a.Set(i, j, 1)
	if !directed {
		a.Set(j, i, 1)
	}
}

// sampleAdjacency draws one network from prob.
func sampleAdjacency(n int, prob probFunc, o options, rnd *rand.Rand) (*network.Network, error) {
	a := mat.NewDense(n, n, nil)
	forEachPair(n, o, func(i, j int) {
		if rnd.Float64() < prob(i, j) {
			setEdge(a, i, j, o.directed)
		}
	})

	return network.New(a, o.networkOptions()...)
}

// sampleCorrelated draws a pair with marginals prob and edge correlation rho:
// A1 ~ Bern(p); A2 | A1=1 ~ Bern(p + ρ(1−p)); A2 | A1=0 ~ Bern(p(1−ρ)).
func sampleCorrelated(n int, prob probFunc, rho float64, o options, rnd *rand.Rand) (*network.Network, *network.Network, error) {
	a1 := mat.NewDense(n, n, nil)
	a2 := mat.NewDense(n, n, nil)
	forEachPair(n, o, func(i, j int) {
		p := prob(i, j)
		q := p * (1 - rho)
		if rnd.Float64() < p {
			setEdge(a1, i, j, o.directed)
			q = p + rho*(1-p)
		}
		if rnd.Float64() < q {
			setEdge(a2, i, j, o.directed)
		}
	})
	g1, err := network.New(a1, o.networkOptions()...)
	if err != nil {
		return nil, nil, err
	}
	g2, err := network.New(a2, o.networkOptions()...)
	if err != nil {
		return nil, nil, err
	}

	return g1, g2, nil
}

func checkProbability(method string, p float64) error {
	if math.IsNaN(p) || p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}

	return nil
}

func checkCorrelation(method string, rho float64) error {
	if math.IsNaN(rho) || rho < 0 || rho > 1 {
		return fmt.Errorf("%s: rho=%.6f not in [0,1]: %w", method, rho, ErrInvalidCorrelation)
	}

	return nil
}

// ER samples an Erdős–Rényi network G(n, p).
func ER(n int, p float64, opts ...Option) (*network.Network, error) {
	if n < minVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodER, n, minVertices, ErrTooFewVertices)
	}
	if err := checkProbability(methodER, p); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	g, err := sampleAdjacency(n, func(int, int) float64 { return p }, o, rng.FromSeed(o.seed))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodER, err)
	}

	return g, nil
}

// blockModel validates sizes and B and returns 1-based labels plus the pair
// probability function.
func blockModel(method string, sizes []int, b mat.Matrix, directed bool) ([]int, probFunc, error) {
	k := len(sizes)
	total := 0
	for i, s := range sizes {
		if s < 0 {
			return nil, nil, fmt.Errorf("%s: sizes[%d]=%d: %w", method, i, s, ErrTooFewVertices)
		}
		total += s
	}
	if total < minVertices {
		return nil, nil, fmt.Errorf("%s: n=%d < min=%d: %w", method, total, minVertices, ErrTooFewVertices)
	}
	if b == nil {
		return nil, nil, fmt.Errorf("%s: nil block matrix: %w", method, ErrShape)
	}
	if r, c := b.Dims(); r != k || c != k {
		return nil, nil, fmt.Errorf("%s: B is %dx%d, want %dx%d: %w", method, r, c, k, k, ErrShape)
	}
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			v := b.At(i, j)
			if err := checkProbability(method, v); err != nil {
				return nil, nil, fmt.Errorf("B[%d,%d]: %w", i, j, err)
			}
			if !directed && v != b.At(j, i) {
				return nil, nil, fmt.Errorf("%s: B[%d,%d]≠B[%d,%d] for undirected model: %w", method, i, j, j, i, ErrShape)
			}
		}
	}

	labels := make([]int, 0, total)
	for blk, s := range sizes {
		for t := 0; t < s; t++ {
			labels = append(labels, blk+1)
		}
	}
	prob := func(i, j int) float64 { return b.At(labels[i]-1, labels[j]-1) }

	return labels, prob, nil
}

// SBM samples a stochastic block model with the given block sizes and K×K
// block probability matrix. It returns the network and the 1-based labels.
func SBM(sizes []int, b mat.Matrix, opts ...Option) (*network.Network, []int, error) {
	o := gatherOptions(opts...)
	labels, prob, err := blockModel(methodSBM, sizes, b, o.directed)
	if err != nil {
		return nil, nil, err
	}
	g, err := sampleAdjacency(len(labels), prob, o, rng.FromSeed(o.seed))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodSBM, err)
	}

	return g, labels, nil
}

// RDPG samples a random dot product graph with P = X·Xᵀ. Every admissible
// entry of P must lie in [0,1].
func RDPG(x mat.Matrix, opts ...Option) (*network.Network, error) {
	if x == nil {
		return nil, fmt.Errorf("%s: nil positions: %w", methodRDPG, ErrTooFewVertices)
	}
	n, _ := x.Dims()
	if n < minVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRDPG, n, minVertices, ErrTooFewVertices)
	}
	o := gatherOptions(opts...)

	var p mat.Dense
	p.Mul(x, x.T())
	var bad error
	forEachPair(n, o, func(i, j int) {
		if bad == nil {
			if err := checkProbability(methodRDPG, p.At(i, j)); err != nil {
				bad = fmt.Errorf("P[%d,%d]: %w", i, j, err)
			}
		}
	})
	if bad != nil {
		return nil, bad
	}

	g, err := sampleAdjacency(n, p.At, o, rng.FromSeed(o.seed))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRDPG, err)
	}

	return g, nil
}

// CorrelatedER samples two ER(n,p) networks whose edge indicators have
// correlation rho.
func CorrelatedER(n int, p, rho float64, opts ...Option) (*network.Network, *network.Network, error) {
	if n < minVertices {
		return nil, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCorrelatedER, n, minVertices, ErrTooFewVertices)
	}
	if err := checkProbability(methodCorrelatedER, p); err != nil {
		return nil, nil, err
	}
	if err := checkCorrelation(methodCorrelatedER, rho); err != nil {
		return nil, nil, err
	}
	o := gatherOptions(opts...)

	g1, g2, err := sampleCorrelated(n, func(int, int) float64 { return p }, rho, o, rng.FromSeed(o.seed))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodCorrelatedER, err)
	}

	return g1, g2, nil
}

// CorrelatedSBM samples two SBM networks with shared labels whose edge
// indicators have correlation rho.
func CorrelatedSBM(sizes []int, b mat.Matrix, rho float64, opts ...Option) (*network.Network, *network.Network, []int, error) {
	if err := checkCorrelation(methodCorrelatedSBM, rho); err != nil {
		return nil, nil, nil, err
	}
	o := gatherOptions(opts...)
	labels, prob, err := blockModel(methodCorrelatedSBM, sizes, b, o.directed)
	if err != nil {
		return nil, nil, nil, err
	}

	g1, g2, err := sampleCorrelated(len(labels), prob, rho, o, rng.FromSeed(o.seed))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", methodCorrelatedSBM, err)
	}

	return g1, g2, labels, nil
}
