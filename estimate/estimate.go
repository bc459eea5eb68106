// SPDX-License-Identifier: MIT

package estimate

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphstats/embed"
	"github.com/katalvlaran/graphstats/network"
)

// BlockEstimate is the SBM fit: B[k,l] = Edges[k,l] / Possible[k,l]
// (0 where Possible is 0). Indices are 0-based; block k holds label k+1.
type BlockEstimate struct {
	B        *mat.Dense // K×K estimated block probabilities
	Sizes    []int      // nodes per block
	Edges    *mat.Dense // K×K observed edge weight between blocks
	Possible *mat.Dense // K×K possible pair counts
}

// possiblePairs counts the admissible pairs among n nodes.
func possiblePairs(n int, directed, loops bool) float64 {
	nn := float64(n)
	p := nn * (nn - 1)
	if !directed {
		p /= 2
	}
	if loops {
		p += nn
	}

	return p
}

// edgeMass sums the adjacency over admissible pairs: the upper triangle
// (plus diagonal with loops) when undirected, everything otherwise.
func edgeMass(net *network.Network) float64 {
	n := net.N()
	var m float64
	for i := 0; i < n; i++ {
		start := 0
		if !net.Directed() {
			start = i
		}
		for j := start; j < n; j++ {
			if i == j && !net.Loops() {
				continue
			}
			m += net.At(i, j)
		}
	}

	return m
}

// ER returns the maximum-likelihood Erdős–Rényi edge probability of net.
// Weighted networks contribute their edge weights.
// Complexity: O(n²).
func ER(net *network.Network) (float64, error) {
	if net == nil || net.N() < 2 {
		return 0, fmt.Errorf("ER: %w", ErrEmptyNetwork)
	}

	return edgeMass(net) / possiblePairs(net.N(), net.Directed(), net.Loops()), nil
}

// SBM estimates the K×K block probability matrix of net given 1-based labels z.
//
// Within block k the possible count is C(n_k,2) undirected or n_k(n_k−1)
// directed (plus n_k with loops); between blocks k≠l it is n_k·n_l, counted
// once per unordered block pair when undirected.
// Blocks with no possible pairs (for example singletons) estimate to 0.
// Complexity: O(n² + K²).
func SBM(net *network.Network, z []int, k int) (*BlockEstimate, error) {
	if net == nil || net.N() < 2 {
		return nil, fmt.Errorf("SBM: %w", ErrEmptyNetwork)
	}
	n := net.N()
	if len(z) != n {
		return nil, fmt.Errorf("SBM: len(z)=%d, n=%d: %w", len(z), n, ErrLabelMismatch)
	}
	if k < 1 {
		return nil, fmt.Errorf("SBM: K=%d: %w", k, ErrLabelMismatch)
	}
	sizes := make([]int, k)
	for i, label := range z {
		if label < 1 || label > k {
			return nil, fmt.Errorf("SBM: z[%d]=%d not in [1,%d]: %w", i, label, k, ErrLabelMismatch)
		}
		sizes[label-1]++
	}

	directed, loops := net.Directed(), net.Loops()
	edges := mat.NewDense(k, k, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j && !loops {
				continue
			}
			if !directed && j < i {
				continue
			}
			if w := net.At(i, j); w != 0 {
				a, b := z[i]-1, z[j]-1
				edges.Set(a, b, edges.At(a, b)+w)
				if !directed && a != b {
					edges.Set(b, a, edges.At(b, a)+w)
				}
			}
		}
	}

	possible := mat.NewDense(k, k, nil)
	est := mat.NewDense(k, k, nil)
	for a := 0; a < k; a++ {
		for b := 0; b < k; b++ {
			var p float64
			if a == b {
				p = possiblePairs(sizes[a], directed, loops)
			} else {
				p = float64(sizes[a]) * float64(sizes[b])
			}
			possible.Set(a, b, p)
			if p > 0 {
				est.Set(a, b, edges.At(a, b)/p)
			}
		}
	}

	return &BlockEstimate{B: est, Sizes: sizes, Edges: edges, Possible: possible}, nil
}

// RDPG returns P̂ = clip(X_out·X_inᵀ, 0, 1) from latent positions (X_in = X_out
// for undirected embeddings). With loops == false the diagonal is zeroed.
// Complexity: O(n²·d).
func RDPG(lp *embed.LatentPositions, loops bool) (*mat.Dense, error) {
	if lp == nil {
		return nil, fmt.Errorf("RDPG: %w", ErrNilPositions)
	}
	var p mat.Dense
	p.Mul(lp.Out(), lp.In().T())
	p.Apply(func(i, j int, v float64) float64 {
		switch {
		case i == j && !loops:
			return 0
		case v < 0:
			return 0
		case v > 1:
			return 1
		default:
			return v
		}
	}, &p)

	return &p, nil
}
