// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// AugmentDiagonal returns A + diag(d_i/(n−1)), the usual diagonal
// augmentation applied before adjacency spectral embedding of loopless
// networks. For directed networks d_i averages out- and in-degree.
// Complexity: O(n²).
func (g *Network) AugmentDiagonal() *mat.Dense {
	out := g.Adjacency()
	if g.n < 2 {
		return out
	}
	outDeg := g.Degrees()
	inDeg := outDeg
	if g.opts.directed {
		inDeg = g.InDegrees()
	}
	denom := float64(g.n - 1)
	for i := 0; i < g.n; i++ {
		d := (outDeg[i] + inDeg[i]) / 2
		out.Set(i, i, out.At(i, i)+d/denom)
	}

	return out
}

// PassToRanks replaces every non-zero weight by its rank among the non-zero
// weights divided by (count+1), mapping weights into (0,1). Zeros stay zero.
// Ties share their average rank. Undirected networks rank each unordered pair
// once. The result is a weighted Network with the same flags.
//
// Complexity: O(n² log n).
func (g *Network) PassToRanks() (*Network, error) {
	type cell struct {
		i, j int
		v    float64
	}
	var cells []cell
	for i := 0; i < g.n; i++ {
		start := 0
		if !g.opts.directed {
			start = i
		}
		for j := start; j < g.n; j++ {
			if v := g.adj.At(i, j); v != 0 {
				cells = append(cells, cell{i: i, j: j, v: v})
			}
		}
	}
	sort.SliceStable(cells, func(a, b int) bool { return cells[a].v < cells[b].v })

	out := mat.NewDense(g.n, g.n, nil)
	denom := float64(len(cells) + 1)
	for lo := 0; lo < len(cells); {
		hi := lo
		for hi+1 < len(cells) && cells[hi+1].v == cells[lo].v {
			hi++
		}
		// 1-based average rank of the tie group [lo,hi].
		rank := float64(lo+hi)/2 + 1
		for k := lo; k <= hi; k++ {
			c := cells[k]
			out.Set(c.i, c.j, rank/denom)
			if !g.opts.directed {
				out.Set(c.j, c.i, rank/denom)
			}
		}
		lo = hi + 1
	}

	opts := append(g.Options(), WithWeighted(true))

	return New(out, opts...)
}

// Induced returns the subnetwork on the given nodes, in the given order.
// Duplicate or out-of-range indices fail with ErrVertexOutOfRange.
// Complexity: O(k²) for k = len(nodes).
func (g *Network) Induced(nodes []int) (*Network, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("Induced: %w", ErrEmpty)
	}
	seen := make(map[int]struct{}, len(nodes))
	for _, v := range nodes {
		if v < 0 || v >= g.n {
			return nil, fmt.Errorf("Induced: node %d with n=%d: %w", v, g.n, ErrVertexOutOfRange)
		}
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("Induced: duplicate node %d: %w", v, ErrVertexOutOfRange)
		}
		seen[v] = struct{}{}
	}

	k := len(nodes)
	sub := mat.NewDense(k, k, nil)
	for a, u := range nodes {
		for b, v := range nodes {
			sub.Set(a, b, g.adj.At(u, v))
		}
	}

	return New(sub, g.Options()...)
}
