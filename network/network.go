// SPDX-License-Identifier: MIT

// Package network - Network storage & builders.
//
// Purpose:
//   - Own a private, validated copy of the adjacency so no caller can mutate it
//     after construction (copy-on-read for every exported matrix accessor).
//   - Enforce the structural policy (square, finite, non-negative, symmetric when
//     undirected, binary when unweighted, zero diagonal when loopless) in one place.
//   - Expose the network as a read-only gonum mat.Matrix for downstream kernels.
//
// Complexity quicksheet:
//   - New/FromRows: O(n²) validation + copy; FromEdges: O(n² + E).
//   - At/Dims: O(1); Adjacency (copy): O(n²).

package network

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Edge is a single edge-list entry. Weight is ignored (treated as 1) for
// unweighted networks; a zero Weight on a weighted network means "1".
type Edge struct {
	From   int     // source node index in [0,n)
	To     int     // destination node index in [0,n)
	Weight float64 // optional weight; must be finite and non-negative
}

// Network is an immutable adjacency matrix with explicit structural flags.
type Network struct {
	adj  *mat.Dense // owned n×n adjacency, never exposed directly
	n    int        // number of nodes
	opts Options    // flags the adjacency was validated against
}

// Compile-time assertion: *Network is a read-only gonum matrix.
var _ mat.Matrix = (*Network)(nil)

// New validates a and returns a Network owning a private copy of it.
//
// Implementation:
//   - Stage 1: square + finite checks (ErrEmpty/ErrShape/ErrNaNInf).
//   - Stage 2: sign/binary policy, skipping the diagonal when loops are dropped.
//   - Stage 3: copy, zero the diagonal when loopless, then check symmetry for
//     undirected networks.
//
// Complexity: O(n²).
func New(a mat.Matrix, opts ...Option) (*Network, error) {
	o := gatherOptions(opts...)

	if err := ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("network.New: %w", err)
	}
	if err := ValidateFinite(a); err != nil {
		return nil, fmt.Errorf("network.New: %w", err)
	}
	if err := ValidateEntries(a, o.weighted, !o.loops); err != nil {
		return nil, fmt.Errorf("network.New: %w", err)
	}

	n, _ := a.Dims()
	adj := mat.NewDense(n, n, nil)
	adj.Copy(a)
	if !o.loops {
		for i := 0; i < n; i++ {
			adj.Set(i, i, 0)
		}
	}

	if !o.directed {
		if err := ValidateSymmetric(adj, o.eps); err != nil {
			return nil, fmt.Errorf("network.New: %w", err)
		}
	}

	return &Network{adj: adj, n: n, opts: o}, nil
}

// FromRows builds a Network from a row-major [][]float64. Ragged rows fail
// with ErrShape before any copy is made.
func FromRows(rows [][]float64, opts ...Option) (*Network, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("network.FromRows: %w", ErrEmpty)
	}
	data := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("network.FromRows: row %d has %d entries, want %d: %w",
				i, len(row), n, ErrShape)
		}
		data = append(data, row...)
	}

	return New(mat.NewDense(n, n, data), opts...)
}

// FromEdges builds a Network on n nodes from an edge list. Undirected edges
// are mirrored; repeated (u,v) pairs follow last-write-wins in slice order.
// Self-loops are dropped unless WithLoops(true).
//
// Complexity: O(n² + E).
func FromEdges(n int, edges []Edge, opts ...Option) (*Network, error) {
	if n <= 0 {
		return nil, fmt.Errorf("network.FromEdges: n=%d: %w", n, ErrEmpty)
	}
	o := gatherOptions(opts...)
	adj := mat.NewDense(n, n, nil)

	var w float64
	for k, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("network.FromEdges: edge %d (%d,%d) with n=%d: %w",
				k, e.From, e.To, n, ErrVertexOutOfRange)
		}
		w = 1
		if o.weighted && e.Weight != 0 {
			w = e.Weight
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("network.FromEdges: edge %d weight %v: %w", k, w, ErrNaNInf)
		}
		if w < 0 {
			return nil, fmt.Errorf("network.FromEdges: edge %d weight %g: %w", k, w, ErrNegativeWeight)
		}
		adj.Set(e.From, e.To, w)
		if !o.directed {
			adj.Set(e.To, e.From, w)
		}
	}

	return New(adj, opts...)
}

// Dims returns (n, n).
func (g *Network) Dims() (int, int) { return g.n, g.n }

// At returns A[i,j]. Panics on out-of-range indices like any mat.Matrix.
func (g *Network) At(i, j int) float64 { return g.adj.At(i, j) }

// T returns the transposed view of the adjacency.
func (g *Network) T() mat.Matrix { return mat.Transpose{Matrix: g} }

// N returns the number of nodes.
func (g *Network) N() int { return g.n }

// Directed reports whether the network is directed.
func (g *Network) Directed() bool { return g.opts.directed }

// Loops reports whether self-loops were kept.
func (g *Network) Loops() bool { return g.opts.loops }

// Weighted reports whether arbitrary non-negative weights are allowed.
func (g *Network) Weighted() bool { return g.opts.weighted }

// Options returns the options that rebuild a network with identical flags.
func (g *Network) Options() []Option {
	return []Option{
		WithDirected(g.opts.directed),
		WithLoops(g.opts.loops),
		WithWeighted(g.opts.weighted),
		WithEpsilon(g.opts.eps),
	}
}

// Adjacency returns a fresh copy of the adjacency matrix.
// Complexity: O(n²).
func (g *Network) Adjacency() *mat.Dense {
	return mat.DenseCopyOf(g.adj)
}

// EdgeCount returns the number of realized edges: each undirected edge is
// counted once (i ≤ j), each directed edge once per ordered pair.
func (g *Network) EdgeCount() int {
	var count int
	for i := 0; i < g.n; i++ {
		start := 0
		if !g.opts.directed {
			start = i
		}
		for j := start; j < g.n; j++ {
			if g.adj.At(i, j) != 0 {
				count++
			}
		}
	}

	return count
}
