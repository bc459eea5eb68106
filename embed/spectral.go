// SPDX-License-Identifier: MIT

// Package embed - adjacency and Laplacian spectral embedders.
//
// Implementation:
//   - Stage 1: resolve the matrix to decompose (adjacency, optionally diagonal
//     augmented, or the configured Laplacian).
//   - Stage 2: decompose.Decompose with the fixed or elbow-selected dimension.
//   - Stage 3: scale vectors by √S, optionally row-normalize, record warnings.
//
// Complexity: dominated by the decomposition, O(n³) for the dense backends.

package embed

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphstats/decompose"
	"github.com/katalvlaran/graphstats/network"
)

// Embedder maps a network to latent positions.
type Embedder interface {
	Embed(net *network.Network) (*LatentPositions, error)
}

// AdjacencySpectral embeds the adjacency matrix (ASE).
type AdjacencySpectral struct {
	opts options
}

// LaplacianSpectral embeds a normalized Laplacian (LSE).
type LaplacianSpectral struct {
	opts options
}

var (
	_ Embedder = (*AdjacencySpectral)(nil)
	_ Embedder = (*LaplacianSpectral)(nil)
)

// NewASE returns an adjacency spectral embedder.
func NewASE(opts ...Option) *AdjacencySpectral {
	return &AdjacencySpectral{opts: gatherOptions(opts...)}
}

// NewLSE returns a Laplacian spectral embedder.
func NewLSE(opts ...Option) *LaplacianSpectral {
	return &LaplacianSpectral{opts: gatherOptions(opts...)}
}

// Embed returns the adjacency spectral embedding of net.
func (e *AdjacencySpectral) Embed(net *network.Network) (*LatentPositions, error) {
	if net == nil {
		return nil, fmt.Errorf("AdjacencySpectral.Embed: %w", ErrNilInput)
	}
	var m mat.Matrix = net
	if e.opts.diagAug {
		m = net.AugmentDiagonal()
	}

	return embedMatrix("AdjacencySpectral.Embed", m, net.Directed(), e.opts)
}

// EmbedMatrix embeds an arbitrary square matrix, such as an estimated
// probability matrix. Diagonal augmentation does not apply here.
func (e *AdjacencySpectral) EmbedMatrix(m mat.Matrix, directed bool) (*LatentPositions, error) {
	if m == nil {
		return nil, fmt.Errorf("AdjacencySpectral.EmbedMatrix: %w", ErrNilInput)
	}

	return embedMatrix("AdjacencySpectral.EmbedMatrix", m, directed, e.opts)
}

// Embed returns the Laplacian spectral embedding of net using the configured form.
func (e *LaplacianSpectral) Embed(net *network.Network) (*LatentPositions, error) {
	if net == nil {
		return nil, fmt.Errorf("LaplacianSpectral.Embed: %w", ErrNilInput)
	}
	L, err := net.Laplacian(e.opts.form)
	if err != nil {
		return nil, fmt.Errorf("LaplacianSpectral.Embed: %w", err)
	}

	return embedMatrix("LaplacianSpectral.Embed", L, net.Directed(), e.opts)
}

// EmbedMatrix treats m as a weighted adjacency (loops allowed), builds its
// Laplacian and embeds it.
func (e *LaplacianSpectral) EmbedMatrix(m mat.Matrix, directed bool) (*LatentPositions, error) {
	if m == nil {
		return nil, fmt.Errorf("LaplacianSpectral.EmbedMatrix: %w", ErrNilInput)
	}
	net, err := network.New(m,
		network.WithDirected(directed), network.WithWeighted(true), network.WithLoops(true))
	if err != nil {
		return nil, fmt.Errorf("LaplacianSpectral.EmbedMatrix: %w", err)
	}

	return e.Embed(net)
}

// embedMatrix is the shared decomposition-and-scaling path.
func embedMatrix(tag string, m mat.Matrix, directed bool, o options) (*LatentPositions, error) {
	n, c := m.Dims()
	if n != c {
		return nil, fmt.Errorf("%s: %dx%d input: %w", tag, n, c, ErrSizeMismatch)
	}
	if o.dimension > n {
		return nil, fmt.Errorf("%s: d=%d, n=%d: %w", tag, o.dimension, n, ErrDimension)
	}

	res, err := decompose.Decompose(m, o.decomposeOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	lp := &LatentPositions{
		out:    scaleColumns(res.U, res.S),
		values: res.S,
	}
	if directed {
		lp.in = scaleColumns(res.V, res.S)
	}
	if o.rowNormalize {
		normalizeRows(lp.out)
		if lp.in != nil {
			normalizeRows(lp.in)
		}
	}
	if res.Effective < res.Rank() {
		w := &RankDeficiencyWarning{Requested: res.Rank(), Effective: res.Effective}
		lp.warnings = append(lp.warnings, w)
		o.logger.Warn().
			Int("requested", w.Requested).
			Int("effective", w.Effective).
			Msg("rank deficient embedding, trailing dimensions zero-padded")
	}
	o.logger.Debug().
		Str("op", tag).
		Int("n", n).
		Int("d", res.Rank()).
		Bool("directed", directed).
		Msg("embedded")

	return lp, nil
}
