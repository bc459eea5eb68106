// SPDX-License-Identifier: MIT

package embed

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/mds"

	"github.com/katalvlaran/graphstats/decompose"
	"github.com/katalvlaran/graphstats/network"
)

// Omnibus jointly embeds m networks on the same n vertices. It builds the
// mn×mn omnibus matrix whose (i,j) block is (A_i + A_j)/2, embeds it once,
// and splits the result into m n×d position blocks, one per network.
//
// All networks must share n and directedness (ErrSizeMismatch otherwise).
// Complexity: O((mn)³) time, O((mn)²) memory.
func Omnibus(nets []*network.Network, opts ...Option) ([]*LatentPositions, error) {
	if len(nets) == 0 {
		return nil, fmt.Errorf("Omnibus: %w", ErrNoNetworks)
	}
	for i, g := range nets {
		if g == nil {
			return nil, fmt.Errorf("Omnibus: network %d: %w", i, ErrNilInput)
		}
	}
	n, directed := nets[0].N(), nets[0].Directed()
	for i, g := range nets[1:] {
		if g.N() != n || g.Directed() != directed {
			return nil, fmt.Errorf("Omnibus: network %d has n=%d directed=%t, want n=%d directed=%t: %w",
				i+1, g.N(), g.Directed(), n, directed, ErrSizeMismatch)
		}
	}
	o := gatherOptions(opts...)
	m := len(nets)

	adj := make([]mat.Matrix, m)
	for i, g := range nets {
		adj[i] = g
		if o.diagAug {
			adj[i] = g.AugmentDiagonal()
		}
	}
	omni := mat.NewDense(m*n, m*n, nil)
	for bi := 0; bi < m; bi++ {
		for bj := 0; bj < m; bj++ {
			block := omni.Slice(bi*n, (bi+1)*n, bj*n, (bj+1)*n).(*mat.Dense)
			block.Add(adj[bi], adj[bj])
			block.Scale(0.5, block)
		}
	}

	if o.dimension > m*n {
		return nil, fmt.Errorf("Omnibus: d=%d, mn=%d: %w", o.dimension, m*n, ErrDimension)
	}
	res, err := decompose.Decompose(omni, o.decomposeOptions()...)
	if err != nil {
		return nil, fmt.Errorf("Omnibus: %w", err)
	}
	out := scaleColumns(res.U, res.S)
	var in *mat.Dense
	if directed {
		in = scaleColumns(res.V, res.S)
	}
	d := res.Rank()

	var warnings []error
	if res.Effective < d {
		w := &RankDeficiencyWarning{Requested: d, Effective: res.Effective}
		warnings = append(warnings, w)
		o.logger.Warn().Int("requested", d).Int("effective", res.Effective).Msg("rank deficient omnibus embedding")
	}

	result := make([]*LatentPositions, m)
	for i := 0; i < m; i++ {
		lp := &LatentPositions{
			out:      mat.DenseCopyOf(out.Slice(i*n, (i+1)*n, 0, d)),
			values:   append([]float64(nil), res.S...),
			warnings: append([]error(nil), warnings...),
		}
		if in != nil {
			lp.in = mat.DenseCopyOf(in.Slice(i*n, (i+1)*n, 0, d))
		}
		if o.rowNormalize {
			normalizeRows(lp.out)
			if lp.in != nil {
				normalizeRows(lp.in)
			}
		}
		result[i] = lp
	}
	o.logger.Debug().Int("networks", m).Int("n", n).Int("d", d).Msg("omnibus embedded")

	return result, nil
}

// Dissimilarity returns the symmetric matrix of pairwise Frobenius distances
// ‖X_i − X_j‖_F between out positions. All positions must share n×d.
func Dissimilarity(positions []*LatentPositions) (*mat.SymDense, error) {
	if len(positions) == 0 {
		return nil, fmt.Errorf("Dissimilarity: %w", ErrNoNetworks)
	}
	for i, p := range positions {
		if p == nil {
			return nil, fmt.Errorf("Dissimilarity: positions %d: %w", i, ErrNilInput)
		}
	}
	r, c := positions[0].Dims()
	for i, p := range positions[1:] {
		if pr, pc := p.Dims(); pr != r || pc != c {
			return nil, fmt.Errorf("Dissimilarity: positions %d are %dx%d, want %dx%d: %w",
				i+1, pr, pc, r, c, ErrSizeMismatch)
		}
	}

	m := len(positions)
	dis := mat.NewSymDense(m, nil)
	var diff mat.Dense
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			diff.Sub(positions[i].out, positions[j].out)
			dis.SetSym(i, j, mat.Norm(&diff, 2))
			diff.Reset()
		}
	}

	return dis, nil
}

// ClassicalMDS embeds m objects with dissimilarities dis into d dimensions
// by Torgerson scaling. Dimensions beyond the number of positive eigenvalues
// of the double-centred matrix are zero.
func ClassicalMDS(dis mat.Symmetric, d int) (*mat.Dense, error) {
	if dis == nil {
		return nil, fmt.Errorf("ClassicalMDS: %w", ErrNilInput)
	}
	m := dis.SymmetricDim()
	if m == 0 {
		return nil, fmt.Errorf("ClassicalMDS: %w", ErrNoNetworks)
	}
	if d < 1 || d > m {
		return nil, fmt.Errorf("ClassicalMDS: d=%d, m=%d: %w", d, m, ErrDimension)
	}

	var coords mat.Dense
	k, _ := mds.TorgersonScaling(&coords, nil, dis)
	out := mat.NewDense(m, d, nil)
	for j := 0; j < min(k, d); j++ {
		for i := 0; i < m; i++ {
			out.Set(i, j, coords.At(i, j))
		}
	}

	return out, nil
}
