// SPDX-License-Identifier: MIT

package estimate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphstats/embed"
	"github.com/katalvlaran/graphstats/estimate"
	"github.com/katalvlaran/graphstats/network"
	"github.com/katalvlaran/graphstats/simulate"
)

func TestER_PathCounts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rows [][]float64
		opts []network.Option
		want float64
	}{
		{"undirected", [][]float64{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}}, nil, 2.0 / 3},
		{"directed", [][]float64{{0, 1, 0}, {0, 0, 1}, {0, 0, 0}}, []network.Option{network.WithDirected(true)}, 2.0 / 6},
		{"loops", [][]float64{{1, 1, 0}, {1, 0, 0}, {0, 0, 0}}, []network.Option{network.WithLoops(true)}, 2.0 / 6},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g, err := network.FromRows(tc.rows, tc.opts...)
			require.NoError(t, err)
			p, err := estimate.ER(g)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, p, 1e-12)
		})
	}
}

// recoveryTrials is the number of seeded samples each recovery test draws;
// at least 95% of them must land within tolerance.
const recoveryTrials = 40

func TestER_RecoversSimulated(t *testing.T) {
	hits := 0
	for seed := int64(1); seed <= recoveryTrials; seed++ {
		g, err := simulate.ER(50, 0.3, simulate.WithSeed(seed))
		require.NoError(t, err)
		p, err := estimate.ER(g)
		require.NoError(t, err)
		if p > 0.25 && p < 0.35 {
			hits++
		}
	}
	assert.GreaterOrEqual(t, hits, recoveryTrials*95/100)
}

func TestER_TooSmall(t *testing.T) {
	g, err := network.FromRows([][]float64{{0}})
	require.NoError(t, err)
	_, err = estimate.ER(g)
	require.ErrorIs(t, err, estimate.ErrEmptyNetwork)
	_, err = estimate.ER(nil)
	require.ErrorIs(t, err, estimate.ErrEmptyNetwork)
}

func TestSBM_RecoversSimulated(t *testing.T) {
	truth := mat.NewDense(2, 2, []float64{0.8, 0.2, 0.2, 0.8})
	hits := 0
	for seed := int64(1); seed <= recoveryTrials; seed++ {
		g, labels, err := simulate.SBM([]int{20, 20}, truth, simulate.WithSeed(seed))
		require.NoError(t, err)

		est, err := estimate.SBM(g, labels, 2)
		require.NoError(t, err)
		require.Equal(t, []int{20, 20}, est.Sizes)
		require.Equal(t, 190.0, est.Possible.At(0, 0))
		require.Equal(t, 400.0, est.Possible.At(0, 1))
		require.Equal(t, est.B.At(0, 1), est.B.At(1, 0))
		if mat.EqualApprox(truth, est.B, 0.1) {
			hits++
		}
	}
	assert.GreaterOrEqual(t, hits, recoveryTrials*95/100)
}

func TestSBM_ExactCounts(t *testing.T) {
	// Blocks {0,1} and {2,3}; edges 0-1, 0-2, 1-3.
	g, err := network.FromEdges(4, []network.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3}})
	require.NoError(t, err)
	est, err := estimate.SBM(g, []int{1, 1, 2, 2}, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, est.B.At(0, 0))
	assert.Equal(t, 0.0, est.B.At(1, 1))
	assert.Equal(t, 0.5, est.B.At(0, 1))
	assert.Equal(t, 0.5, est.B.At(1, 0))
}

func TestSBM_SingletonAndEmptyBlocks(t *testing.T) {
	g, err := network.FromEdges(3, []network.Edge{{From: 0, To: 1}, {From: 1, To: 2}})
	require.NoError(t, err)
	est, err := estimate.SBM(g, []int{1, 1, 2}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, est.Sizes)
	assert.Equal(t, 0.0, est.B.At(1, 1))
	assert.Equal(t, 0.0, est.B.At(2, 2))
	assert.Equal(t, 0.5, est.B.At(0, 1))
}

func TestSBM_LabelErrors(t *testing.T) {
	t.Parallel()

	g, err := network.FromEdges(3, []network.Edge{{From: 0, To: 1}})
	require.NoError(t, err)
	for name, tc := range map[string]struct {
		z []int
		k int
	}{
		"short":      {[]int{1, 1}, 1},
		"zero label": {[]int{0, 1, 1}, 2},
		"too large":  {[]int{1, 3, 1}, 2},
		"k zero":     {[]int{1, 1, 1}, 0},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			_, err := estimate.SBM(g, tc.z, tc.k)
			require.ErrorIs(t, err, estimate.ErrLabelMismatch)
		})
	}
}

func TestSBM_Directed(t *testing.T) {
	g, err := network.FromRows([][]float64{
		{0, 1, 1},
		{0, 0, 0},
		{0, 1, 0},
	}, network.WithDirected(true))
	require.NoError(t, err)
	est, err := estimate.SBM(g, []int{1, 1, 2}, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, est.Possible.At(0, 0))
	assert.Equal(t, 0.5, est.B.At(0, 0))
	assert.Equal(t, 0.5, est.B.At(0, 1))
	assert.Equal(t, 0.5, est.B.At(1, 0))
}

func TestRDPG_ClipsAndZeroesDiagonal(t *testing.T) {
	lp, err := embed.NewLatentPositions(mat.NewDense(3, 1, []float64{1.2, 0.5, -0.5}), nil)
	require.NoError(t, err)

	p, err := estimate.RDPG(lp, false)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.At(0, 0))
	assert.Equal(t, 0.6, p.At(0, 1))
	assert.Equal(t, 0.0, p.At(1, 2))

	withLoops, err := estimate.RDPG(lp, true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, withLoops.At(0, 0))

	_, err = estimate.RDPG(nil, false)
	require.ErrorIs(t, err, estimate.ErrNilPositions)
}

func TestRDPG_FromEmbedding(t *testing.T) {
	b := mat.NewDense(2, 2, []float64{0.7, 0.2, 0.2, 0.5})
	g, labels, err := simulate.SBM([]int{50, 50}, b, simulate.WithSeed(31))
	require.NoError(t, err)
	lp, err := embed.NewASE(embed.WithDimension(2)).Embed(g)
	require.NoError(t, err)

	p, err := estimate.RDPG(lp, false)
	require.NoError(t, err)
	var within, cross float64
	var nw, nc int
	for i := 0; i < 100; i++ {
		for j := i + 1; j < 100; j++ {
			if labels[i] == 1 && labels[j] == 1 {
				within += p.At(i, j)
				nw++
			} else if labels[i] != labels[j] {
				cross += p.At(i, j)
				nc++
			}
		}
	}
	assert.InDelta(t, 0.7, within/float64(nw), 0.1)
	assert.InDelta(t, 0.2, cross/float64(nc), 0.1)
}
