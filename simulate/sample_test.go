// SPDX-License-Identifier: MIT

package simulate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/graphstats/network"
	"github.com/katalvlaran/graphstats/simulate"
)

// upperPairs flattens the strict upper triangle of g.
func upperPairs(g *network.Network) []float64 {
	n := g.N()
	out := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, g.At(i, j))
		}
	}

	return out
}

func TestER_Density(t *testing.T) {
	g, err := simulate.ER(200, 0.3, simulate.WithSeed(42))
	require.NoError(t, err)
	assert.False(t, g.Directed())
	assert.False(t, g.Loops())
	assert.InDelta(t, 0.3, stat.Mean(upperPairs(g), nil), 0.02)
	for i := 0; i < g.N(); i++ {
		assert.Equal(t, 0.0, g.At(i, i))
	}
}

func TestER_Deterministic(t *testing.T) {
	a, err := simulate.ER(30, 0.5, simulate.WithSeed(7))
	require.NoError(t, err)
	b, err := simulate.ER(30, 0.5, simulate.WithSeed(7))
	require.NoError(t, err)
	assert.True(t, mat.Equal(a, b))

	c, err := simulate.ER(30, 0.5, simulate.WithSeed(8))
	require.NoError(t, err)
	assert.False(t, mat.Equal(a, c))
}

func TestER_DirectedWithLoops(t *testing.T) {
	g, err := simulate.ER(10, 1, simulate.WithDirected(true), simulate.WithLoops(true))
	require.NoError(t, err)
	assert.Equal(t, 100, g.EdgeCount())
}

func TestSamplers_Errors(t *testing.T) {
	t.Parallel()

	_, err := simulate.ER(0, 0.5)
	require.ErrorIs(t, err, simulate.ErrTooFewVertices)
	_, err = simulate.ER(5, 1.5)
	require.ErrorIs(t, err, simulate.ErrInvalidProbability)
	_, err = simulate.ER(5, math.NaN())
	require.ErrorIs(t, err, simulate.ErrInvalidProbability)

	_, _, err = simulate.SBM([]int{2, 2}, mat.NewDense(3, 3, nil))
	require.ErrorIs(t, err, simulate.ErrShape)
	_, _, err = simulate.SBM([]int{2, 2}, mat.NewDense(2, 2, []float64{0.5, 0.1, 0.2, 0.5}))
	require.ErrorIs(t, err, simulate.ErrShape)
	_, _, err = simulate.SBM([]int{2, -1}, mat.NewDense(2, 2, nil))
	require.ErrorIs(t, err, simulate.ErrTooFewVertices)

	_, _, err = simulate.CorrelatedER(5, 0.5, 1.2)
	require.ErrorIs(t, err, simulate.ErrInvalidCorrelation)

	_, err = simulate.RDPG(mat.NewDense(2, 1, []float64{1, 2}))
	require.ErrorIs(t, err, simulate.ErrInvalidProbability)
}

func TestSBM_BlockDensities(t *testing.T) {
	b := mat.NewDense(2, 2, []float64{0.8, 0.1, 0.1, 0.6})
	g, labels, err := simulate.SBM([]int{60, 40}, b, simulate.WithSeed(3))
	require.NoError(t, err)
	require.Len(t, labels, 100)
	assert.Equal(t, 1, labels[0])
	assert.Equal(t, 2, labels[99])

	var within1, cross []float64
	for i := 0; i < 100; i++ {
		for j := i + 1; j < 100; j++ {
			switch {
			case labels[i] == 1 && labels[j] == 1:
				within1 = append(within1, g.At(i, j))
			case labels[i] != labels[j]:
				cross = append(cross, g.At(i, j))
			}
		}
	}
	assert.InDelta(t, 0.8, stat.Mean(within1, nil), 0.05)
	assert.InDelta(t, 0.1, stat.Mean(cross, nil), 0.03)
}

func TestRDPG_ConstantPositions(t *testing.T) {
	x := mat.NewDense(40, 1, nil)
	for i := 0; i < 40; i++ {
		x.Set(i, 0, 1)
	}
	g, err := simulate.RDPG(x)
	require.NoError(t, err)
	assert.Equal(t, 40*39/2, g.EdgeCount())
}

func TestCorrelatedER_Correlation(t *testing.T) {
	for _, rho := range []float64{0, 0.5, 0.9} {
		g1, g2, err := simulate.CorrelatedER(150, 0.3, rho, simulate.WithSeed(11))
		require.NoError(t, err)
		x, y := upperPairs(g1), upperPairs(g2)
		assert.InDelta(t, 0.3, stat.Mean(y, nil), 0.02, "marginal of second network, rho=%v", rho)
		assert.InDelta(t, rho, stat.Correlation(x, y, nil), 0.03, "rho=%v", rho)
	}
}

func TestCorrelatedSBM_Identical(t *testing.T) {
	b := mat.NewDense(2, 2, []float64{0.5, 0.2, 0.2, 0.5})
	g1, g2, labels, err := simulate.CorrelatedSBM([]int{10, 10}, b, 1, simulate.WithSeed(5))
	require.NoError(t, err)
	assert.Len(t, labels, 20)
	assert.True(t, mat.Equal(g1, g2))
}

func TestPermute(t *testing.T) {
	g, err := simulate.ER(12, 0.4, simulate.WithSeed(2))
	require.NoError(t, err)
	perm := simulate.RandomPermutation(12, 9)

	p, err := simulate.Permute(g, perm)
	require.NoError(t, err)
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			require.Equal(t, g.At(i, j), p.At(perm[i], perm[j]))
		}
	}
	assert.Equal(t, g.EdgeCount(), p.EdgeCount())

	_, err = simulate.Permute(g, []int{0, 0})
	require.ErrorIs(t, err, simulate.ErrInvalidPermutation)
}

func TestRandomPermutation(t *testing.T) {
	perm := simulate.RandomPermutation(50, 3)
	seen := make(map[int]bool)
	for _, v := range perm {
		seen[v] = true
	}
	assert.Len(t, seen, 50)
	assert.Equal(t, perm, simulate.RandomPermutation(50, 3))
	assert.Empty(t, simulate.RandomPermutation(0, 3))
}
