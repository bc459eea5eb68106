// SPDX-License-Identifier: MIT

package network_test

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphstats/network"
)

const psdTol = 1e-9

func TestLaplacian_TwoTriangles(t *testing.T) {
	g := twoTriangles(t)

	L, err := g.Laplacian(network.Combinatorial)
	require.NoError(t, err)
	// Degree 2 on the diagonal, −1 for each edge, 0 across triangles.
	assert.Equal(t, 2.0, L.At(0, 0))
	assert.Equal(t, -1.0, L.At(0, 1))
	assert.Equal(t, 0.0, L.At(0, 3))

	dad, err := g.Laplacian(network.DAD)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, dad.At(0, 1), 1e-12)

	idad, err := g.Laplacian(network.IDAD)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, idad.At(0, 0), 1e-12)
	assert.InDelta(t, -0.5, idad.At(0, 1), 1e-12)

	rdad, err := g.Laplacian(network.RDAD)
	require.NoError(t, err)
	// τ = 2 ⇒ 1/sqrt(4)·1/sqrt(4).
	assert.InDelta(t, 0.25, rdad.At(0, 1), 1e-12)
}

func TestLaplacian_IsolatedNodeStaysFinite(t *testing.T) {
	g, err := network.FromEdges(3, []network.Edge{{From: 0, To: 1}})
	require.NoError(t, err)
	dad, err := g.Laplacian(network.DAD)
	require.NoError(t, err)
	for j := 0; j < 3; j++ {
		assert.Equal(t, 0.0, dad.At(2, j))
	}
}

func TestLaplacian_UnknownForm(t *testing.T) {
	g := twoTriangles(t)
	_, err := g.Laplacian(network.LaplacianForm(42))
	require.ErrorIs(t, err, network.ErrUnknownForm)
}

func TestParseLaplacianForm(t *testing.T) {
	for in, want := range map[string]network.LaplacianForm{
		"l": network.Combinatorial, "DAD": network.DAD, "i-dad": network.IDAD, "R-DAD": network.RDAD,
	} {
		got, err := network.ParseLaplacianForm(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		back, err := network.ParseLaplacianForm(got.String())
		require.NoError(t, err)
		assert.Equal(t, got, back)
	}
	_, err := network.ParseLaplacianForm("nope")
	require.ErrorIs(t, err, network.ErrUnknownForm)
}

// randomUndirected samples a symmetric loopless 0/1 adjacency.
func randomUndirected(n int, p float64, seed int64) *mat.Dense {
	r := rand.New(rand.NewSource(seed))
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r.Float64() < p {
				a.Set(i, j, 1)
				a.Set(j, i, 1)
			}
		}
	}

	return a
}

// TestLaplacian_SymmetricPSD checks that D − A of any symmetric loopless
// non-negative adjacency is symmetric with eigenvalues ≥ −ε.
func TestLaplacian_SymmetricPSD(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("combinatorial laplacian is symmetric PSD", prop.ForAll(
		func(n int, p float64, seed int64) bool {
			g, err := network.New(randomUndirected(n, p, seed))
			if err != nil {
				return false
			}
			L, err := g.Laplacian(network.Combinatorial)
			if err != nil {
				return false
			}
			if network.ValidateSymmetric(L, psdTol) != nil {
				return false
			}
			sym := mat.NewSymDense(n, nil)
			for i := 0; i < n; i++ {
				for j := i; j < n; j++ {
					sym.SetSym(i, j, L.At(i, j))
				}
			}
			var eig mat.EigenSym
			if !eig.Factorize(sym, false) {
				return false
			}
			for _, v := range eig.Values(nil) {
				if v < -psdTol {
					return false
				}
			}

			return true
		},
		gen.IntRange(2, 16),
		gen.Float64Range(0, 1),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
