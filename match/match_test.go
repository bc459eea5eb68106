// SPDX-License-Identifier: MIT

package match_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphstats/match"
	"github.com/katalvlaran/graphstats/simulate"
)

func TestMatch_NoiselessRecovery(t *testing.T) {
	a, err := simulate.ER(8, 0.5, simulate.WithSeed(3))
	require.NoError(t, err)
	perm := simulate.RandomPermutation(8, 5)
	b, err := simulate.Permute(a, perm)
	require.NoError(t, err)

	res, err := match.New(match.WithRestarts(30), match.WithSeed(7), match.WithInit(match.Random)).Match(a, b, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Disagreement)
	assert.InDelta(t, float64(2*a.EdgeCount()), res.Score, 1e-9)

	aligned, err := match.Apply(b, res.Perm)
	require.NoError(t, err)
	assert.True(t, mat.Equal(a, aligned))
}

func TestMatch_IdentityOnEqualInputs(t *testing.T) {
	a, err := simulate.ER(12, 0.4, simulate.WithSeed(9))
	require.NoError(t, err)
	seeds := []match.SeedPair{{A: 0, B: 0}, {A: 1, B: 1}, {A: 2, B: 2}}
	res, err := match.New(match.WithRestarts(10), match.WithSeed(3)).Match(a, a, seeds)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Disagreement)
	for _, sp := range seeds {
		assert.Equal(t, sp.B, res.Perm[sp.A])
	}
}

func TestMatch_SeedsImproveRatio(t *testing.T) {
	b := mat.NewDense(3, 3, []float64{
		0.7, 0.3, 0.4,
		0.3, 0.7, 0.3,
		0.4, 0.3, 0.7,
	})
	a1, a2, _, err := simulate.CorrelatedSBM([]int{25, 25, 25}, b, 0.9, simulate.WithSeed(21))
	require.NoError(t, err)
	truth := simulate.RandomPermutation(75, 4)
	shuffled, err := simulate.Permute(a2, truth)
	require.NoError(t, err)

	m := match.New()
	unseeded, err := m.Match(a1, shuffled, nil)
	require.NoError(t, err)

	var seeds []match.SeedPair
	for i := 0; i < 75; i += 9 {
		seeds = append(seeds, match.SeedPair{A: i, B: truth[i]})
	}
	require.GreaterOrEqual(t, len(seeds)*10, 75)
	seeded, err := m.Match(a1, shuffled, seeds)
	require.NoError(t, err)

	r0 := match.MatchRatio(unseeded.Perm, truth)
	r1 := match.MatchRatio(seeded.Perm, truth)
	assert.Greater(t, r1, r0)
	assert.Greater(t, r1, 0.9)
}

func TestMatch_ObjectiveNonIncreasing(t *testing.T) {
	a1, a2, err := simulate.CorrelatedER(30, 0.4, 0.6, simulate.WithSeed(8))
	require.NoError(t, err)
	for _, ls := range []match.LineSearch{match.ExactLineSearch{}, match.BacktrackingLineSearch{}} {
		res, err := match.New(match.WithLineSearch(ls), match.WithRestarts(3), match.WithSeed(2)).
			Match(a1, a2, []match.SeedPair{{A: 0, B: 0}})
		require.NoError(t, err)
		require.Equal(t, res.Iterations+1, len(res.Objective))
		for i := 1; i < len(res.Objective); i++ {
			assert.LessOrEqual(t, res.Objective[i], res.Objective[i-1]+1e-9*math.Abs(res.Objective[i-1]))
		}
	}
}

func TestMatch_Deterministic(t *testing.T) {
	a1, a2, err := simulate.CorrelatedER(20, 0.5, 0.5, simulate.WithSeed(1))
	require.NoError(t, err)
	m := match.New(match.WithInit(match.Random), match.WithRestarts(3), match.WithSeed(11))
	x, err := m.Match(a1, a2, nil)
	require.NoError(t, err)
	y, err := m.Match(a1, a2, nil)
	require.NoError(t, err)
	assert.Equal(t, x.Perm, y.Perm)
	assert.Equal(t, x.Objective, y.Objective)
}

func TestMatch_AllSeeded(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
	res, err := match.New().Match(a, a, []match.SeedPair{{A: 0, B: 1}, {A: 1, B: 0}})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, res.Perm)
	assert.True(t, res.Converged)
	assert.Equal(t, 0, res.Iterations)
}

func TestMatch_Errors(t *testing.T) {
	t.Parallel()

	m := match.New()
	_, err := m.Match(mat.NewDense(2, 2, nil), mat.NewDense(3, 3, nil), nil)
	require.ErrorIs(t, err, match.ErrShapeMismatch)

	_, err = m.Match(nil, mat.NewDense(3, 3, nil), nil)
	require.ErrorIs(t, err, match.ErrShapeMismatch)

	_, err = m.Match(mat.NewDense(2, 2, []float64{0, math.NaN(), 0, 0}), mat.NewDense(2, 2, nil), nil)
	require.ErrorIs(t, err, match.ErrNaNInf)

	a := mat.NewDense(3, 3, nil)
	_, err = m.Match(a, a, []match.SeedPair{{A: 0, B: 1}, {A: 0, B: 2}})
	require.ErrorIs(t, err, match.ErrInfeasibleSeed)
	_, err = m.Match(a, a, []match.SeedPair{{A: 0, B: 1}, {A: 2, B: 1}})
	require.ErrorIs(t, err, match.ErrInfeasibleSeed)
	_, err = m.Match(a, a, []match.SeedPair{{A: 3, B: 0}})
	require.ErrorIs(t, err, match.ErrInfeasibleSeed)

	_, err = match.Apply(a, []int{0, 0, 1})
	require.ErrorIs(t, err, match.ErrInvalidPermutation)

	assert.Panics(t, func() { match.WithMaxIter(0) })
	assert.Panics(t, func() { match.WithRestarts(0) })
	assert.Panics(t, func() { match.WithTolerance(-1) })
}

func TestMatchRatio(t *testing.T) {
	assert.Equal(t, 0.5, match.MatchRatio([]int{0, 1, 3, 2}, []int{0, 1, 2, 3}))
	assert.Equal(t, 0.0, match.MatchRatio([]int{0}, []int{0, 1}))
	assert.Equal(t, 0.0, match.MatchRatio(nil, nil))
}

func TestExactLineSearch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b float64
		want float64
	}{
		{"interior minimum", 2, -2, 0.5},
		{"minimum beyond one", 1, -4, 1},
		{"minimum below zero", 1, 1, 0},
		{"concave descending", -1, 0.5, 1},
		{"linear ascending", 0, 1, 0},
		{"linear descending", 0, -1, 1},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, match.ExactLineSearch{}.Step(tc.a, tc.b), 1e-12)
		})
	}
}

// TestLineSearch_NeverIncreases checks both strategies return t ∈ [0,1] with
// b·t + a·t² ≤ 0, and that the exact step is never worse than backtracking.
func TestLineSearch_NeverIncreases(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	f := func(a, b, t float64) float64 { return b*t + a*t*t }
	properties.Property("line searches do not increase the objective", prop.ForAll(
		func(a, b float64) bool {
			te := match.ExactLineSearch{}.Step(a, b)
			tb := match.BacktrackingLineSearch{}.Step(a, b)
			if te < 0 || te > 1 || tb < 0 || tb > 1 {
				return false
			}

			return f(a, b, te) <= 1e-12 && f(a, b, tb) <= 1e-12 && f(a, b, te) <= f(a, b, tb)+1e-12
		},
		gen.Float64Range(-100, 100),
		gen.Float64Range(-100, 100),
	))

	properties.TestingRun(t)
}
