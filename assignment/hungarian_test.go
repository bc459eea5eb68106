// SPDX-License-Identifier: MIT

package assignment_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphstats/assignment"
)

// bruteForce enumerates every injective row→column map.
func bruteForce(cost *mat.Dense, maximize bool) float64 {
	r, c := cost.Dims()
	best := math.Inf(1)
	if maximize {
		best = math.Inf(-1)
	}
	used := make([]bool, c)
	var rec func(row int, acc float64)
	rec = func(row int, acc float64) {
		if row == r {
			if (maximize && acc > best) || (!maximize && acc < best) {
				best = acc
			}
			return
		}
		for j := 0; j < c; j++ {
			if !used[j] {
				used[j] = true
				rec(row+1, acc+cost.At(row, j))
				used[j] = false
			}
		}
	}
	rec(0, 0)

	return best
}

func TestSolve_Classic(t *testing.T) {
	cost := mat.NewDense(3, 3, []float64{
		4, 1, 3,
		2, 0, 5,
		3, 2, 2,
	})
	cols, total, err := assignment.Solve(cost, false)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, cols)
	assert.Equal(t, 5.0, total)

	cols, total, err = assignment.Solve(cost, true)
	require.NoError(t, err)
	assert.Equal(t, 11.0, total)
	assert.ElementsMatch(t, []int{0, 1, 2}, cols)
}

func TestSolve_MatchesBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))
	for trial := 0; trial < 60; trial++ {
		r := 1 + rnd.Intn(5)
		c := r + rnd.Intn(3)
		cost := mat.NewDense(r, c, nil)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				cost.Set(i, j, math.Round(rnd.NormFloat64()*10))
			}
		}
		for _, maximize := range []bool{false, true} {
			cols, total, err := assignment.Solve(cost, maximize)
			require.NoError(t, err)
			require.Len(t, cols, r)
			seen := make(map[int]bool)
			for _, j := range cols {
				require.False(t, seen[j], "column %d used twice", j)
				seen[j] = true
			}
			assert.InDelta(t, bruteForce(cost, maximize), total, 1e-9, "trial %d maximize=%t", trial, maximize)
		}
	}
}

func TestSolve_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := assignment.Solve(nil, false)
	require.ErrorIs(t, err, assignment.ErrEmpty)

	_, _, err = assignment.Solve(mat.NewDense(3, 2, nil), false)
	require.ErrorIs(t, err, assignment.ErrShape)

	_, _, err = assignment.Solve(mat.NewDense(2, 2, []float64{1, math.Inf(1), 0, 1}), false)
	require.ErrorIs(t, err, assignment.ErrNaNInf)
}
