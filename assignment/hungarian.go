// SPDX-License-Identifier: MIT

package assignment

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solve returns cols with row i assigned to column cols[i], and the total
// cost Σ cost[i, cols[i]]. With maximize the total is maximized instead.
//
// Errors: ErrEmpty, ErrShape (rows > cols), ErrNaNInf.
func Solve(cost mat.Matrix, maximize bool) ([]int, float64, error) {
	if cost == nil {
		return nil, 0, fmt.Errorf("Solve: %w", ErrEmpty)
	}
	r, c := cost.Dims()
	if r == 0 || c == 0 {
		return nil, 0, fmt.Errorf("Solve: %dx%d: %w", r, c, ErrEmpty)
	}
	if r > c {
		return nil, 0, fmt.Errorf("Solve: %dx%d: %w", r, c, ErrShape)
	}

	sign := 1.0
	if maximize {
		sign = -1
	}
	// 1-indexed working copy; row/col 0 are the virtual start.
	a := make([][]float64, r+1)
	for i := 1; i <= r; i++ {
		a[i] = make([]float64, c+1)
		for j := 1; j <= c; j++ {
			v := cost.At(i-1, j-1)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, 0, fmt.Errorf("Solve: cost(%d,%d)=%v: %w", i-1, j-1, v, ErrNaNInf)
			}
			a[i][j] = sign * v
		}
	}

	owner := shortestAugmentingPath(a, r, c)

	cols := make([]int, r)
	for j := 1; j <= c; j++ {
		if owner[j] != 0 {
			cols[owner[j]-1] = j - 1
		}
	}
	var total float64
	for i, j := range cols {
		total += cost.At(i, j)
	}

	return cols, total, nil
}

// shortestAugmentingPath runs the potential-based Hungarian method on the
// 1-indexed matrix a (r ≤ c) and returns owner[j] = row assigned to column j
// (0 if none).
func shortestAugmentingPath(a [][]float64, r, c int) []int {
	u := make([]float64, r+1)  // row potentials
	v := make([]float64, c+1)  // column potentials
	owner := make([]int, c+1)  // owner[j]: row matched to column j
	way := make([]int, c+1)    // way[j]: previous column on the augmenting path
	minv := make([]float64, c+1)
	used := make([]bool, c+1)

	for i := 1; i <= r; i++ {
		owner[0] = i
		j0 := 0
		for j := range minv {
			minv[j] = math.Inf(1)
			used[j] = false
		}
		for {
			used[j0] = true
			i0 := owner[j0]
			delta, j1 := math.Inf(1), 0
			for j := 1; j <= c; j++ {
				if used[j] {
					continue
				}
				if cur := a[i0][j] - u[i0] - v[j]; cur < minv[j] {
					minv[j], way[j] = cur, j0
				}
				if minv[j] < delta {
					delta, j1 = minv[j], j
				}
			}
			for j := 0; j <= c; j++ {
				if used[j] {
					u[owner[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if owner[j0] == 0 {
				break
			}
		}
		// unwind the path
		for j0 != 0 {
			j1 := way[j0]
			owner[j0] = owner[j1]
			j0 = j1
		}
	}

	return owner
}
