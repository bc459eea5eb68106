// SPDX-License-Identifier: MIT

package simulate

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphstats/internal/rng"
	"github.com/katalvlaran/graphstats/network"
)

// Permute relabels the nodes of net: node i moves to position perm[i], so
// the result B satisfies B[perm[i], perm[j]] = A[i, j]. Matching A against B
// should therefore recover perm itself.
// Complexity: O(n²).
func Permute(net *network.Network, perm []int) (*network.Network, error) {
	if net == nil {
		return nil, fmt.Errorf("Permute: nil network: %w", ErrTooFewVertices)
	}
	n := net.N()
	if err := checkPermutation(perm, n); err != nil {
		return nil, fmt.Errorf("Permute: %w", err)
	}
	b := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			b.Set(perm[i], perm[j], net.At(i, j))
		}
	}

	return network.New(b, net.Options()...)
}

// RandomPermutation returns a uniformly random permutation of 0..n-1 drawn
// from the stream for seed.
func RandomPermutation(n int, seed int64) []int {
	return rng.Permutation(n, rng.FromSeed(seed))
}

func checkPermutation(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("len(perm)=%d, n=%d: %w", len(perm), n, ErrInvalidPermutation)
	}
	seen := make([]bool, n)
	for i, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return fmt.Errorf("perm[%d]=%d: %w", i, p, ErrInvalidPermutation)
		}
		seen[p] = true
	}

	return nil
}
