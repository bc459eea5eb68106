// SPDX-License-Identifier: MIT

package decompose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstats/decompose"
)

func TestSelectors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		sel    decompose.Selector
		values []float64
		want   int
	}{
		{"profile two clusters", decompose.ProfileLikelihood{Elbows: 1}, []float64{10, 9.5, 9, 1, 0.9, 0.8, 0.7}, 3},
		{"profile single value", decompose.ProfileLikelihood{}, []float64{4}, 1},
		{"profile pair", decompose.ProfileLikelihood{}, []float64{4, 1}, 1},
		{"profile exact split", decompose.ProfileLikelihood{}, []float64{5, 5, 1, 1}, 2},
		{"profile second elbow", decompose.ProfileLikelihood{Elbows: 2}, []float64{100, 99, 10, 9.8, 9.6, 1, 0.9, 0.8, 0.7, 0.6}, 5},
		{"gapped second elbow kept", decompose.GappedElbows{Max: 2}, []float64{30, 10, 0.7, 0.6, 0.5, 0.4, 0.3}, 2},
		{"gapped close pair", decompose.GappedElbows{Max: 2}, []float64{30, 29, 0.7, 0.6, 0.5, 0.4, 0.3}, 2},
		{"gapped exact split", decompose.GappedElbows{Max: 2}, []float64{5, 5, 1, 1}, 2},
		{"gapped capped at max", decompose.GappedElbows{Max: 2}, []float64{30, 10, 3, 0.3, 0.2, 0.1}, 2},
		{"gapped three", decompose.GappedElbows{Max: 3}, []float64{30, 10, 3, 0.3, 0.2, 0.1}, 3},
		{"gapped first only", decompose.GappedElbows{}, []float64{30, 10, 0.7, 0.6, 0.5, 0.4, 0.3}, 1},
		{"gapped single value", decompose.GappedElbows{Max: 2}, []float64{4}, 1},
		{"gap", decompose.LargestGap{}, []float64{8, 7, 2, 1.9}, 2},
		{"gap to zero", decompose.LargestGap{}, []float64{3, 2, 0, 0}, 2},
		{"fixed", decompose.Fixed(2), []float64{3, 2, 1}, 2},
		{"func", decompose.SelectorFunc(func(v []float64) (int, error) { return len(v), nil }), []float64{1, 1}, 2},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.sel.Select(tc.values)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSelectors_Errors(t *testing.T) {
	_, err := decompose.Fixed(4).Select([]float64{1, 2})
	require.ErrorIs(t, err, decompose.ErrDimension)
	_, err = decompose.ProfileLikelihood{}.Select(nil)
	require.ErrorIs(t, err, decompose.ErrEmpty)
	_, err = decompose.GappedElbows{Max: 2}.Select(nil)
	require.ErrorIs(t, err, decompose.ErrEmpty)
	_, err = decompose.LargestGap{}.Select(nil)
	require.ErrorIs(t, err, decompose.ErrEmpty)
}

func TestParseAlgorithm(t *testing.T) {
	for _, a := range []decompose.Algorithm{decompose.Auto, decompose.Full, decompose.Eigen, decompose.Randomized} {
		got, err := decompose.ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := decompose.ParseAlgorithm("lanczos")
	require.ErrorIs(t, err, decompose.ErrUnknownAlgorithm)
}
