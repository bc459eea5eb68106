// SPDX-License-Identifier: MIT

// Package decompose - dimension selection ("elbow") policies.
//
// Purpose:
//   - Turn a descending value sequence into a cut index d (number of kept
//     components) through a small, pluggable interface.
//
// Determinism:
//   - Every built-in selector is a pure function of its input; ties resolve to
//     the smaller index.

package decompose

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Selector picks how many leading components to keep from a descending,
// non-negative value sequence. Implementations return d in [1, len(values)].
type Selector interface {
	Select(values []float64) (int, error)
}

// SelectorFunc adapts a plain function to Selector.
type SelectorFunc func(values []float64) (int, error)

// Select calls f(values).
func (f SelectorFunc) Select(values []float64) (int, error) { return f(values) }

// Fixed always selects the same dimension.
type Fixed int

// Select returns d, or ErrDimension when d is outside [1, len(values)].
func (d Fixed) Select(values []float64) (int, error) {
	if int(d) < 1 || int(d) > len(values) {
		return 0, fmt.Errorf("Fixed(%d).Select: %d values: %w", int(d), len(values), ErrDimension)
	}

	return int(d), nil
}

// ProfileLikelihood is the Zhu–Ghodsi elbow: split the sequence into two
// Gaussian groups with a shared variance and pick the split that maximizes
// the profile log-likelihood. With Elbows > 1 the search is repeated on the
// tail after each elbow and the last elbow is returned.
type ProfileLikelihood struct {
	Elbows int // number of successive elbows; <1 is treated as 1
}

// Select returns the (last) elbow position as a component count.
func (p ProfileLikelihood) Select(values []float64) (int, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("ProfileLikelihood.Select: %w", ErrEmpty)
	}
	elbows := p.Elbows
	if elbows < 1 {
		elbows = 1
	}

	offset := 0
	for e := 0; e < elbows; e++ {
		tail := values[offset:]
		if len(tail) < 2 {
			break
		}
		offset += profileElbow(tail)
	}
	if offset == 0 {
		offset = 1
	}

	return offset, nil
}

// GappedElbows extends the first profile-likelihood elbow with further
// elbows, each found on the tail left by the previous one. A further elbow is
// kept only when its cut is a clean gap: the drop across the cut exceeds both
// the spread of the values it adds and the spread of everything below it.
// Noise tails have no such gap, so a well-separated leading block is kept
// whole whether its values are close together or far apart.
type GappedElbows struct {
	Max int // most elbows to accept; <1 is treated as 1
}

// Select returns the number of components up to the last accepted elbow.
func (g GappedElbows) Select(values []float64) (int, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("GappedElbows.Select: %w", ErrEmpty)
	}
	if len(values) == 1 {
		return 1, nil
	}
	last := len(values) - 1
	cut := profileElbow(values)
	for e := 1; e < g.Max; e++ {
		tail := values[cut:]
		if len(tail) < 2 {
			break
		}
		next := cut + profileElbow(tail)
		gap := values[next-1] - values[next]
		added := values[cut] - values[next-1]
		below := values[next] - values[last]
		if gap <= added || gap <= below {
			break
		}
		cut = next
	}

	return cut, nil
}

// profileElbow returns q in [1, len(x)-1] maximizing the two-group profile
// log-likelihood of x (len(x) >= 2).
//
// For a split at q with group means μ₁, μ₂ and pooled variance
// σ² = SS/(n−2), the log-likelihood is −n/2·log(2πσ²) − SS/(2σ²).
// A split with SS == 0 has unbounded likelihood and wins immediately.
func profileElbow(x []float64) int {
	n := len(x)
	if n == 2 {
		return 1
	}

	best, bestLL := 1, math.Inf(-1)
	for q := 1; q < n; q++ {
		ss := sumSquares(x[:q]) + sumSquares(x[q:])
		if ss == 0 {
			return q
		}
		variance := ss / float64(n-2)
		ll := -float64(n)/2*math.Log(2*math.Pi*variance) - ss/(2*variance)
		if ll > bestLL {
			best, bestLL = q, ll
		}
	}

	return best
}

// sumSquares returns Σ(x − mean(x))².
func sumSquares(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	mu := stat.Mean(x, nil)
	var ss float64
	for _, v := range x {
		ss += (v - mu) * (v - mu)
	}

	return ss
}

// LargestGap selects the cut after the largest ratio drop values[i]/values[i+1].
// A drop to exactly zero counts as infinite and wins at its first occurrence.
type LargestGap struct{}

// Select returns i+1 for the largest ratio values[i]/values[i+1].
func (LargestGap) Select(values []float64) (int, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("LargestGap.Select: %w", ErrEmpty)
	}
	if len(values) == 1 {
		return 1, nil
	}
	best, bestRatio := 1, math.Inf(-1)
	for i := 0; i+1 < len(values); i++ {
		if values[i] == 0 {
			break
		}
		if values[i+1] == 0 {
			return i + 1, nil
		}
		if r := values[i] / values[i+1]; r > bestRatio {
			best, bestRatio = i+1, r
		}
	}

	return best, nil
}
