// SPDX-License-Identifier: MIT

package decompose

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Algorithm selects the factorization backend.
type Algorithm int

const (
	// Auto uses Eigen for symmetric square input and Full otherwise.
	Auto Algorithm = iota
	// Full is the thin SVD of the whole matrix.
	Full
	// Eigen is the symmetric eigendecomposition; non-symmetric input is rejected.
	Eigen
	// Randomized is the Halko range-finder SVD; requires a fixed rank.
	Randomized
)

// String returns the lower-case algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Auto:
		return "auto"
	case Full:
		return "full"
	case Eigen:
		return "eigen"
	case Randomized:
		return "randomized"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a name produced by Algorithm.String back to its value.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range []Algorithm{Auto, Full, Eigen, Randomized} {
		if a.String() == s {
			return a, nil
		}
	}

	return Auto, fmt.Errorf("ParseAlgorithm(%q): %w", s, ErrUnknownAlgorithm)
}

// Defaults.
const (
	// DefaultOversample is the number of extra random directions in Randomized.
	DefaultOversample = 10
	// DefaultPowerIterations is the number of subspace iterations in Randomized.
	DefaultPowerIterations = 5
	// DefaultSymmetryTol is the absolute tolerance used by Auto to detect symmetry.
	DefaultSymmetryTol = 1e-10
	// DefaultElbows is the Max of the default GappedElbows selector.
	DefaultElbows = 2
)

const (
	panicRankInvalid       = "decompose: WithRank: d must be >= 0"
	panicOversampleInvalid = "decompose: WithOversample: p must be >= 0"
	panicPowerInvalid      = "decompose: WithPowerIterations: q must be >= 0"
)

// Option configures Decompose.
type Option func(*options)

type options struct {
	rank       int
	selector   Selector
	algo       Algorithm
	oversample int
	power      int
	seed       int64
	symTol     float64
	logger     zerolog.Logger
}

func defaultOptions() options {
	return options{
		selector:   GappedElbows{Max: DefaultElbows},
		algo:       Auto,
		oversample: DefaultOversample,
		power:      DefaultPowerIterations,
		symTol:     DefaultSymmetryTol,
		logger:     zerolog.Nop(),
	}
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithRank fixes the number of components; 0 delegates to the Selector.
func WithRank(d int) Option {
	if d < 0 {
		panic(panicRankInvalid)
	}

	return func(o *options) { o.rank = d }
}

// WithSelector sets the elbow policy used when no rank is fixed.
// A nil selector keeps the default.
func WithSelector(s Selector) Option {
	return func(o *options) {
		if s != nil {
			o.selector = s
		}
	}
}

// WithAlgorithm selects the factorization backend.
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) { o.algo = a }
}

// WithOversample sets the Randomized oversampling p.
func WithOversample(p int) Option {
	if p < 0 {
		panic(panicOversampleInvalid)
	}

	return func(o *options) { o.oversample = p }
}

// WithPowerIterations sets the Randomized subspace iteration count q.
func WithPowerIterations(q int) Option {
	if q < 0 {
		panic(panicPowerInvalid)
	}

	return func(o *options) { o.power = q }
}

// WithSeed seeds the Randomized test matrix (0 ⇒ the package default seed).
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithLogger attaches a logger for debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}
