// SPDX-License-Identifier: MIT

package match

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

// Init selects the doubly-stochastic starting point of the unseeded block.
type Init int

const (
	// Barycenter starts the first restart at J = 11ᵀ/m; later restarts are
	// randomized.
	Barycenter Init = iota
	// Random starts every restart at (J + K)/2 with K a Sinkhorn-balanced
	// random matrix.
	Random
)

// String returns the lower-case init name.
func (i Init) String() string {
	switch i {
	case Barycenter:
		return "barycenter"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("Init(%d)", int(i))
	}
}

// Defaults.
const (
	// DefaultMaxIter caps FAQ iterations per restart.
	DefaultMaxIter = 30
	// DefaultTolerance is the ‖ΔP‖_F/√m convergence threshold.
	DefaultTolerance = 0.01
	// DefaultRestarts is the number of independent starts.
	DefaultRestarts = 1
)

const (
	panicMaxIterInvalid   = "match: WithMaxIter: must be >= 1"
	panicToleranceInvalid = "match: WithTolerance: must be finite and >= 0"
	panicRestartsInvalid  = "match: WithRestarts: must be >= 1"
)

// Option configures a Matcher.
type Option func(*options)

type options struct {
	maxIter    int
	tol        float64
	init       Init
	restarts   int
	seed       int64
	lineSearch LineSearch
	logger     zerolog.Logger
}

func gatherOptions(opts ...Option) options {
	o := options{
		maxIter:    DefaultMaxIter,
		tol:        DefaultTolerance,
		init:       Barycenter,
		restarts:   DefaultRestarts,
		lineSearch: ExactLineSearch{},
		logger:     zerolog.Nop(),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithMaxIter caps the iterations of each restart.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *options) { o.maxIter = n }
}

// WithTolerance sets the convergence threshold on ‖ΔP‖_F/√m.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

// WithInit selects the starting point policy.
func WithInit(i Init) Option {
	return func(o *options) { o.init = i }
}

// WithRestarts sets the number of independent starts; the best score wins.
func WithRestarts(n int) Option {
	if n < 1 {
		panic(panicRestartsInvalid)
	}

	return func(o *options) { o.restarts = n }
}

// WithSeed seeds randomized starts (0 ⇒ default seed).
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithLineSearch replaces the step-size strategy; nil keeps ExactLineSearch.
func WithLineSearch(ls LineSearch) Option {
	return func(o *options) {
		if ls != nil {
			o.lineSearch = ls
		}
	}
}

// WithLogger attaches a logger for per-iteration debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}
