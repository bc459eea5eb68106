// SPDX-License-Identifier: MIT

// Package network: functional configuration for network builders.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts validation or derived matrices.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package network

import "math"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultDirected controls whether the adjacency is treated as directed.
	// false ⇒ the matrix must be symmetric within DefaultEpsilon.
	DefaultDirected = false

	// DefaultLoops keeps self-loops when true; false zeroes the diagonal.
	DefaultLoops = false

	// DefaultWeighted allows arbitrary non-negative weights when true;
	// false ⇒ every entry must be 0 or 1.
	DefaultWeighted = false

	// DefaultEpsilon is the tolerance for the symmetry check.
	DefaultEpsilon = 1e-9
)

const panicEpsilonInvalid = "network: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options holds builder configuration. Fields are unexported; use WithX.
type Options struct {
	directed bool
	loops    bool
	weighted bool
	eps      float64
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		directed: DefaultDirected,
		loops:    DefaultLoops,
		weighted: DefaultWeighted,
		eps:      DefaultEpsilon,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithDirected marks the network as directed (no symmetry requirement).
func WithDirected(directed bool) Option {
	return func(o *Options) { o.directed = directed }
}

// WithLoops keeps the diagonal (self-loops) instead of zeroing it.
func WithLoops(loops bool) Option {
	return func(o *Options) { o.loops = loops }
}

// WithWeighted accepts any finite non-negative weight instead of {0,1}.
func WithWeighted(weighted bool) Option {
	return func(o *Options) { o.weighted = weighted }
}

// WithEpsilon sets the symmetry tolerance. Panics on NaN/Inf or negative eps.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}
