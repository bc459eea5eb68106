// SPDX-License-Identifier: MIT

package simulate

import "github.com/katalvlaran/graphstats/network"

// Option configures a sampler.
type Option func(*options)

type options struct {
	seed     int64
	directed bool
	loops    bool
}

func gatherOptions(opts ...Option) options {
	var o options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// networkOptions maps sampler flags onto the resulting network.
func (o options) networkOptions() []network.Option {
	return []network.Option{network.WithDirected(o.directed), network.WithLoops(o.loops)}
}

// WithSeed fixes the random stream (0 ⇒ default seed).
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithDirected samples every ordered pair independently.
func WithDirected(directed bool) Option {
	return func(o *options) { o.directed = directed }
}

// WithLoops also samples the diagonal pairs (i,i).
func WithLoops(loops bool) Option {
	return func(o *options) { o.loops = loops }
}
