// SPDX-License-Identifier: MIT

package embed

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/graphstats/decompose"
	"github.com/katalvlaran/graphstats/network"
)

// Defaults.
const (
	// DefaultDimension of 0 lets the elbow selector choose d.
	DefaultDimension = 0
	// DefaultForm is the Laplacian used by LaplacianSpectral.
	DefaultForm = network.DAD
	// DefaultDiagAug leaves the adjacency diagonal untouched.
	DefaultDiagAug = false
)

const panicDimensionInvalid = "embed: WithDimension: d must be >= 0"

// Option configures an embedder or Omnibus.
type Option func(*options)

type options struct {
	dimension    int
	selector     decompose.Selector
	algo         decompose.Algorithm
	seed         int64
	diagAug      bool
	form         network.LaplacianForm
	rowNormalize bool
	logger       zerolog.Logger
}

func gatherOptions(opts ...Option) options {
	o := options{
		dimension: DefaultDimension,
		algo:      decompose.Auto,
		diagAug:   DefaultDiagAug,
		form:      DefaultForm,
		logger:    zerolog.Nop(),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// decomposeOptions translates the embedding options for decompose.Decompose.
func (o options) decomposeOptions() []decompose.Option {
	return []decompose.Option{
		decompose.WithRank(o.dimension),
		decompose.WithSelector(o.selector),
		decompose.WithAlgorithm(o.algo),
		decompose.WithSeed(o.seed),
		decompose.WithLogger(o.logger),
	}
}

// WithDimension fixes the embedding dimension; 0 selects it from the spectrum.
func WithDimension(d int) Option {
	if d < 0 {
		panic(panicDimensionInvalid)
	}

	return func(o *options) { o.dimension = d }
}

// WithSelector sets the elbow policy used when no dimension is fixed.
func WithSelector(s decompose.Selector) Option {
	return func(o *options) { o.selector = s }
}

// WithAlgorithm selects the decomposition backend.
func WithAlgorithm(a decompose.Algorithm) Option {
	return func(o *options) { o.algo = a }
}

// WithSeed seeds the randomized backend.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithDiagAug replaces the zero diagonal by degree/(n−1) before an adjacency
// embedding.
func WithDiagAug(on bool) Option {
	return func(o *options) { o.diagAug = on }
}

// WithForm sets the Laplacian used by LaplacianSpectral.
func WithForm(f network.LaplacianForm) Option {
	return func(o *options) { o.form = f }
}

// WithRowNormalize scales every latent position to unit L2 norm.
func WithRowNormalize(on bool) Option {
	return func(o *options) { o.rowNormalize = on }
}

// WithLogger attaches a logger; rank deficiency is reported at warn level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}
