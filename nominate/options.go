// SPDX-License-Identifier: MIT

package nominate

import "github.com/rs/zerolog"

// DefaultIndexThreshold is the candidate count from which per-seed Euclidean
// search uses a k-d tree.
const DefaultIndexThreshold = 256

const panicThresholdInvalid = "nominate: WithIndexThreshold: n must be >= 0"

// Option configures a Nominator.
type Option func(*options)

type options struct {
	metric     Metric
	metricName string
	threshold  int
	logger     zerolog.Logger
}

// WithMetric sets the distance metric. A nil metric makes New fail with
// ErrInvalidMetric.
func WithMetric(m Metric) Option {
	return func(o *options) {
		o.metric = m
		o.metricName = ""
		if m == nil {
			o.metricName = "<nil>"
		}
	}
}

// WithMetricName selects a built-in metric by name; New fails with
// ErrInvalidMetric for unknown names.
func WithMetricName(name string) Option {
	return func(o *options) { o.metricName = name }
}

// WithIndexThreshold sets the k-d tree threshold; 0 disables the index.
func WithIndexThreshold(n int) Option {
	if n < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *options) { o.threshold = n }
}

// WithLogger attaches a logger for debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}
