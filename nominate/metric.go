// SPDX-License-Identifier: MIT

package nominate

import (
	"fmt"
	"math"
	"strings"

	"github.com/viterin/vek"
	"gonum.org/v1/gonum/floats"
)

// Metric is a distance between two equal-length vectors.
type Metric interface {
	Name() string
	Distance(x, y []float64) float64
}

// Euclidean is the L2 distance.
type Euclidean struct{}

// Manhattan is the L1 distance.
type Manhattan struct{}

// Cosine is 1 − cos(x, y); a zero vector is at distance 1 from everything.
type Cosine struct{}

// Chebyshev is the L∞ distance.
type Chebyshev struct{}

// Name returns "euclidean".
func (Euclidean) Name() string { return "euclidean" }

// Distance returns ‖x − y‖₂.
func (Euclidean) Distance(x, y []float64) float64 { return vek.Distance(x, y) }

// Name returns "manhattan".
func (Manhattan) Name() string { return "manhattan" }

// Distance returns Σ|xᵢ − yᵢ|.
func (Manhattan) Distance(x, y []float64) float64 { return vek.ManhattanDistance(x, y) }

// Name returns "cosine".
func (Cosine) Name() string { return "cosine" }

// Distance returns 1 − x·y/(‖x‖‖y‖), or 1 when either vector is zero.
func (Cosine) Distance(x, y []float64) float64 {
	if vek.Dot(x, x) == 0 || vek.Dot(y, y) == 0 {
		return 1
	}

	return 1 - vek.CosineSimilarity(x, y)
}

// Name returns "chebyshev".
func (Chebyshev) Name() string { return "chebyshev" }

// Distance returns maxᵢ |xᵢ − yᵢ|.
func (Chebyshev) Distance(x, y []float64) float64 { return floats.Distance(x, y, math.Inf(1)) }

// MetricByName resolves a metric name, case-insensitively.
func MetricByName(name string) (Metric, error) {
	for _, m := range []Metric{Euclidean{}, Manhattan{}, Cosine{}, Chebyshev{}} {
		if strings.EqualFold(m.Name(), name) {
			return m, nil
		}
	}

	return nil, fmt.Errorf("MetricByName(%q): %w", name, ErrInvalidMetric)
}
