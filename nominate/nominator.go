// SPDX-License-Identifier: MIT

package nominate

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/viterin/vek"
	"gonum.org/v1/gonum/mat"
)

// State is the lifecycle stage of a Nominator.
type State int

const (
	// Unfit: no latent positions yet.
	Unfit State = iota
	// Fit: positions stored, nothing predicted.
	Fit
	// Predicted: at least one prediction succeeded since the last Fit.
	Predicted
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Unfit:
		return "unfit"
	case Fit:
		return "fit"
	case Predicted:
		return "predicted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Nomination is one ranked candidate.
type Nomination struct {
	Node     int     `json:"node" yaml:"node"`         // row index in the fitted matrix
	Distance float64 `json:"distance" yaml:"distance"` // distance under the nominator's metric
}

// Nominator ranks non-seed nodes against seed nodes. It is not safe for
// concurrent use.
type Nominator struct {
	metric    Metric
	threshold int
	logger    zerolog.Logger

	x     mat.Matrix
	n, d  int
	state State
}

// New returns an Unfit Nominator (Euclidean metric unless configured).
func New(opts ...Option) (*Nominator, error) {
	o := options{metric: Euclidean{}, threshold: DefaultIndexThreshold, logger: zerolog.Nop()}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricName != "" {
		m, err := MetricByName(o.metricName)
		if err != nil {
			return nil, fmt.Errorf("nominate.New: %w", err)
		}
		o.metric = m
	}

	return &Nominator{metric: o.metric, threshold: o.threshold, logger: o.logger}, nil
}

// State reports the lifecycle stage.
func (nm *Nominator) State() State { return nm.state }

// Metric returns the configured metric.
func (nm *Nominator) Metric() Metric { return nm.metric }

// Fit stores a reference to the n×d latent positions x; rows are nodes.
// x is read, never written. Re-fitting resets the state to Fit.
func (nm *Nominator) Fit(x mat.Matrix) error {
	if x == nil {
		return fmt.Errorf("Nominator.Fit: %w", ErrEmptyInput)
	}
	n, d := x.Dims()
	if n == 0 || d == 0 {
		return fmt.Errorf("Nominator.Fit: %dx%d: %w", n, d, ErrEmptyInput)
	}
	nm.x, nm.n, nm.d = x, n, d
	nm.state = Fit

	return nil
}

// PredictSingleList ranks every non-seed node by its distance to the centroid
// of the seed rows, ascending, ties by node index. Duplicate seeds count once.
// Complexity: O(n·d + n log n).
func (nm *Nominator) PredictSingleList(seeds []int) ([]Nomination, error) {
	set, err := nm.checkSeeds("PredictSingleList", seeds)
	if err != nil {
		return nil, err
	}

	centroid := make([]float64, nm.d)
	row := make([]float64, nm.d)
	for _, s := range set.order {
		mat.Row(row, s, nm.x)
		vek.Add_Inplace(centroid, row)
	}
	vek.MulNumber_Inplace(centroid, 1/float64(len(set.order)))

	out := make([]Nomination, 0, nm.n-len(set.order))
	for i := 0; i < nm.n; i++ {
		if set.member[i] {
			continue
		}
		mat.Row(row, i, nm.x)
		out = append(out, Nomination{Node: i, Distance: nm.metric.Distance(centroid, row)})
	}
	sortNominations(out)
	nm.state = Predicted
	nm.logger.Debug().
		Str("metric", nm.metric.Name()).
		Int("seeds", len(set.order)).
		Int("candidates", len(out)).
		Msg("single list nominated")

	return out, nil
}

// PredictPerSeed returns, for each distinct seed in first-occurrence order,
// its k nearest non-seed nodes (k capped at the number of non-seed nodes),
// ascending by distance, ties by node index.
// Complexity: O(|seeds|·n·d) brute force; Euclidean with an index is
// O(n log n) to build plus roughly O(|seeds|·k·log n) to query.
func (nm *Nominator) PredictPerSeed(seeds []int, k int) ([][]Nomination, error) {
	if k < 1 {
		return nil, fmt.Errorf("Nominator.PredictPerSeed: k=%d: %w", k, ErrInvalidK)
	}
	set, err := nm.checkSeeds("PredictPerSeed", seeds)
	if err != nil {
		return nil, err
	}
	candidates := make([]int, 0, nm.n-len(set.order))
	for i := 0; i < nm.n; i++ {
		if !set.member[i] {
			candidates = append(candidates, i)
		}
	}
	k = min(k, len(candidates))

	_, euclidean := nm.metric.(Euclidean)
	useIndex := euclidean && nm.threshold > 0 && len(candidates) >= nm.threshold && k > 0
	var idx *kdIndex
	if useIndex {
		idx = newKDIndex(nm.x, candidates)
	}

	out := make([][]Nomination, len(set.order))
	query := make([]float64, nm.d)
	row := make([]float64, nm.d)
	for si, s := range set.order {
		mat.Row(query, s, nm.x)
		if k == 0 {
			out[si] = []Nomination{}
			continue
		}
		if useIndex {
			out[si] = idx.nearest(query, k)
			continue
		}
		all := make([]Nomination, len(candidates))
		for ci, c := range candidates {
			mat.Row(row, c, nm.x)
			all[ci] = Nomination{Node: c, Distance: nm.metric.Distance(query, row)}
		}
		sortNominations(all)
		out[si] = all[:k:k]
	}
	nm.state = Predicted
	nm.logger.Debug().
		Str("metric", nm.metric.Name()).
		Int("seeds", len(set.order)).
		Int("k", k).
		Bool("indexed", useIndex).
		Msg("per-seed nominated")

	return out, nil
}

// seedSet is a deduplicated seed list plus a membership mask.
type seedSet struct {
	order  []int
	member []bool
}

func (nm *Nominator) checkSeeds(op string, seeds []int) (seedSet, error) {
	if nm.state == Unfit {
		return seedSet{}, fmt.Errorf("Nominator.%s: %w", op, ErrNotFit)
	}
	if len(seeds) == 0 {
		return seedSet{}, fmt.Errorf("Nominator.%s: %w", op, ErrEmptySeedSet)
	}
	set := seedSet{member: make([]bool, nm.n)}
	for i, s := range seeds {
		if s < 0 || s >= nm.n {
			return seedSet{}, fmt.Errorf("Nominator.%s: seeds[%d]=%d not in [0,%d): %w", op, i, s, nm.n, ErrSeedOutOfRange)
		}
		if !set.member[s] {
			set.member[s] = true
			set.order = append(set.order, s)
		}
	}

	return set, nil
}

// sortNominations orders by distance, then node index.
func sortNominations(ns []Nomination) {
	sort.Slice(ns, func(i, j int) bool {
		if ns[i].Distance != ns[j].Distance {
			return ns[i].Distance < ns[j].Distance
		}
		return ns[i].Node < ns[j].Node
	})
}
