// SPDX-License-Identifier: MIT

package nominate

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// kdIndex answers Euclidean k-nearest queries over a fixed candidate set.
type kdIndex struct {
	tree *kdtree.Tree
}

// newKDIndex builds a tree over the rows of x listed in candidates.
// Complexity: O(c log c) for c candidates.
func newKDIndex(x mat.Matrix, candidates []int) *kdIndex {
	_, d := x.Dims()
	pts := make(latentPoints, len(candidates))
	for i, c := range candidates {
		pts[i] = latentPoint{node: c, coords: mat.Row(make([]float64, d), c, x)}
	}

	return &kdIndex{tree: kdtree.New(pts, false)}
}

// nearest returns the k nearest candidates to q, ascending, ties by node.
//
// NKeeper keeps an arbitrary subset of nodes tied at the k-th distance, so
// the first pass only fixes that boundary distance. The second pass collects
// every candidate within it, and the sort plus truncation then picks ties by
// node index exactly as a full scan would.
func (ix *kdIndex) nearest(q []float64, k int) []Nomination {
	query := latentPoint{node: -1, coords: q}

	keep := kdtree.NewNKeeper(k)
	ix.tree.NearestSet(keep, query)
	bound := math.Inf(-1)
	for _, cd := range keep.Heap {
		if _, ok := cd.Comparable.(latentPoint); ok {
			bound = math.Max(bound, cd.Dist)
		}
	}
	if math.IsInf(bound, -1) {
		return []Nomination{}
	}

	within := kdtree.NewDistKeeper(bound)
	ix.tree.NearestSet(within, query)
	out := make([]Nomination, 0, len(within.Heap))
	for _, cd := range within.Heap {
		p, ok := cd.Comparable.(latentPoint)
		if !ok {
			continue // sentinel entry
		}
		out = append(out, Nomination{Node: p.node, Distance: math.Sqrt(cd.Dist)})
	}
	sortNominations(out)
	if len(out) > k {
		out = out[:k:k]
	}

	return out
}

// latentPoint is one node's latent position.
type latentPoint struct {
	node   int
	coords []float64
}

func (p latentPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return p.coords[d] - c.(latentPoint).coords[d]
}

func (p latentPoint) Dims() int { return len(p.coords) }

// Distance is the squared Euclidean distance, as kdtree expects.
func (p latentPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(latentPoint)
	var s float64
	for i, v := range p.coords {
		diff := v - q.coords[i]
		s += diff * diff
	}

	return s
}

type latentPoints []latentPoint

func (p latentPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p latentPoints) Len() int                      { return len(p) }
func (p latentPoints) Pivot(d kdtree.Dim) int {
	return plane{latentPoints: p, Dim: d}.Pivot()
}
func (p latentPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

// plane sorts latentPoints along one dimension for median partitioning.
type plane struct {
	kdtree.Dim
	latentPoints
}

func (p plane) Less(i, j int) bool {
	return p.latentPoints[i].coords[p.Dim] < p.latentPoints[j].coords[p.Dim]
}
func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.latentPoints = p.latentPoints[start:end]
	return p
}
func (p plane) Swap(i, j int) {
	p.latentPoints[i], p.latentPoints[j] = p.latentPoints[j], p.latentPoints[i]
}
