// SPDX-License-Identifier: MIT

// Package rng hands out the seeded random streams behind graph sampling,
// node relabelling, randomized SVD sketches and the matcher's random
// restarts.
//
// Every stream starts from an explicit int64 seed, so a sampled network or a
// matching run is reproduced bit for bit by passing the same seed again.
// Seed 0 means DefaultSeed; no stream is ever seeded from the clock.
//
// A *rand.Rand is not safe for concurrent use. The matcher derives one stream
// per FAQ restart with Derive(base, restart), in restart order, so a restart's
// random start depends only on the seed and its index.
package rng

import "math/rand"

// DefaultSeed stands in for seed 0, so simulate.WithSeed(0) and an unset seed
// sample the same network.
const DefaultSeed int64 = 1

// FromSeed returns the stream for seed, with 0 mapped to DefaultSeed.
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// mix runs the SplitMix64 finalizer over a parent seed and a stream id.
func mix(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Derive returns the stream for restart or worker id stream under base.
// It draws one Int63 from base, so two calls with the same id still differ;
// a nil base uses DefaultSeed as the parent.
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = DefaultSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(mix(parent, stream)))
}

// ShuffleInts shuffles a in place (Fisher–Yates). A nil r uses FromSeed(0).
func ShuffleInts(a []int, r *rand.Rand) {
	if r == nil {
		r = FromSeed(0)
	}
	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Permutation returns a uniform relabelling of nodes 0..n-1; n<=0 gives an
// empty slice.
func Permutation(n int, r *rand.Rand) []int {
	if n <= 0 {
		return []int{}
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	ShuffleInts(p, r)

	return p
}
