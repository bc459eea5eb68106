// SPDX-License-Identifier: MIT

// Package simulate samples random networks from the classical statistical
// network models.
//
// The simulate package provides:
//
//   - ER:  every admissible pair is an edge independently with probability p.
//   - SBM: block-membership model; the pair (i,j) is an edge with probability
//     B[z_i, z_j]. Labels are returned 1-based, in block order.
//   - RDPG: the pair (i,j) is an edge with probability ⟨x_i, x_j⟩.
//   - CorrelatedER / CorrelatedSBM: a pair of networks with the same marginals
//     whose edge indicators have Pearson correlation ρ.
//   - Permute / RandomPermutation: relabel nodes, the usual way of hiding the
//     correspondence a graph matcher must recover.
//
// Determinism:
//
//	Sampling draws from internal/rng seeded via WithSeed (0 ⇒ the package default
//	seed). Trial order is fixed (i ascending, then j ascending; undirected
//	networks only visit j > i), so identical options always give identical
//	networks.
package simulate
