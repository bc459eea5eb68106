// SPDX-License-Identifier: MIT

// Package network builds validated adjacency representations of networks and
// derives the matrices spectral methods consume.
//
// The network package provides:
//
//   - Network: an immutable n×n adjacency with explicit Directed/Loops/Weighted
//     flags, built from a dense matrix (New, FromRows) or an edge list (FromEdges).
//   - Degree views: out/in degree vectors and the diagonal degree matrix.
//   - Laplacians: combinatorial D−A and the normalized DAD, I−DAD and R-DAD forms.
//   - Transforms: diagonal augmentation, pass-to-ranks, induced subnetworks.
//   - Connectivity: weakly connected components and the largest one.
//
// Every derived matrix is freshly allocated; the adjacency a Network owns is never
// handed out for mutation. Validation failures return the sentinels in errors.go
// wrapped with the offending shape or coordinate, so callers match them with
// errors.Is.
//
// Networks implement gonum's mat.Matrix, so they can be passed directly to the
// decompose and embed packages.
package network
