// SPDX-License-Identifier: MIT

// Package embed estimates latent positions of network nodes by spectral
// embedding.
//
// What & Why:
//
//	A network drawn from a random dot product graph has edge probabilities
//	P = X·Yᵀ for latent positions X (out) and Y (in). The spectral embedders
//	recover those positions up to an orthogonal transform:
//	  - AdjacencySpectral (ASE) decomposes the adjacency matrix;
//	  - LaplacianSpectral (LSE) decomposes a normalized Laplacian (DAD by default).
//	Both return X = U·diag(√S); directed networks additionally get Y = V·diag(√S).
//
// Dimension:
//
//	WithDimension fixes d. Without it the full spectrum is computed and an elbow
//	Selector (decompose.GappedElbows by default) chooses d. When the input has
//	fewer than d non-zero singular values the tail is zero-padded and the result
//	carries a *RankDeficiencyWarning; the embedding still succeeds.
//
// Multiple networks:
//
//	Omnibus embeds m networks on a shared vertex set jointly, so positions are
//	directly comparable across networks. Dissimilarity and ClassicalMDS turn those
//	per-network embeddings into a low-dimensional map of the networks themselves.
//
// Positions own their storage: Out, In and Values return copies, and the input
// network or matrix is never modified.
package embed
