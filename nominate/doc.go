// SPDX-License-Identifier: MIT

// Package nominate ranks network nodes by their similarity to a set of seed
// nodes in latent space (vertex nomination).
//
// A Nominator is a small state machine:
//
//	Unfit --Fit(X)--> Fit --Predict*--> Predicted --Predict*--> Predicted
//	                   ^                    |
//	                   +------Fit(X')-------+
//
// Fit keeps a reference to the latent position matrix X (typically an
// embed.LatentPositions) and never modifies it. Two predictions are offered:
//
//   - PredictSingleList: one ranking of all non-seed nodes by distance to the
//     centroid of the seed rows.
//   - PredictPerSeed: for every seed, its k nearest non-seed nodes.
//
// Distances are pluggable (Euclidean, Manhattan, Cosine, Chebyshev or any
// Metric). Output is sorted by distance with ties broken by node index, so
// identical inputs always give identical rankings. Per-seed Euclidean search
// switches to a k-d tree once the candidate set reaches the index threshold.
package nominate
