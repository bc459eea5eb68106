// SPDX-License-Identifier: MIT

// Package graphstats is a toolkit for statistical inference on networks:
// embed graphs into latent positions, nominate vertices of interest, estimate
// random graph models and match vertices across graphs.
//
// What is inside?
//
//	network/    — immutable adjacency storage, degrees, Laplacians, components
//	decompose/  — truncated SVD / eigendecomposition with elbow rank selection
//	embed/      — adjacency, Laplacian and omnibus spectral embedding, MDS
//	nominate/   — seed-centroid and per-seed vertex nomination
//	estimate/   — ER, SBM and RDPG parameter estimates
//	simulate/   — ER, SBM, RDPG and correlated pair samplers, permutations
//	match/      — seeded graph matching (FAQ, Frank–Wolfe relaxation)
//	assignment/ — linear assignment (Hungarian, shortest augmenting path)
//	cmd/graphstats — command-line front end
//
// A typical pipeline:
//
//	g, _, _ := simulate.SBM([]int{50, 50}, b, simulate.WithSeed(1))
//	lp, _ := embed.NewASE(embed.WithDimension(2)).Embed(g)
//	nm, _ := nominate.New()
//	_ = nm.Fit(lp)
//	ranked, _ := nm.PredictSingleList([]int{0, 1, 2})
//
// Every computation is synchronous and deterministic for a fixed seed;
// inputs are never mutated.
//
// Built on gonum for linear algebra and zerolog for diagnostics.
package graphstats
