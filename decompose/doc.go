// SPDX-License-Identifier: MIT

// Package decompose computes truncated low-rank decompositions M ≈ U·diag(S)·Vᵀ
// for spectral embedding.
//
// What & Why:
//
//	Spectral methods only ever use the top d singular triplets. Decompose returns
//	exactly those, sorted descending, using a numerically stable factorization:
//	  - symmetric input: mat.EigenSym, eigenpairs ordered by |λ|, S = |λ|, U = V·sign(λ);
//	  - general input:   thin mat.SVD;
//	  - large inputs:    randomized range finder (Halko et al.) when d is fixed.
//
//	When d is not fixed the full spectrum is computed and a Selector (the "elbow"
//	policy) chooses the cut. GappedElbows{Max: 2} is the default;
//	ProfileLikelihood, Fixed and LargestGap are provided, and callers may plug their own.
//
// Rank deficiency:
//
//	Singular values below n·ε·σ₁ count as zero. When fewer than d are non-zero
//	the trailing components are zero-padded and Result.Effective reports how many
//	are real; callers decide whether to warn.
//
// Complexity:
//
//	Full/Eigen: O(n³). Randomized: O(n²·(d+p)·(q+1)) for oversampling p and q
//	power iterations.
package decompose
