// SPDX-License-Identifier: MIT

// Package estimate computes closed-form parameter estimates for the classical
// statistical network models.
//
//   - ER:   p̂ = edges / possible pairs.
//   - SBM:  B̂[k,l] = edges between blocks k and l / possible pairs between them,
//     given 1-based community labels.
//   - RDPG: P̂ = clip(X_out·X_inᵀ, 0, 1) from estimated latent positions.
//
// The pair-counting convention follows the network's flags: undirected
// loopless networks count unordered pairs C(n,2), directed ones count ordered
// pairs n(n−1), and loops add the n diagonal pairs. All estimators are
// deterministic and never modify their inputs.
package estimate
