// SPDX-License-Identifier: MIT

// Package match aligns the nodes of two networks by seeded graph matching.
//
// What & Why:
//
//	Given adjacency matrices A and B on n nodes each, find the permutation π that
//	minimizes ‖A − P_π·B·P_πᵀ‖²_F, equivalently maximizes the edge overlap
//	tr(Aᵀ·P·B·Pᵀ). The problem is NP-hard; Matcher uses the Fast Approximate
//	QAP (FAQ) relaxation over doubly-stochastic matrices:
//
//	  1. Seeds are fixed to the identity; the unseeded block starts at the
//	     barycenter J = 11ᵀ/m or at a randomized doubly-stochastic point.
//	  2. Each iteration linearizes the objective at P, solves the linear
//	     assignment problem on the gradient (package assignment) to get the
//	     vertex Q, then line-searches the exact quadratic along P → Q.
//	  3. The loop stops when ‖ΔP‖_F/√m < tolerance or after MaxIter iterations;
//	     the final P is projected to a permutation with one more assignment.
//
// Guarantees:
//
//	The relaxed objective −tr(Aᵀ·P·B·Pᵀ) never increases across iterations
//	(Result.Objective records it). Results are deterministic for a fixed seed;
//	with several restarts the permutation with the best score wins, earliest
//	restart on ties.
//
// Complexity: O(MaxIter·m³) per restart for m unseeded nodes.
package match
