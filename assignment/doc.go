// SPDX-License-Identifier: MIT

// Package assignment solves the rectangular linear assignment problem.
//
// Given an r×c cost matrix with r ≤ c, Solve returns the injective map
// row → column minimizing (or maximizing) the summed cost. The graph matcher
// uses it twice per iteration: once to find the best permutation direction
// for the gradient and once to project the final doubly-stochastic solution
// back onto a permutation.
//
// Algorithm:
//
//	Hungarian method in its shortest-augmenting-path form with row and column
//	potentials: rows are inserted one at a time and a Dijkstra-like sweep over
//	reduced costs finds the cheapest augmenting path. Maximization negates the
//	costs. Ties break toward the lower column index, so results are
//	deterministic.
//
// Complexity: O(r²·c) time, O(r + c) extra memory.
package assignment
