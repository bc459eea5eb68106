// SPDX-License-Identifier: MIT

// Package graphio reads and writes the plain-text formats the graphstats CLI
// accepts: dense CSV matrices, whitespace edge lists, integer label files and
// seed-pair files.
//
// All readers skip blank lines and lines starting with '#'. Indices are
// zero-based; parse failures report the 1-based line number.
package graphio
