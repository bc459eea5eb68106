// SPDX-License-Identifier: MIT
// Package network: sentinel error set.
// All builders and transforms return these sentinels (wrapped with call-site
// context via fmt.Errorf("...: %w")); tests check them with errors.Is.

package network

import "errors"

var (
	// ErrShape is returned when the input is not square or rows are ragged.
	ErrShape = errors.New("network: matrix is not square")

	// ErrEmpty is returned when a network with zero nodes is requested.
	ErrEmpty = errors.New("network: no nodes")

	// ErrAsymmetry signals an undirected network whose adjacency is not
	// symmetric within the configured epsilon.
	ErrAsymmetry = errors.New("network: adjacency is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf entry.
	ErrNaNInf = errors.New("network: NaN or Inf encountered")

	// ErrNegativeWeight signals a negative adjacency entry.
	ErrNegativeWeight = errors.New("network: negative edge weight")

	// ErrNonBinary signals an unweighted network with an entry outside {0,1}.
	ErrNonBinary = errors.New("network: non-binary entry in unweighted network")

	// ErrVertexOutOfRange signals an edge endpoint or node index outside [0,n).
	ErrVertexOutOfRange = errors.New("network: vertex index out of range")

	// ErrUnknownForm signals an unsupported Laplacian form.
	ErrUnknownForm = errors.New("network: unknown laplacian form")
)
