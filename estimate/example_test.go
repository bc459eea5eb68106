// SPDX-License-Identifier: MIT

package estimate_test

import (
	"fmt"

	"github.com/katalvlaran/graphstats/estimate"
	"github.com/katalvlaran/graphstats/network"
)

// ExampleER estimates the edge probability of a path on three nodes.
func ExampleER() {
	g, _ := network.FromEdges(3, []network.Edge{{From: 0, To: 1}, {From: 1, To: 2}})
	p, _ := estimate.ER(g)
	fmt.Printf("p̂ = %.3f\n", p)

	// Output:
	// p̂ = 0.667
}
