// SPDX-License-Identifier: MIT

package embed_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphstats/embed"
	"github.com/katalvlaran/graphstats/network"
)

// ExampleAdjacencySpectral_Embed embeds two disjoint triangles: nodes of the
// same triangle share one latent position.
func ExampleAdjacencySpectral_Embed() {
	g, _ := network.FromEdges(6, []network.Edge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 0, To: 2},
		{From: 3, To: 4}, {From: 4, To: 5}, {From: 3, To: 5},
	})
	lp, err := embed.NewASE(embed.WithDimension(2)).Embed(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	x := lp.Out()
	r0, r1, r3 := mat.Row(nil, 0, x), mat.Row(nil, 1, x), mat.Row(nil, 3, x)

	fmt.Println("dimension:", lp.Dimension())
	fmt.Printf("norm: %.3f\n", floats.Norm(r0, 2))
	fmt.Println("same triangle:", floats.EqualApprox(r0, r1, 1e-9))
	fmt.Printf("across triangles: %.3f\n", math.Abs(floats.Dot(r0, r3)))

	// Output:
	// dimension: 2
	// norm: 0.816
	// same triangle: true
	// across triangles: 0.000
}
