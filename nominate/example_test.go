// SPDX-License-Identifier: MIT

package nominate_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphstats/nominate"
)

// ExampleNominator_PredictSingleList ranks nodes by distance to the seed centroid.
func ExampleNominator_PredictSingleList() {
	// Five nodes on a line; seeds 1 and 3 have centroid 2.
	x := mat.NewDense(5, 1, []float64{0, 1, 2, 3, 4})

	nm, _ := nominate.New()
	if err := nm.Fit(x); err != nil {
		fmt.Println(err)
		return
	}
	ranked, _ := nm.PredictSingleList([]int{1, 3})
	for _, r := range ranked {
		fmt.Printf("node %d at %.1f\n", r.Node, r.Distance)
	}

	// Output:
	// node 2 at 0.0
	// node 0 at 2.0
	// node 4 at 2.0
}
