// File: hexgrid/example_test.go
package hexgrid_test

import (
	"fmt"

	"github.com/katalvlaran/ronet/hexgrid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Neighbors shows the row-parity rule on a 3×3 grid:
// the even-row center of the grid reaches columns c-1..c above and
// below, while an odd-row cell reaches c..c+1.
func ExampleGrid_Neighbors() {
	g, _ := hexgrid.New(3, 3)

	even := hexgrid.Cell{Row: 2, Col: 1}
	odd := hexgrid.Cell{Row: 1, Col: 1}

	fmt.Println("even row:", g.Neighbors(even))
	fmt.Println("odd row: ", g.Neighbors(odd))
	// Output:
	// even row: [2,0 2,2 1,0 1,1]
	// odd row:  [1,0 1,2 0,1 0,2 2,1 2,2]
}

////////////////////////////////////////////////////////////////////////////////
// Example: CanonicalPairs
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_CanonicalPairs enumerates every coupling site of a 2×2
// grid exactly once, in canonical orientation.
func ExampleGrid_CanonicalPairs() {
	g, _ := hexgrid.New(2, 2)
	for _, p := range g.CanonicalPairs() {
		fmt.Println(p)
	}
	// Output:
	// 0,0--0,1
	// 0,0--1,0
	// 0,1--1,0
	// 0,1--1,1
	// 1,0--1,1
}
