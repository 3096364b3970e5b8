// File: generate/example_test.go
package generate_test

import (
	"fmt"

	"github.com/katalvlaran/ronet/generate"
	"github.com/katalvlaran/ronet/hexgrid"
	"github.com/katalvlaran/ronet/rograph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Generate
////////////////////////////////////////////////////////////////////////////////

// ExampleGenerate wires six oscillators on a 4×4 lattice. The seed
// freezes the whole run: placements, spanning choices, and density
// trials all replay identically.
func ExampleGenerate() {
	grid, _ := hexgrid.New(4, 4)

	g, err := generate.Generate(grid, 6,
		generate.WithSeed(42),
		generate.WithEdgeProbability(0.30),
	)
	if err != nil {
		fmt.Println("generate:", err)
		return
	}

	fmt.Println("nodes:    ", g.NumNodes())
	fmt.Println("connected:", g.Connected())

	capped := true
	for label := 0; label < g.NumNodes(); label++ {
		if deg, _ := g.Degree(label); deg > rograph.MaxDegree {
			capped = false
		}
	}
	fmt.Println("degree ≤ 6:", capped)
	// Output:
	// nodes:     6
	// connected: true
	// degree ≤ 6: true
}

////////////////////////////////////////////////////////////////////////////////
// Example: capacity policy
////////////////////////////////////////////////////////////////////////////////

// ExampleGenerate_capacity shows the two capacity bounds side by side.
func ExampleGenerate_capacity() {
	grid, _ := hexgrid.New(2, 2)

	// Inclusive default: a full grid is a legal request.
	_, err := generate.Generate(grid, 4, generate.WithSeed(1))
	fmt.Println("inclusive, 4 of 4:", err == nil)

	// Strict bound: one cell must stay free.
	_, err = generate.Generate(grid, 4, generate.WithSeed(1), generate.WithStrictCapacity())
	fmt.Println("strict, 4 of 4:   ", err == nil)
	// Output:
	// inclusive, 4 of 4: true
	// strict, 4 of 4:    false
}
