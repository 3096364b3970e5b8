// Package ronet is a toolkit for designing coupled ring-oscillator
// networks on a hexagonal lattice — from the adjacency rule to a
// verified, simulation-ready netlist.
//
// 🚀 What is ronet?
//
//	A deterministic, seed-driven pipeline that brings together:
//		• Hex topology: row-parity neighbor rule, canonical pair
//		  enumeration, physical XY layout
//		• Random topologies: connected, degree-capped graph generation
//		  with pluggable failure policies
//		• Enable synthesis: per-oscillator and per-coupler switch
//		  bitmaps, round-trip safe
//		• Netlist I/O: network and testbench writers, lenient card
//		  parser, five-check structural verifier
//
// ✨ Why choose ronet?
//
//   - Reproducible – every random choice flows from one injected seed
//   - Honest errors – sentinel errors everywhere, no panics in
//     algorithms
//   - Verified output – the writer's decks pass the verifier they ship
//     with
//
// Everything is organized under five subpackages plus one command:
//
//	hexgrid/   — Cell, Pair, Grid, the neighbor rule & layout geometry
//	rograph/   — immutable degree-capped graph over grid cells
//	generate/  — seeded random connected topology generation
//	enable/    — enable bitmaps & their source-line format
//	netlist/   — network/testbench writers, parser, verifier
//	cmd/ronet  — the CLI gluing the pipeline together
//
// Quick ASCII example (2×2 grid, offset rows):
//
//	  (0,0)───(0,1)
//	    │    ╱   │
//	  (1,0)───(1,1)
//
//	four oscillators, five hex-adjacent pairs, ten directed couplers.
//
// Dive into the per-package docs for contracts, complexity and error
// semantics.
//
//	go get github.com/katalvlaran/ronet
package ronet
