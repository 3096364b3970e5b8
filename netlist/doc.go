// Package netlist writes, parses, and verifies the textual physical
// network description of the oscillator lattice.
//
// What:
//
//   - Write: emits the full fixed network as a `.subckt`: one
//     oscillator instance per cell (7 pins, enable, rails, RING_OSC
//     tag) and one coupling instance per direction of every canonical
//     hex-adjacent pair (enable, driver pin to listener pin, rails,
//     COUPLING tag). Both directions of a pair share the pair's single
//     canonical enable signal.
//   - WriteTestbench: wraps a network file and an enable bitmap into a
//     runnable simulation deck (Xdut, enable sources, rails, .control).
//   - Parse: reads any such deck back into a Deck of oscillator and
//     coupling records. Comment (`*`) and directive (`.`) lines are
//     skipped, as is anything the instance grammar does not recognize.
//     This is the lenient policy shared with package enable.
//   - Verify: five ordered structural checks against the hexgrid
//     oracle, each fatal on first failure: instance count, per-cell
//     port naming, adjacency completeness, coupling symmetry, and
//     pin-to-pin wiring direction. Verify never mutates the deck.
//
// Why:
//
//   - The network file is produced once per chip layout and everything
//     downstream trusts it; Verify is the gate that certifies it agrees
//     with the hex-grid model before any graph or bitmap is layered on.
//
// Complexity: all operations are O(Rows×Cols) in time and memory.
//
// Errors: ErrParse plus the per-check sentinels ErrInstanceCount,
// ErrPortNaming, ErrAdjacency, ErrSymmetry, ErrWiring.
package netlist
