// Package enable projects a generated oscillator graph back onto the
// full lattice as enable bitmaps, and reads/writes the voltage-source
// text format that carries those bitmaps into a simulation deck.
//
// What:
//
//   - Bitmap: two total boolean maps — one entry per grid cell, one per
//     canonical hex-adjacent pair. A cell is enabled iff a node occupies
//     it; a pair is enabled iff both endpoint cells are occupied and an
//     edge connects those two nodes.
//   - Synthesize: derives a Bitmap from an immutable graph, checking the
//     orphan-pair invariant (an enabled pair with a disabled endpoint is
//     impossible and rejected at synthesis time, not left for the
//     verifier).
//   - ReconstructEdges: the round trip — recovers the wired edge set
//     from a Bitmap. For any synthesized bitmap it equals the graph's
//     edges minus flagged repair edges (no physical coupler exists
//     between non-adjacent cells, so repair edges have no pair to
//     enable).
//   - WriteSources / ParseSources: the `V_EN_RO_<r>_<c> <node> <ref>
//     <0|1>` and `V_EN_C_...` line format; parsing is deliberately
//     lenient — anything that does not match the grammar is skipped.
//
// Complexity: everything is O(Rows×Cols) time and memory.
//
// Errors: ErrNilGraph, ErrGridMismatch, ErrOrphanPair.
package enable
