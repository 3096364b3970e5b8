// Package hexgrid models the fixed hexagonal lattice of ring-oscillator
// sites that every other package builds on.
//
// What:
//
//   - Cell: an immutable (Row, Col) coordinate on a Rows×Cols grid.
//   - Grid: the grid extent plus the row-parity hex adjacency rule.
//   - Pair: an unordered hex-adjacent cell pair in canonical orientation.
//   - LayoutXY: the pointy-top plane embedding used by presentation layers.
//
// Why:
//
//   - Graph generation: only hex-adjacent cells may be wired together.
//   - Enable synthesis: every cell and every canonical pair needs exactly
//     one switch, so enumeration order and deduplication must be fixed.
//   - Netlist verification: Neighbors is the oracle for the expected
//     coupling set of every oscillator.
//
// The adjacency rule is axial-offset, pointy-top: an even row reaches
// columns c-1..c in the rows above and below, an odd row reaches c..c+1.
// The relation is symmetric and total; border cells simply have fewer
// neighbors after clipping.
//
// Complexity:
//
//   - Neighbors:      O(1) time (at most 6 candidates), O(1) memory.
//   - CanonicalPairs: O(Rows×Cols) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: Rows or Cols below 1.
package hexgrid
