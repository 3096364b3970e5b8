package hexgrid

import "sort"

// neighborCandidates returns the six unclipped hex neighbor coordinates
// of c under the row-parity rule. Candidate order is fixed: the two
// same-row cells first, then the row above, then the row below.
func neighborCandidates(c Cell) [6]Cell {
	r, col := c.Row, c.Col
	if r%2 == 0 { // even row
		return [6]Cell{
			{r, col - 1}, {r, col + 1},
			{r - 1, col - 1}, {r - 1, col},
			{r + 1, col - 1}, {r + 1, col},
		}
	}
	// odd row
	return [6]Cell{
		{r, col - 1}, {r, col + 1},
		{r - 1, col}, {r - 1, col + 1},
		{r + 1, col}, {r + 1, col + 1},
	}
}

// Neighbors returns the up-to-6 cells hex-adjacent to c, clipped to the
// grid bounds, in the fixed candidate order. The relation is symmetric:
// b ∈ Neighbors(a) ⇔ a ∈ Neighbors(b). Total and deterministic for every
// in-range cell; never empty on grids with more than one cell reachable,
// and never panics even for out-of-range input (the clip handles it).
// Complexity: O(1) time, O(1) memory.
func (g Grid) Neighbors(c Cell) []Cell {
	cand := neighborCandidates(c)
	out := make([]Cell, 0, 6)
	for _, n := range cand {
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Adjacent reports whether a and b are distinct hex-adjacent in-bounds
// cells. Complexity: O(1).
func (g Grid) Adjacent(a, b Cell) bool {
	if a == b || !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	for _, n := range neighborCandidates(a) {
		if n == b {
			return true
		}
	}
	return false
}

// Canonical returns the Pair for {a, b} in canonical orientation
// (row-major smaller cell first). The caller is responsible for a and b
// actually being adjacent; Canonical itself only fixes orientation.
// Complexity: O(1).
func Canonical(a, b Cell) Pair {
	if b.Less(a) {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// CanonicalPairs enumerates every undirected hex-adjacent cell pair of
// the grid exactly once, sorted lexicographically by (A, B). Each
// physical coupling site therefore appears exactly once, in one fixed
// orientation. The count equals half the sum of len(Neighbors(c)) over
// all cells.
// Complexity: O(Rows×Cols) time and memory (≤ 3 pairs per cell).
func (g Grid) CanonicalPairs() []Pair {
	seen := make(map[Pair]struct{}, 3*g.NumCells())
	out := make([]Pair, 0, 3*g.NumCells())
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cell := Cell{Row: r, Col: c}
			for _, n := range g.Neighbors(cell) {
				p := Canonical(cell, n)
				if _, dup := seen[p]; dup {
					continue
				}
				seen[p] = struct{}{}
				out = append(out, p)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })
	return out
}
