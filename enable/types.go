// Package enable defines the Bitmap type and sentinel errors for the
// enable subpackage of github.com/katalvlaran/ronet.
package enable

import (
	"errors"
	"sort"

	"github.com/katalvlaran/ronet/hexgrid"
)

// Sentinel errors for enable operations.
var (
	// ErrNilGraph indicates a nil graph was passed to Synthesize.
	ErrNilGraph = errors.New("enable: graph is nil")

	// ErrGridMismatch indicates the graph was built against a different
	// grid extent than the one being synthesized.
	ErrGridMismatch = errors.New("enable: grid extent mismatch")

	// ErrOrphanPair indicates an enabled pair whose endpoint cell is
	// disabled. Structurally impossible through this package's API;
	// checked anyway because the invariant is load-bearing downstream.
	ErrOrphanPair = errors.New("enable: enabled pair with disabled endpoint")
)

// Bitmap is the total enable state of one lattice configuration:
// every cell and every canonical hex-adjacent pair has an entry,
// enabled or not. Derived once from a completed graph and immutable
// by convention thereafter.
type Bitmap struct {
	Grid  hexgrid.Grid
	Cells map[hexgrid.Cell]bool
	Pairs map[hexgrid.Pair]bool
}

// newBitmap allocates an all-false Bitmap covering grid.
func newBitmap(grid hexgrid.Grid) *Bitmap {
	bm := &Bitmap{
		Grid:  grid,
		Cells: make(map[hexgrid.Cell]bool, grid.NumCells()),
		Pairs: make(map[hexgrid.Pair]bool),
	}
	for _, c := range grid.Cells() {
		bm.Cells[c] = false
	}
	for _, p := range grid.CanonicalPairs() {
		bm.Pairs[p] = false
	}
	return bm
}

// ActiveCells returns the enabled cells in row-major order.
// Complexity: O(Rows×Cols).
func (bm *Bitmap) ActiveCells() []hexgrid.Cell {
	var out []hexgrid.Cell
	for c, on := range bm.Cells {
		if on {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// ActivePairs returns the enabled pairs sorted by (A, B).
// Complexity: O(Rows×Cols).
func (bm *Bitmap) ActivePairs() []hexgrid.Pair {
	var out []hexgrid.Pair
	for p, on := range bm.Pairs {
		if on {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A.Less(out[j].A)
		}
		return out[i].B.Less(out[j].B)
	})
	return out
}
