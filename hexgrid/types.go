// Package hexgrid defines core types and sentinel errors for the
// hexgrid subpackage of github.com/katalvlaran/ronet.
package hexgrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for hexgrid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("hexgrid: grid must have at least one row and one column")
)

// Cell identifies one physical oscillator site by its (Row, Col)
// coordinates. Cells are immutable values compared by equality.
type Cell struct {
	Row, Col int
}

// String renders the cell as "r,c" for diagnostics and error text.
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Less reports whether c precedes o in row-major order.
// This is the ordering used for canonical pairs and all sorted output.
// Complexity: O(1).
func (c Cell) Less(o Cell) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Pair is an unordered pair of hex-adjacent cells stored in canonical
// orientation: A precedes B in row-major order. Each physical coupling
// site is represented by exactly one Pair value.
type Pair struct {
	A, B Cell
}

// String renders the pair as "r1,c1--r2,c2".
func (p Pair) String() string {
	return fmt.Sprintf("%s--%s", p.A, p.B)
}

// less orders pairs lexicographically by (A, B); used for stable output.
func (p Pair) less(o Pair) bool {
	if p.A != o.A {
		return p.A.Less(o.A)
	}
	return p.B.Less(o.B)
}

// Grid is the (Rows, Cols) extent of the oscillator lattice. It owns no
// mutable state; all methods are pure.
type Grid struct {
	Rows, Cols int
}

// New validates the extent and returns a Grid.
// Returns ErrEmptyGrid when rows or cols is below 1.
// Complexity: O(1).
func New(rows, cols int) (Grid, error) {
	if rows < 1 || cols < 1 {
		return Grid{}, fmt.Errorf("hexgrid: %dx%d: %w", rows, cols, ErrEmptyGrid)
	}
	return Grid{Rows: rows, Cols: cols}, nil
}

// NumCells returns Rows×Cols, the capacity of the lattice.
// Complexity: O(1).
func (g Grid) NumCells() int {
	return g.Rows * g.Cols
}

// InBounds reports whether c lies within [0,Rows)×[0,Cols).
// Complexity: O(1).
func (g Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Index maps a cell to its row-major index: Row·Cols + Col.
// Complexity: O(1).
func (g Grid) Index(c Cell) int {
	return c.Row*g.Cols + c.Col
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (g Grid) CellAt(idx int) Cell {
	return Cell{Row: idx / g.Cols, Col: idx % g.Cols}
}

// Cells enumerates every cell of the grid in row-major order.
// Complexity: O(Rows×Cols) time and memory.
func (g Grid) Cells() []Cell {
	out := make([]Cell, 0, g.NumCells())
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			out = append(out, Cell{Row: r, Col: c})
		}
	}
	return out
}
