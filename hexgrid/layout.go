package hexgrid

import "math"

// Plane embedding constants for a unit pointy-top hexagon.
const (
	// colPitch is the horizontal distance between cell centers: √3.
	colPitch = 1.7320508075688772
	// rowPitch is the vertical distance between row centers: 3/2.
	rowPitch = 1.5
)

// LayoutXY converts a cell to 2-D plane coordinates for presentation
// layers (plotting, GUIs). Odd rows are shifted right by half a column
// pitch, producing the staggered hexagonal look:
//
//	x = Col·√3 + (Row mod 2)·(√3/2)
//	y = Row·3/2
//
// The core invariants never depend on this embedding.
// Complexity: O(1).
func LayoutXY(c Cell) (x, y float64) {
	x = float64(c.Col)*colPitch + float64(c.Row%2)*(colPitch/2)
	y = float64(c.Row) * rowPitch
	return x, y
}

// LayoutDistance returns the Euclidean plane distance between the
// centers of two cells under LayoutXY. Used as the tie-break metric for
// last-resort repair edges during generation.
// Complexity: O(1).
func LayoutDistance(a, b Cell) float64 {
	ax, ay := LayoutXY(a)
	bx, by := LayoutXY(b)
	return math.Hypot(ax-bx, ay-by)
}
