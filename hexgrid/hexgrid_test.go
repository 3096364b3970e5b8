package hexgrid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/ronet/hexgrid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects degenerate extents.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		err        error
	}{
		{"ZeroRows", 0, 4, hexgrid.ErrEmptyGrid},
		{"ZeroCols", 4, 0, hexgrid.ErrEmptyGrid},
		{"Negative", -1, -1, hexgrid.ErrEmptyGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hexgrid.New(tc.rows, tc.cols)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d,%d) error = %v; want %v", tc.rows, tc.cols, err, tc.err)
			}
		})
	}
}

// TestInBounds checks boundary acceptance on a 3×4 grid.
func TestInBounds(t *testing.T) {
	g, err := hexgrid.New(3, 4)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	valid := []hexgrid.Cell{{Row: 0, Col: 0}, {Row: 2, Col: 3}, {Row: 1, Col: 2}}
	for _, c := range valid {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	invalid := []hexgrid.Cell{{Row: -1, Col: 0}, {Row: 3, Col: 0}, {Row: 0, Col: 4}, {Row: 0, Col: -1}}
	for _, c := range invalid {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
	}
}

// TestIndexRoundTrip checks Index/CellAt over every cell of a 3×5 grid.
func TestIndexRoundTrip(t *testing.T) {
	g, _ := hexgrid.New(3, 5)
	for i, c := range g.Cells() {
		if got := g.Index(c); got != i {
			t.Errorf("Index(%v) = %d; want %d", c, got, i)
		}
		if got := g.CellAt(i); got != c {
			t.Errorf("CellAt(%d) = %v; want %v", i, got, c)
		}
	}
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

// TestNeighbors_RowParity pins the full neighbor sets of an interior
// even-row cell and an interior odd-row cell on a 5×5 grid.
func TestNeighbors_RowParity(t *testing.T) {
	g, _ := hexgrid.New(5, 5)

	cases := []struct {
		name string
		at   hexgrid.Cell
		want []hexgrid.Cell
	}{
		{
			name: "EvenRow",
			at:   hexgrid.Cell{Row: 2, Col: 2},
			want: []hexgrid.Cell{
				{Row: 2, Col: 1}, {Row: 2, Col: 3},
				{Row: 1, Col: 1}, {Row: 1, Col: 2},
				{Row: 3, Col: 1}, {Row: 3, Col: 2},
			},
		},
		{
			name: "OddRow",
			at:   hexgrid.Cell{Row: 1, Col: 2},
			want: []hexgrid.Cell{
				{Row: 1, Col: 1}, {Row: 1, Col: 3},
				{Row: 0, Col: 2}, {Row: 0, Col: 3},
				{Row: 2, Col: 2}, {Row: 2, Col: 3},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := g.Neighbors(tc.at)
			if len(got) != len(tc.want) {
				t.Fatalf("Neighbors(%v) = %v; want %v", tc.at, got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("Neighbors(%v)[%d] = %v; want %v", tc.at, i, got[i], tc.want[i])
				}
			}
		})
	}
}

// TestNeighbors_Clipping verifies corner clipping and degenerate grids.
func TestNeighbors_Clipping(t *testing.T) {
	g, _ := hexgrid.New(3, 3)
	if got := len(g.Neighbors(hexgrid.Cell{Row: 0, Col: 0})); got != 2 {
		t.Errorf("corner (0,0) neighbor count = %d; want 2", got)
	}

	// Single-cell grid: no neighbors, no panic.
	one, _ := hexgrid.New(1, 1)
	if got := len(one.Neighbors(hexgrid.Cell{})); got != 0 {
		t.Errorf("1x1 neighbor count = %d; want 0", got)
	}

	// Single row: only same-row neighbors survive the clip.
	row, _ := hexgrid.New(1, 4)
	got := row.Neighbors(hexgrid.Cell{Row: 0, Col: 1})
	want := []hexgrid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 2}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("1x4 Neighbors(0,1) = %v; want %v", got, want)
	}
}

// TestNeighbors_Symmetry asserts b∈N(a) ⇔ a∈N(b) over a whole 4×6 grid.
func TestNeighbors_Symmetry(t *testing.T) {
	g, _ := hexgrid.New(4, 6)
	for _, a := range g.Cells() {
		for _, b := range g.Neighbors(a) {
			back := false
			for _, n := range g.Neighbors(b) {
				if n == a {
					back = true
					break
				}
			}
			if !back {
				t.Errorf("asymmetric adjacency: %v∈N(%v) but %v∉N(%v)", b, a, a, b)
			}
		}
	}
}

// TestAdjacent cross-checks Adjacent against Neighbors membership.
func TestAdjacent(t *testing.T) {
	g, _ := hexgrid.New(3, 3)
	a := hexgrid.Cell{Row: 1, Col: 1}
	for _, n := range g.Neighbors(a) {
		if !g.Adjacent(a, n) {
			t.Errorf("Adjacent(%v,%v)=false; want true", a, n)
		}
	}
	if g.Adjacent(a, a) {
		t.Error("Adjacent(a,a)=true; want false")
	}
	if g.Adjacent(a, hexgrid.Cell{Row: 1, Col: 3}) {
		t.Error("Adjacent across bounds = true; want false")
	}
	// (1,1) is odd-row: (2,0) is not among its candidates.
	if g.Adjacent(a, hexgrid.Cell{Row: 2, Col: 0}) {
		t.Error("Adjacent(1,1 / 2,0)=true; want false")
	}
}

//----------------------------------------------------------------------------//
// CanonicalPairs Tests
//----------------------------------------------------------------------------//

// TestCanonicalPairs_Count3x3 checks the canonical enumeration against
// the halved neighbor-degree sum on a 3×3 grid (each undirected
// adjacency must appear exactly once).
func TestCanonicalPairs_Count3x3(t *testing.T) {
	g, _ := hexgrid.New(3, 3)

	sum := 0
	for _, c := range g.Cells() {
		sum += len(g.Neighbors(c))
	}
	want := sum / 2

	pairs := g.CanonicalPairs()
	if len(pairs) != want {
		t.Fatalf("CanonicalPairs count = %d; want %d", len(pairs), want)
	}

	seen := make(map[hexgrid.Pair]bool, len(pairs))
	for _, p := range pairs {
		if !p.A.Less(p.B) {
			t.Errorf("pair %v not in canonical orientation", p)
		}
		if !g.Adjacent(p.A, p.B) {
			t.Errorf("pair %v endpoints not adjacent", p)
		}
		if seen[p] {
			t.Errorf("duplicate pair %v", p)
		}
		seen[p] = true
	}
}

// TestCanonicalPairs_Sorted verifies the documented output order.
func TestCanonicalPairs_Sorted(t *testing.T) {
	g, _ := hexgrid.New(4, 4)
	pairs := g.CanonicalPairs()
	for i := 1; i < len(pairs); i++ {
		prev, cur := pairs[i-1], pairs[i]
		if cur.A.Less(prev.A) || (cur.A == prev.A && cur.B.Less(prev.B)) {
			t.Fatalf("pairs out of order at %d: %v before %v", i, prev, cur)
		}
	}
}

//----------------------------------------------------------------------------//
// Layout Tests
//----------------------------------------------------------------------------//

// TestLayoutXY pins the plane embedding of representative cells.
func TestLayoutXY(t *testing.T) {
	sqrt3 := math.Sqrt(3)
	cases := []struct {
		at   hexgrid.Cell
		x, y float64
	}{
		{hexgrid.Cell{Row: 0, Col: 0}, 0, 0},
		{hexgrid.Cell{Row: 0, Col: 2}, 2 * sqrt3, 0},
		{hexgrid.Cell{Row: 1, Col: 0}, sqrt3 / 2, 1.5},
		{hexgrid.Cell{Row: 2, Col: 1}, sqrt3, 3},
	}
	for _, tc := range cases {
		x, y := hexgrid.LayoutXY(tc.at)
		if math.Abs(x-tc.x) > 1e-12 || math.Abs(y-tc.y) > 1e-12 {
			t.Errorf("LayoutXY(%v) = (%g,%g); want (%g,%g)", tc.at, x, y, tc.x, tc.y)
		}
	}
}

// TestLayoutDistance checks symmetry and the unit neighbor distance.
func TestLayoutDistance(t *testing.T) {
	a := hexgrid.Cell{Row: 0, Col: 0}
	b := hexgrid.Cell{Row: 0, Col: 1}
	d := hexgrid.LayoutDistance(a, b)
	if math.Abs(d-math.Sqrt(3)) > 1e-12 {
		t.Errorf("LayoutDistance(same row) = %g; want √3", d)
	}
	if hexgrid.LayoutDistance(a, b) != hexgrid.LayoutDistance(b, a) {
		t.Error("LayoutDistance not symmetric")
	}
}
