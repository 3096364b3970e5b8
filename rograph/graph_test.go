package rograph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/ronet/hexgrid"
	"github.com/katalvlaran/ronet/rograph"
)

// grid3x3 builds the shared 3×3 test lattice.
func grid3x3(t *testing.T) hexgrid.Grid {
	t.Helper()
	g, err := hexgrid.New(3, 3)
	if err != nil {
		t.Fatalf("hexgrid.New: %v", err)
	}
	return g
}

//----------------------------------------------------------------------------//
// Builder node tests
//----------------------------------------------------------------------------//

// TestBuilder_AddNode verifies dense labeling and placement rules.
func TestBuilder_AddNode(t *testing.T) {
	b := rograph.NewBuilder(grid3x3(t))

	l0, err := b.AddNode(hexgrid.Cell{Row: 0, Col: 0})
	if err != nil || l0 != 0 {
		t.Fatalf("AddNode #1 = (%d,%v); want (0,nil)", l0, err)
	}
	l1, err := b.AddNode(hexgrid.Cell{Row: 0, Col: 1})
	if err != nil || l1 != 1 {
		t.Fatalf("AddNode #2 = (%d,%v); want (1,nil)", l1, err)
	}

	if _, err = b.AddNode(hexgrid.Cell{Row: 0, Col: 0}); !errors.Is(err, rograph.ErrCellOccupied) {
		t.Errorf("occupied cell error = %v; want ErrCellOccupied", err)
	}
	if _, err = b.AddNode(hexgrid.Cell{Row: 3, Col: 0}); !errors.Is(err, rograph.ErrCellOutOfBounds) {
		t.Errorf("out-of-bounds error = %v; want ErrCellOutOfBounds", err)
	}
}

//----------------------------------------------------------------------------//
// Builder edge tests
//----------------------------------------------------------------------------//

// TestBuilder_AddEdge_Rules walks every edge rejection rule in order.
func TestBuilder_AddEdge_Rules(t *testing.T) {
	b := rograph.NewBuilder(grid3x3(t))
	// (0,0) and (0,1) are adjacent; (0,0) and (2,2) are not.
	a, _ := b.AddNode(hexgrid.Cell{Row: 0, Col: 0})
	c, _ := b.AddNode(hexgrid.Cell{Row: 0, Col: 1})
	far, _ := b.AddNode(hexgrid.Cell{Row: 2, Col: 2})

	if err := b.AddEdge(a, 99); !errors.Is(err, rograph.ErrNodeNotFound) {
		t.Errorf("unknown label error = %v; want ErrNodeNotFound", err)
	}
	if err := b.AddEdge(a, a); !errors.Is(err, rograph.ErrLoopNotAllowed) {
		t.Errorf("loop error = %v; want ErrLoopNotAllowed", err)
	}
	if err := b.AddEdge(a, far); !errors.Is(err, rograph.ErrNotAdjacent) {
		t.Errorf("non-adjacent error = %v; want ErrNotAdjacent", err)
	}

	if err := b.AddEdge(a, c); err != nil {
		t.Fatalf("valid AddEdge: %v", err)
	}
	if err := b.AddEdge(c, a); !errors.Is(err, rograph.ErrDuplicateEdge) {
		t.Errorf("duplicate error = %v; want ErrDuplicateEdge", err)
	}
}

// TestBuilder_DegreeCap saturates the interior cell of a 3×3 grid with
// its six neighbors and checks that a seventh coupling is impossible.
func TestBuilder_DegreeCap(t *testing.T) {
	g := grid3x3(t)
	b := rograph.NewBuilder(g)

	center := hexgrid.Cell{Row: 1, Col: 1}
	hub, _ := b.AddNode(center)
	nbrs := g.Neighbors(center)
	if len(nbrs) != 6 {
		t.Fatalf("interior cell has %d neighbors; want 6", len(nbrs))
	}
	for _, cell := range nbrs {
		l, err := b.AddNode(cell)
		if err != nil {
			t.Fatalf("AddNode(%v): %v", cell, err)
		}
		if err = b.AddEdge(hub, l); err != nil {
			t.Fatalf("AddEdge(hub,%d): %v", l, err)
		}
	}
	if deg, _ := b.Degree(hub); deg != rograph.MaxDegree {
		t.Fatalf("hub degree = %d; want %d", deg, rograph.MaxDegree)
	}
	if b.HasSpareDegree(hub) {
		t.Error("HasSpareDegree(hub)=true at cap")
	}

	// A seventh edge must fail on the cap even via the repair path.
	extra, _ := b.AddNode(hexgrid.Cell{Row: 2, Col: 2})
	if err := b.AddRepairEdge(hub, extra); !errors.Is(err, rograph.ErrDegreeLimit) {
		t.Errorf("over-cap repair error = %v; want ErrDegreeLimit", err)
	}
}

// TestBuilder_RepairEdge verifies the adjacency exemption and the flag.
func TestBuilder_RepairEdge(t *testing.T) {
	b := rograph.NewBuilder(grid3x3(t))
	a, _ := b.AddNode(hexgrid.Cell{Row: 0, Col: 0})
	z, _ := b.AddNode(hexgrid.Cell{Row: 2, Col: 2})

	if err := b.AddRepairEdge(a, z); err != nil {
		t.Fatalf("AddRepairEdge: %v", err)
	}
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	e := rograph.NewEdge(a, z)
	if !g.IsRepair(e) {
		t.Errorf("IsRepair(%v)=false; want true", e)
	}
	if !g.HasEdge(z, a) {
		t.Error("repair edge not visible via HasEdge")
	}
}

//----------------------------------------------------------------------------//
// Build and traversal tests
//----------------------------------------------------------------------------//

// TestBuild_Disconnected ensures a two-component graph is never exposed.
func TestBuild_Disconnected(t *testing.T) {
	b := rograph.NewBuilder(grid3x3(t))
	_, _ = b.AddNode(hexgrid.Cell{Row: 0, Col: 0})
	_, _ = b.AddNode(hexgrid.Cell{Row: 2, Col: 2})

	if _, err := b.Build(); !errors.Is(err, rograph.ErrDisconnected) {
		t.Errorf("Build error = %v; want ErrDisconnected", err)
	}
}

// TestBuild_Empty ensures Build rejects a node-less builder.
func TestBuild_Empty(t *testing.T) {
	b := rograph.NewBuilder(grid3x3(t))
	if _, err := b.Build(); !errors.Is(err, rograph.ErrEmptyGraph) {
		t.Errorf("Build error = %v; want ErrEmptyGraph", err)
	}
}

// TestGraph_Accessors builds a small path and checks the read side.
func TestGraph_Accessors(t *testing.T) {
	b := rograph.NewBuilder(grid3x3(t))
	c0 := hexgrid.Cell{Row: 0, Col: 0}
	c1 := hexgrid.Cell{Row: 0, Col: 1}
	c2 := hexgrid.Cell{Row: 1, Col: 1} // adjacent to (0,1): odd-row rule from (1,1) covers (0,1)
	n0, _ := b.AddNode(c0)
	n1, _ := b.AddNode(c1)
	n2, _ := b.AddNode(c2)
	if err := b.AddEdge(n0, n1); err != nil {
		t.Fatalf("AddEdge(0,1): %v", err)
	}
	if err := b.AddEdge(n1, n2); err != nil {
		t.Fatalf("AddEdge(1,2): %v", err)
	}

	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if g.NumNodes() != 3 || g.NumEdges() != 2 {
		t.Fatalf("size = (%d nodes, %d edges); want (3, 2)", g.NumNodes(), g.NumEdges())
	}
	if cell, _ := g.CellOf(n2); cell != c2 {
		t.Errorf("CellOf(%d) = %v; want %v", n2, cell, c2)
	}
	if label, ok := g.NodeAt(c1); !ok || label != n1 {
		t.Errorf("NodeAt(%v) = (%d,%v); want (%d,true)", c1, label, ok, n1)
	}
	if _, err = g.CellOf(7); !errors.Is(err, rograph.ErrNodeNotFound) {
		t.Errorf("CellOf(7) error = %v; want ErrNodeNotFound", err)
	}

	wantEdges := []rograph.Edge{{U: 0, V: 1}, {U: 1, V: 2}}
	gotEdges := g.Edges()
	if len(gotEdges) != len(wantEdges) {
		t.Fatalf("Edges = %v; want %v", gotEdges, wantEdges)
	}
	for i := range wantEdges {
		if gotEdges[i] != wantEdges[i] {
			t.Errorf("Edges[%d] = %v; want %v", i, gotEdges[i], wantEdges[i])
		}
	}
}

// TestReachOrder verifies deterministic BFS order on a path graph.
func TestReachOrder(t *testing.T) {
	b := rograph.NewBuilder(grid3x3(t))
	n0, _ := b.AddNode(hexgrid.Cell{Row: 0, Col: 0})
	n1, _ := b.AddNode(hexgrid.Cell{Row: 0, Col: 1})
	n2, _ := b.AddNode(hexgrid.Cell{Row: 1, Col: 1})
	_ = b.AddEdge(n0, n1)
	_ = b.AddEdge(n1, n2)
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := []int{1, 0, 2}
	got := g.ReachOrder(n1)
	if len(got) != len(want) {
		t.Fatalf("ReachOrder(%d) = %v; want %v", n1, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ReachOrder[%d] = %d; want %d", i, got[i], want[i])
		}
	}
	if !g.Connected() {
		t.Error("Connected()=false on a path graph")
	}
	if g.ReachOrder(-1) != nil {
		t.Error("ReachOrder(-1) should be nil")
	}
}
