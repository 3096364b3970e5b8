// Package rograph defines the Edge and Graph types and the sentinel
// errors shared by the builder and the accessors.
package rograph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/ronet/hexgrid"
)

// MaxDegree is the physical coupling limit of one oscillator cell:
// at most six neighbors on the hex lattice.
const MaxDegree = 6

// Sentinel errors for rograph operations.
var (
	// ErrNodeNotFound indicates a label outside [0, NumNodes).
	ErrNodeNotFound = errors.New("rograph: node not found")

	// ErrCellOutOfBounds indicates a node cell outside the grid extent.
	ErrCellOutOfBounds = errors.New("rograph: cell out of grid bounds")

	// ErrCellOccupied indicates two nodes assigned to the same cell.
	ErrCellOccupied = errors.New("rograph: cell already occupied")

	// ErrLoopNotAllowed indicates a self-edge attempt.
	ErrLoopNotAllowed = errors.New("rograph: self-loop not allowed")

	// ErrDuplicateEdge indicates the unordered pair is already wired.
	ErrDuplicateEdge = errors.New("rograph: duplicate edge")

	// ErrDegreeLimit indicates an endpoint already carries MaxDegree edges.
	ErrDegreeLimit = errors.New("rograph: degree limit exceeded")

	// ErrNotAdjacent indicates the endpoint cells are not hex-adjacent.
	ErrNotAdjacent = errors.New("rograph: cells not hex-adjacent")

	// ErrDisconnected indicates Build saw more than one reachability
	// component.
	ErrDisconnected = errors.New("rograph: graph is not connected")

	// ErrEmptyGraph indicates Build was called before any AddNode.
	ErrEmptyGraph = errors.New("rograph: graph has no nodes")
)

// Edge is an unordered pair of distinct node labels in canonical
// orientation (U < V). Compared by value.
type Edge struct {
	U, V int
}

// NewEdge returns the canonical Edge for {u, v}.
func NewEdge(u, v int) Edge {
	if v < u {
		u, v = v, u
	}
	return Edge{U: u, V: v}
}

// String renders the edge as "u--v".
func (e Edge) String() string {
	return fmt.Sprintf("%d--%d", e.U, e.V)
}

// Graph is the immutable oscillator-network graph produced by
// Builder.Build. All accessors are read-only and safe for concurrent use.
type Graph struct {
	grid   hexgrid.Grid
	cells  []hexgrid.Cell       // label → cell
	byCell map[hexgrid.Cell]int // cell → label
	adj    []map[int]struct{}   // label → neighbor label set
	degree []int
	edges  []Edge // canonical, sorted by (U, V)
	repair map[Edge]struct{}
}

// Grid returns the lattice extent the graph was built against.
func (g *Graph) Grid() hexgrid.Grid { return g.grid }

// NumNodes returns the node count; labels are dense in [0, NumNodes).
func (g *Graph) NumNodes() int { return len(g.cells) }

// CellOf returns the cell bound to label, or ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) CellOf(label int) (hexgrid.Cell, error) {
	if label < 0 || label >= len(g.cells) {
		return hexgrid.Cell{}, fmt.Errorf("rograph: label %d: %w", label, ErrNodeNotFound)
	}
	return g.cells[label], nil
}

// NodeAt returns the label occupying cell, if any.
// Complexity: O(1).
func (g *Graph) NodeAt(cell hexgrid.Cell) (label int, ok bool) {
	label, ok = g.byCell[cell]
	return label, ok
}

// Degree returns the coupling count of label, or ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) Degree(label int) (int, error) {
	if label < 0 || label >= len(g.degree) {
		return 0, fmt.Errorf("rograph: label %d: %w", label, ErrNodeNotFound)
	}
	return g.degree[label], nil
}

// HasEdge reports whether the unordered pair {u, v} is wired.
// Unknown labels simply report false.
// Complexity: O(1) expected.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= len(g.adj) {
		return false
	}
	_, ok := g.adj[u][v]
	return ok
}

// Edges returns the canonical edge list sorted by (U, V). The slice is
// a copy; callers may mutate it freely.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// NumEdges returns the edge count. Complexity: O(1).
func (g *Graph) NumEdges() int { return len(g.edges) }

// IsRepair reports whether e was inserted as a last-resort repair edge
// (its endpoint cells are not required to be hex-adjacent).
func (g *Graph) IsRepair(e Edge) bool {
	_, ok := g.repair[e]
	return ok
}

// Neighbors returns the sorted neighbor labels of label, or
// ErrNodeNotFound. Complexity: O(deg · log deg).
func (g *Graph) Neighbors(label int) ([]int, error) {
	if label < 0 || label >= len(g.adj) {
		return nil, fmt.Errorf("rograph: label %d: %w", label, ErrNodeNotFound)
	}
	out := make([]int, 0, len(g.adj[label]))
	for n := range g.adj[label] {
		out = append(out, n)
	}
	sort.Ints(out)
	return out, nil
}
