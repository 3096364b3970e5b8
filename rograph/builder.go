package rograph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ronet/hexgrid"
)

// Builder assembles a Graph incrementally. It is the only construction
// path: every structural rule is enforced at insertion time, so a
// successfully built Graph needs no re-validation downstream.
//
// A Builder is single-goroutine (generation is synchronous);
// the Graph it produces is safe to share.
type Builder struct {
	grid   hexgrid.Grid
	cells  []hexgrid.Cell
	byCell map[hexgrid.Cell]int
	adj    []map[int]struct{}
	degree []int
	repair map[Edge]struct{}
}

// NewBuilder returns an empty Builder over grid.
func NewBuilder(grid hexgrid.Grid) *Builder {
	return &Builder{
		grid:   grid,
		byCell: make(map[hexgrid.Cell]int),
		repair: make(map[Edge]struct{}),
	}
}

// AddNode binds the next dense label to cell and returns that label.
// Returns ErrCellOutOfBounds or ErrCellOccupied on invalid placement.
// Complexity: O(1) expected.
func (b *Builder) AddNode(cell hexgrid.Cell) (int, error) {
	if !b.grid.InBounds(cell) {
		return 0, fmt.Errorf("rograph: cell %s: %w", cell, ErrCellOutOfBounds)
	}
	if prev, taken := b.byCell[cell]; taken {
		return 0, fmt.Errorf("rograph: cell %s held by node %d: %w", cell, prev, ErrCellOccupied)
	}
	label := len(b.cells)
	b.cells = append(b.cells, cell)
	b.byCell[cell] = label
	b.adj = append(b.adj, make(map[int]struct{}, MaxDegree))
	b.degree = append(b.degree, 0)
	return label, nil
}

// NumNodes returns the labels assigned so far.
func (b *Builder) NumNodes() int { return len(b.cells) }

// CellOf returns the cell bound to label, or ErrNodeNotFound.
func (b *Builder) CellOf(label int) (hexgrid.Cell, error) {
	if label < 0 || label >= len(b.cells) {
		return hexgrid.Cell{}, fmt.Errorf("rograph: label %d: %w", label, ErrNodeNotFound)
	}
	return b.cells[label], nil
}

// NodeAt returns the label occupying cell, if any.
func (b *Builder) NodeAt(cell hexgrid.Cell) (label int, ok bool) {
	label, ok = b.byCell[cell]
	return label, ok
}

// Degree returns the current coupling count of label.
func (b *Builder) Degree(label int) (int, error) {
	if label < 0 || label >= len(b.degree) {
		return 0, fmt.Errorf("rograph: label %d: %w", label, ErrNodeNotFound)
	}
	return b.degree[label], nil
}

// HasSpareDegree reports whether label can accept one more edge.
// Unknown labels report false.
func (b *Builder) HasSpareDegree(label int) bool {
	return label >= 0 && label < len(b.degree) && b.degree[label] < MaxDegree
}

// HasEdge reports whether the unordered pair {u, v} is already wired.
func (b *Builder) HasEdge(u, v int) bool {
	if u < 0 || u >= len(b.adj) {
		return false
	}
	_, ok := b.adj[u][v]
	return ok
}

// AddEdge wires the unordered pair {u, v}. Checks, in order: labels
// exist, no self-loop, no duplicate, both degrees below MaxDegree, and
// the endpoint cells hex-adjacent.
// Complexity: O(1) expected.
func (b *Builder) AddEdge(u, v int) error {
	return b.addEdge(u, v, false)
}

// AddRepairEdge wires {u, v} skipping only the hex-adjacency check.
// This is the last-resort connectivity repair of the safe generation
// policy; the edge is flagged so consumers can tell it apart.
// All other rules (loops, duplicates, degree cap) still apply.
func (b *Builder) AddRepairEdge(u, v int) error {
	return b.addEdge(u, v, true)
}

func (b *Builder) addEdge(u, v int, asRepair bool) error {
	if u < 0 || u >= len(b.cells) {
		return fmt.Errorf("rograph: label %d: %w", u, ErrNodeNotFound)
	}
	if v < 0 || v >= len(b.cells) {
		return fmt.Errorf("rograph: label %d: %w", v, ErrNodeNotFound)
	}
	if u == v {
		return fmt.Errorf("rograph: %d--%d: %w", u, v, ErrLoopNotAllowed)
	}
	if b.HasEdge(u, v) {
		return fmt.Errorf("rograph: %d--%d: %w", u, v, ErrDuplicateEdge)
	}
	if b.degree[u] >= MaxDegree {
		return fmt.Errorf("rograph: node %d at cap %d: %w", u, MaxDegree, ErrDegreeLimit)
	}
	if b.degree[v] >= MaxDegree {
		return fmt.Errorf("rograph: node %d at cap %d: %w", v, MaxDegree, ErrDegreeLimit)
	}
	if !asRepair && !b.grid.Adjacent(b.cells[u], b.cells[v]) {
		return fmt.Errorf("rograph: %s / %s: %w", b.cells[u], b.cells[v], ErrNotAdjacent)
	}

	b.adj[u][v] = struct{}{}
	b.adj[v][u] = struct{}{}
	b.degree[u]++
	b.degree[v]++
	if asRepair {
		b.repair[NewEdge(u, v)] = struct{}{}
	}
	return nil
}

// Build freezes the builder into an immutable Graph. It refuses to
// expose an empty or disconnected graph (ErrEmptyGraph,
// ErrDisconnected). The Builder must not be used after a successful
// Build.
// Complexity: O(V+E) for the connectivity sweep plus O(E log E) sort.
func (b *Builder) Build() (*Graph, error) {
	if len(b.cells) == 0 {
		return nil, ErrEmptyGraph
	}

	g := &Graph{
		grid:   b.grid,
		cells:  b.cells,
		byCell: b.byCell,
		adj:    b.adj,
		degree: b.degree,
		repair: b.repair,
		edges:  collectEdges(b.adj),
	}
	if order := g.ReachOrder(0); len(order) != g.NumNodes() {
		return nil, fmt.Errorf("rograph: reached %d of %d nodes: %w",
			len(order), g.NumNodes(), ErrDisconnected)
	}
	return g, nil
}

// collectEdges derives the canonical sorted edge list from adjacency.
func collectEdges(adj []map[int]struct{}) []Edge {
	var out []Edge
	for u := range adj {
		for v := range adj[u] {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})
	return out
}
