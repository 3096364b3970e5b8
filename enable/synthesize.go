package enable

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ronet/hexgrid"
	"github.com/katalvlaran/ronet/rograph"
)

// Synthesize projects g onto grid as a total enable Bitmap.
//
// Rules, applied over the whole lattice (not just occupied sites):
//
//   - Cells[c] = true iff some node's cell equals c.
//   - Pairs[p] = true iff both endpoints of p are occupied AND an edge
//     connects the two occupying nodes.
//
// The orphan-pair invariant (enabled pair ⇒ both endpoint cells
// enabled) is asserted before returning; a violation yields
// ErrOrphanPair and no bitmap.
//
// Complexity: O(Rows×Cols) time and memory.
func Synthesize(grid hexgrid.Grid, g *rograph.Graph) (*Bitmap, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Grid() != grid {
		return nil, fmt.Errorf("enable: graph grid %dx%d vs %dx%d: %w",
			g.Grid().Rows, g.Grid().Cols, grid.Rows, grid.Cols, ErrGridMismatch)
	}

	bm := newBitmap(grid)
	for c := range bm.Cells {
		if _, occupied := g.NodeAt(c); occupied {
			bm.Cells[c] = true
		}
	}
	for p := range bm.Pairs {
		u, okA := g.NodeAt(p.A)
		v, okB := g.NodeAt(p.B)
		bm.Pairs[p] = okA && okB && g.HasEdge(u, v)
	}

	// Hard invariant, checked at synthesis time per the data contract.
	for p, on := range bm.Pairs {
		if on && (!bm.Cells[p.A] || !bm.Cells[p.B]) {
			return nil, fmt.Errorf("enable: pair %s: %w", p, ErrOrphanPair)
		}
	}
	return bm, nil
}

// ReconstructEdges recovers the wired edge set encoded by bm, using g
// only as the cell→label directory. For a bitmap synthesized from g the
// result equals g.Edges() minus flagged repair edges.
// Complexity: O(Rows×Cols + E log E).
func ReconstructEdges(g *rograph.Graph, bm *Bitmap) ([]rograph.Edge, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	var out []rograph.Edge
	for _, p := range bm.ActivePairs() {
		u, okA := g.NodeAt(p.A)
		v, okB := g.NodeAt(p.B)
		if !okA || !okB {
			return nil, fmt.Errorf("enable: pair %s has no occupants: %w", p, ErrOrphanPair)
		}
		out = append(out, rograph.NewEdge(u, v))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})
	return out, nil
}
