// SPDX-License-Identifier: MIT
// Package: ronet/generate
//
// generate.go — implementation of Generate(grid, numNodes, opts...).
//
// Canonical model (consolidates the five historical generator variants):
//   - Phase 1, placement: numNodes distinct cells drawn uniformly
//     without replacement from the grid; labels 0..numNodes-1 follow
//     sampling order.
//   - Phase 2, spanning: incremental connectivity. The first remaining
//     node is attached to a uniformly chosen visited node that is
//     hex-adjacent and below the degree cap. Dead ends are handled by
//     the configured failure policy (safe repair by default, bounded
//     restart via WithRestartPolicy).
//   - Phase 3, densification: every ordered pair of distinct,
//     hex-adjacent, not-yet-connected nodes receives an independent
//     Bernoulli(p) trial, still honoring the cap and dedup rules.
//
// Contract:
//   - numNodes ≥ 1 (else ErrTooFewNodes).
//   - numNodes within grid capacity per the configured bound
//     (else ErrCapacity), checked before any structure is built.
//   - p ∈ [0,1] (else ErrInvalidProbability).
//   - cfg.rng non-nil (else ErrNeedRandSource); sampling is always
//     stochastic.
//   - Returns only sentinel errors; never panics at runtime.
//   - The returned graph is connected, degree-capped, and edge-adjacent
//     (repair edges excepted and flagged).
//
// Complexity:
//   - Time per attempt: O(Rows×Cols) sampling + O(numNodes²) spanning
//     candidate scans + O(numNodes²) densification trials.
//   - Space: O(Rows×Cols) for the permutation, O(numNodes) bookkeeping.
//
// Determinism:
//   - Stable scan orders everywhere; the only random draws are the cell
//     permutation, parent choice, adoption order, and Bernoulli trials,
//     all from the injected stream. Fixed seed ⇒ identical graph.

package generate

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/ronet/hexgrid"
	"github.com/katalvlaran/ronet/rograph"
)

// Probability domain bounds (no magic literals in checks).
const (
	probMin = 0.0
	probMax = 1.0
)

// errIsolated is the internal retryable marker for a spanning dead end
// under the restart policy. Never escapes Generate.
var errIsolated = errors.New("generate: geometric isolation")

// Generate samples a random connected oscillator graph on grid.
// See the package documentation for policies and determinism notes.
func Generate(grid hexgrid.Grid, numNodes int, opts ...Option) (*rograph.Graph, error) {
	cfg := newConfig(opts...)

	// Validation priority: size → capacity → probability → RNG.
	if numNodes < 1 {
		return nil, fmt.Errorf("generate: numNodes=%d: %w", numNodes, ErrTooFewNodes)
	}
	capacity := grid.NumCells()
	if cfg.strictCapacity {
		if numNodes >= capacity {
			return nil, fmt.Errorf("generate: numNodes=%d must be < %d cells: %w",
				numNodes, capacity, ErrCapacity)
		}
	} else if numNodes > capacity {
		return nil, fmt.Errorf("generate: numNodes=%d must be ≤ %d cells: %w",
			numNodes, capacity, ErrCapacity)
	}
	if cfg.edgeProbability < probMin || cfg.edgeProbability > probMax {
		return nil, fmt.Errorf("generate: p=%.6f not in [%.1f,%.1f]: %w",
			cfg.edgeProbability, probMin, probMax, ErrInvalidProbability)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("generate: %w", ErrNeedRandSource)
	}

	// One attempt under the safe policy; a bounded loop under restart.
	attempts := 1
	if cfg.restartAttempts > 0 {
		attempts = cfg.restartAttempts
	}
	for a := 0; a < attempts; a++ {
		g, err := attempt(grid, numNodes, cfg)
		switch {
		case err == nil:
			return g, nil
		case errors.Is(err, errIsolated):
			continue // resample from the same stream
		default:
			return nil, err
		}
	}
	return nil, fmt.Errorf("generate: %d attempt(s) ended in geometric isolation: %w",
		attempts, ErrConstructFailed)
}

// attempt runs one full placement→spanning→densification pass.
// Returns errIsolated (retryable) only under the restart policy.
func attempt(grid hexgrid.Grid, numNodes int, cfg config) (*rograph.Graph, error) {
	rng := cfg.rng
	b := rograph.NewBuilder(grid)

	// Phase 1 — placement. A prefix of a uniform permutation is a
	// uniform sample without replacement.
	perm := rng.Perm(grid.NumCells())
	for i := 0; i < numNodes; i++ {
		if _, err := b.AddNode(grid.CellAt(perm[i])); err != nil {
			return nil, fmt.Errorf("generate: place node %d: %w", i, err)
		}
	}

	// Phase 2 — spanning. visited grows by one node per iteration.
	visited := make([]int, 1, numNodes)
	visited[0] = 0
	inVisited := make([]bool, numNodes)
	inVisited[0] = true
	remaining := make([]int, 0, numNodes-1)
	for label := 1; label < numNodes; label++ {
		remaining = append(remaining, label)
	}

	for len(remaining) > 0 {
		next := remaining[0]
		nextCell, _ := b.CellOf(next)

		// Visited nodes that are hex-adjacent to next and below the cap.
		parents := adjacentParents(b, grid, visited, nextCell)
		if len(parents) > 0 {
			parent := parents[rng.Intn(len(parents))]
			if err := b.AddEdge(parent, next); err != nil {
				return nil, fmt.Errorf("generate: span %d--%d: %w", parent, next, err)
			}
			remaining = remaining[1:]
			visited = append(visited, next)
			inVisited[next] = true
			continue
		}

		// Dead end: no visited node can legally adopt next.
		if cfg.restartAttempts > 0 {
			return nil, errIsolated
		}

		// Safe policy, step 1: let a random visited node adopt any
		// hex-adjacent remaining node instead.
		if adopted, ok := adoptAny(b, grid, rng, visited, inVisited); ok {
			remaining = removeLabel(remaining, adopted)
			visited = append(visited, adopted)
			inVisited[adopted] = true
			continue
		}

		// Safe policy, step 2: force-connect next to the layout-nearest
		// visited node with spare degree. The edge is flagged as repair.
		nearest, found := nearestSpare(b, visited, nextCell)
		if !found {
			return nil, fmt.Errorf("generate: all visited nodes saturated: %w", ErrConstructFailed)
		}
		if err := b.AddRepairEdge(nearest, next); err != nil {
			return nil, fmt.Errorf("generate: repair %d--%d: %w", nearest, next, err)
		}
		remaining = remaining[1:]
		visited = append(visited, next)
		inVisited[next] = true
	}

	// Phase 3 — densification. Stable ordered-pair scan; each admissible
	// pair may be tried from both orientations, matching the historical
	// edge density.
	for u := 0; u < numNodes; u++ {
		uCell, _ := b.CellOf(u)
		for v := 0; v < numNodes; v++ {
			if u == v {
				continue
			}
			vCell, _ := b.CellOf(v)
			if !grid.Adjacent(uCell, vCell) {
				continue
			}
			if b.HasEdge(u, v) {
				continue
			}
			if rng.Float64() >= cfg.edgeProbability {
				continue
			}
			if err := b.AddEdge(u, v); err != nil {
				// The cap may veto a trial; anything else is a bug.
				if errors.Is(err, rograph.ErrDegreeLimit) {
					continue
				}
				return nil, fmt.Errorf("generate: densify %d--%d: %w", u, v, err)
			}
		}
	}

	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	return g, nil
}

// adjacentParents collects visited labels whose cell is hex-adjacent to
// cell and whose degree is below the cap, in visited order (stable, so
// the uniform index draw is reproducible).
func adjacentParents(b *rograph.Builder, grid hexgrid.Grid, visited []int, cell hexgrid.Cell) []int {
	var out []int
	for _, v := range visited {
		vCell, _ := b.CellOf(v)
		if grid.Adjacent(vCell, cell) && b.HasSpareDegree(v) {
			out = append(out, v)
		}
	}
	return out
}

// adoptAny visits the spare-degree visited nodes in a random order and
// connects the first one that has any hex-adjacent unvisited node.
// Returns the adopted label and whether adoption happened.
func adoptAny(b *rograph.Builder, grid hexgrid.Grid, rng *rand.Rand, visited []int, inVisited []bool) (int, bool) {
	pool := make([]int, 0, len(visited))
	for _, v := range visited {
		if b.HasSpareDegree(v) {
			pool = append(pool, v)
		}
	}
	for _, pi := range rng.Perm(len(pool)) {
		v := pool[pi]
		vCell, _ := b.CellOf(v)
		for _, nCell := range grid.Neighbors(vCell) {
			label, occupied := b.NodeAt(nCell)
			if !occupied || inVisited[label] {
				continue
			}
			if err := b.AddEdge(v, label); err != nil {
				continue // a saturated candidate; try the next site
			}
			return label, true
		}
	}
	return 0, false
}

// nearestSpare returns the visited label with spare degree whose cell is
// layout-nearest to cell (lowest label wins ties).
func nearestSpare(b *rograph.Builder, visited []int, cell hexgrid.Cell) (int, bool) {
	best, found := 0, false
	bestDist := 0.0
	for _, v := range visited {
		if !b.HasSpareDegree(v) {
			continue
		}
		vCell, _ := b.CellOf(v)
		d := hexgrid.LayoutDistance(vCell, cell)
		if !found || d < bestDist {
			best, bestDist, found = v, d, true
		}
	}
	return best, found
}

// removeLabel drops the first occurrence of label, preserving order.
func removeLabel(labels []int, label int) []int {
	for i, l := range labels {
		if l == label {
			return append(labels[:i], labels[i+1:]...)
		}
	}
	return labels
}
