package netlist

import (
	"fmt"

	"github.com/katalvlaran/ronet/hexgrid"
)

// Check identifies one of the five ordered verification stages.
type Check uint8

const (
	// CheckInstanceCount: one oscillator per grid cell, no duplicates.
	CheckInstanceCount Check = iota
	// CheckPortNaming: every oscillator declares the fixed 7-pin list.
	CheckPortNaming
	// CheckAdjacency: every cell's coupling set equals its hex
	// neighbor set, no missing, no extra.
	CheckAdjacency
	// CheckSymmetry: every coupling has its reverse-direction twin.
	CheckSymmetry
	// CheckWiring: every coupling drives output pin 1 into input pin 3.
	CheckWiring
)

// String names the check for reports and CLI output.
func (c Check) String() string {
	switch c {
	case CheckInstanceCount:
		return "oscillator instance count"
	case CheckPortNaming:
		return "oscillator port naming"
	case CheckAdjacency:
		return "hex adjacency completeness"
	case CheckSymmetry:
		return "coupling symmetry"
	case CheckWiring:
		return "coupling wiring direction"
	default:
		return fmt.Sprintf("check(%d)", uint8(c))
	}
}

// Report is the verification outcome: the checks that passed in order,
// plus, on failure, the check that stopped the run with its
// sentinel-wrapped diagnostic. Verification stops at the first failing
// check; a Report never describes partial recovery.
type Report struct {
	Passed []Check
	Failed Check // meaningful only when Err != nil
	Err    error
}

// OK reports whether all five checks passed.
func (r *Report) OK() bool { return r.Err == nil }

// direction is a directed cell pair key.
type direction struct {
	from, to hexgrid.Cell
}

// Verify statically checks deck against the hex-grid model of grid.
// The five checks run in documented order; the first failure stops
// verification and lands in Report.Err with expected/found detail.
// The deck is read-only throughout.
// Complexity: O(Rows×Cols) time and memory.
func Verify(deck *Deck, grid hexgrid.Grid) *Report {
	rep := &Report{}
	if deck == nil {
		deck = &Deck{}
	}

	// 1. Instance count: every cell exactly once.
	byCell := make(map[hexgrid.Cell]Oscillator, len(deck.Oscillators))
	for _, osc := range deck.Oscillators {
		byCell[osc.Cell] = osc
	}
	want := grid.NumCells()
	if len(deck.Oscillators) != want || len(byCell) != want {
		return rep.fail(CheckInstanceCount,
			fmt.Errorf("netlist: expected %d oscillator blocks, found %d (%d distinct cells): %w",
				want, len(deck.Oscillators), len(byCell), ErrInstanceCount))
	}
	rep.pass(CheckInstanceCount)

	// 2. Port naming: the fixed per-cell pin list, row-major scan.
	for _, cell := range grid.Cells() {
		osc, ok := byCell[cell]
		if !ok {
			return rep.fail(CheckPortNaming,
				fmt.Errorf("netlist: oscillator %s absent: %w", OscInstanceName(cell), ErrPortNaming))
		}
		if len(osc.Pins) != NumPins {
			return rep.fail(CheckPortNaming,
				fmt.Errorf("netlist: %s declares %d pins, expected %d: %w",
					OscInstanceName(cell), len(osc.Pins), NumPins, ErrPortNaming))
		}
		for pin := 1; pin <= NumPins; pin++ {
			if exp := NodeName(cell, pin); osc.Pins[pin-1] != exp {
				return rep.fail(CheckPortNaming,
					fmt.Errorf("netlist: %s pin %d: expected %s, found %s: %w",
						OscInstanceName(cell), pin, exp, osc.Pins[pin-1], ErrPortNaming))
			}
		}
	}
	rep.pass(CheckPortNaming)

	// 3. Adjacency completeness: no coupling outside the neighbor
	// relation, and every neighbor relation covered in some direction.
	dirSet := make(map[direction]bool, len(deck.Couplings))
	for _, cpl := range deck.Couplings {
		if !grid.Adjacent(cpl.From, cpl.To) {
			return rep.fail(CheckAdjacency,
				fmt.Errorf("netlist: %s couples non-adjacent cells: %w",
					CouplerInstanceName(cpl.From, cpl.To), ErrAdjacency))
		}
		dirSet[direction{from: cpl.From, to: cpl.To}] = true
	}
	for _, cell := range grid.Cells() {
		for _, nbr := range grid.Neighbors(cell) {
			if !dirSet[direction{from: cell, to: nbr}] && !dirSet[direction{from: nbr, to: cell}] {
				return rep.fail(CheckAdjacency,
					fmt.Errorf("netlist: cell %s: expected coupling to neighbor %s, found none: %w",
						cell, nbr, ErrAdjacency))
			}
		}
	}
	rep.pass(CheckAdjacency)

	// 4. Symmetry: the reverse twin of every coupling must exist.
	for _, cpl := range deck.Couplings {
		if !dirSet[direction{from: cpl.To, to: cpl.From}] {
			return rep.fail(CheckSymmetry,
				fmt.Errorf("netlist: coupling %s->%s exists but reverse %s is missing: %w",
					cpl.From, cpl.To, CouplerInstanceName(cpl.To, cpl.From), ErrSymmetry))
		}
	}
	rep.pass(CheckSymmetry)

	// 5. Wiring direction: output pin of From into input pin of To.
	for _, cpl := range deck.Couplings {
		expA := NodeName(cpl.From, OutputPin)
		expB := NodeName(cpl.To, InputPin)
		if cpl.FromPin != expA || cpl.ToPin != expB {
			return rep.fail(CheckWiring,
				fmt.Errorf("netlist: %s: expected %s -> %s, found %s -> %s: %w",
					CouplerInstanceName(cpl.From, cpl.To), expA, expB, cpl.FromPin, cpl.ToPin, ErrWiring))
		}
	}
	rep.pass(CheckWiring)

	return rep
}

func (r *Report) pass(c Check) {
	r.Passed = append(r.Passed, c)
}

func (r *Report) fail(c Check, err error) *Report {
	r.Failed = c
	r.Err = err
	return r
}
