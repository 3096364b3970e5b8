// Package netlist defines the Deck data model and sentinel errors for
// parsing and verification.
package netlist

import (
	"errors"

	"github.com/katalvlaran/ronet/hexgrid"
)

// Sentinel errors for netlist operations.
var (
	// ErrParse indicates the card stream could not be tokenized at all.
	// Individually unrecognized cards are skipped, not errors.
	ErrParse = errors.New("netlist: parse failed")

	// ErrInstanceCount indicates the oscillator count differs from
	// Rows×Cols.
	ErrInstanceCount = errors.New("netlist: oscillator instance count mismatch")

	// ErrPortNaming indicates an oscillator pin list deviates from the
	// fixed N_<r>_<c>_<pin> scheme.
	ErrPortNaming = errors.New("netlist: oscillator port naming mismatch")

	// ErrAdjacency indicates a cell's coupling set differs from its hex
	// neighbor set (missing or extra couplings).
	ErrAdjacency = errors.New("netlist: coupling set does not match hex adjacency")

	// ErrSymmetry indicates a coupling whose reverse direction is absent.
	ErrSymmetry = errors.New("netlist: asymmetric coupling")

	// ErrWiring indicates a coupling wired to the wrong oscillator pins.
	ErrWiring = errors.New("netlist: coupling wired to wrong pins")
)

// Oscillator is one parsed XRO card: the cell decoded from the
// instance name, the declared pin nets in order, and the enable net.
type Oscillator struct {
	Cell   hexgrid.Cell
	Pins   []string
	Enable string
}

// Coupling is one parsed XCPL card: the directed cell pair decoded from
// the instance name, the enable net, and the two wired pin nets.
type Coupling struct {
	From, To hexgrid.Cell
	Enable   string
	FromPin  string
	ToPin    string
}

// Deck is the parsed, read-only view of a network description.
// Instance order follows the input; Verify never mutates it.
type Deck struct {
	Oscillators []Oscillator
	Couplings   []Coupling
}
