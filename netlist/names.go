package netlist

import (
	"fmt"

	"github.com/katalvlaran/ronet/hexgrid"
)

// Fixed naming scheme of the physical network description. Every
// identifier below is part of the external contract; renaming any of
// them breaks existing decks.
const (
	// NumPins is the per-oscillator pin count.
	NumPins = 7
	// OutputPin is the oscillator pin a coupler drives from.
	OutputPin = 1
	// InputPin is the oscillator pin a coupler drives into.
	InputPin = 3

	// RingOscSubckt tags oscillator instances.
	RingOscSubckt = "RING_OSC"
	// CouplingSubckt tags coupler instances.
	CouplingSubckt = "COUPLING"
	// DefaultNetworkName is the emitted subcircuit name.
	DefaultNetworkName = "RING_OSC_NETWORK"

	// SupplyRail and GroundRail are the shared power nets.
	SupplyRail = "vdd"
	GroundRail = "gnd"
)

// NodeName returns the oscillator-internal net "N_<r>_<c>_<pin>".
func NodeName(c hexgrid.Cell, pin int) string {
	return fmt.Sprintf("N_%d_%d_%d", c.Row, c.Col, pin)
}

// ProbeName returns the externally probed net of a cell: its output pin.
func ProbeName(c hexgrid.Cell) string {
	return NodeName(c, OutputPin)
}

// OscInstanceName returns "XRO_<r>_<c>".
func OscInstanceName(c hexgrid.Cell) string {
	return fmt.Sprintf("XRO_%d_%d", c.Row, c.Col)
}

// CouplerInstanceName returns the directed "XCPL_<r1>_<c1>__<r2>_<c2>".
func CouplerInstanceName(from, to hexgrid.Cell) string {
	return fmt.Sprintf("XCPL_%d_%d__%d_%d", from.Row, from.Col, to.Row, to.Col)
}
