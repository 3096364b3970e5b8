package netlist

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/ronet/enable"
	"github.com/katalvlaran/ronet/hexgrid"
)

// defaultIncludes are the model and subcircuit files every emitted deck
// expects next to it.
var defaultIncludes = []string{
	"ptm_45nm_lp.l",
	"inv.subckt",
	"nand.subckt",
	"ring_osc.subckt",
	"coupling.subckt",
}

// writerConfig holds the Write/WriteTestbench knobs.
type writerConfig struct {
	networkName string
	includes    []string
}

// WriterOption customizes emitted decks.
type WriterOption func(*writerConfig)

// newWriterConfig resolves defaults then applies opts in order.
func newWriterConfig(opts ...WriterOption) writerConfig {
	cfg := writerConfig{
		networkName: DefaultNetworkName,
		includes:    defaultIncludes,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithNetworkName overrides the emitted subcircuit name. Panics on an
// empty name (the deck would be unusable).
func WithNetworkName(name string) WriterOption {
	if name == "" {
		panic(`netlist: WithNetworkName("")`)
	}
	return func(c *writerConfig) {
		c.networkName = name
	}
}

// WithIncludes replaces the default include list. nil is allowed and
// means "no includes".
func WithIncludes(files []string) WriterOption {
	return func(c *writerConfig) {
		c.includes = files
	}
}

// portLists assembles the three port groups of the network subcircuit
// in their fixed order: oscillator enables (row-major), coupler enables
// (canonical pair order), probe nets (row-major).
func portLists(grid hexgrid.Grid) (roEnables, cplEnables, probes []string) {
	for _, c := range grid.Cells() {
		roEnables = append(roEnables, enable.CellSignal(c))
		probes = append(probes, ProbeName(c))
	}
	for _, p := range grid.CanonicalPairs() {
		cplEnables = append(cplEnables, enable.PairSignal(p))
	}
	return roEnables, cplEnables, probes
}

// Write emits the full physical network description for grid as a
// `.subckt`. Every cell gets one oscillator instance; every canonical
// pair gets two coupling instances, one per direction, both switched by
// the pair's single canonical enable net. The reverse instance is what
// lets the verifier's symmetry check hold on our own output.
// Complexity: O(Rows×Cols).
func Write(w io.Writer, grid hexgrid.Grid, opts ...WriterOption) error {
	cfg := newWriterConfig(opts...)

	for _, inc := range cfg.includes {
		if err := emit(w, ".include %q\n", inc); err != nil {
			return err
		}
	}
	if err := emit(w, "\n"); err != nil {
		return err
	}

	roEnables, cplEnables, probes := portLists(grid)
	ports := make([]string, 0, len(roEnables)+len(cplEnables)+len(probes)+2)
	ports = append(ports, roEnables...)
	ports = append(ports, cplEnables...)
	ports = append(ports, probes...)
	ports = append(ports, SupplyRail, GroundRail)
	if err := emit(w, ".subckt %s %s\n\n", cfg.networkName, strings.Join(ports, " ")); err != nil {
		return err
	}

	// Oscillator instances, row-major.
	for _, c := range grid.Cells() {
		pins := make([]string, NumPins)
		for pin := 1; pin <= NumPins; pin++ {
			pins[pin-1] = NodeName(c, pin)
		}
		if err := emit(w, "%s %s %s %s %s %s\n",
			OscInstanceName(c), strings.Join(pins, " "),
			enable.CellSignal(c), SupplyRail, GroundRail, RingOscSubckt); err != nil {
			return err
		}
	}
	if err := emit(w, "\n"); err != nil {
		return err
	}

	// Coupler instances, canonical pair order, forward then reverse.
	for _, p := range grid.CanonicalPairs() {
		en := enable.PairSignal(p)
		if err := writeCoupler(w, p.A, p.B, en); err != nil {
			return err
		}
		if err := writeCoupler(w, p.B, p.A, en); err != nil {
			return err
		}
	}

	return emit(w, "\n.ends %s\n", cfg.networkName)
}

// writeCoupler emits one directed coupling instance from→to.
func writeCoupler(w io.Writer, from, to hexgrid.Cell, en string) error {
	return emit(w, "%s %s %s %s %s %s %s\n",
		CouplerInstanceName(from, to), en,
		NodeName(from, OutputPin), NodeName(to, InputPin),
		SupplyRail, GroundRail, CouplingSubckt)
}

// emit wraps Fprintf with the package error context.
func emit(w io.Writer, format string, args ...interface{}) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return fmt.Errorf("netlist: write: %w", err)
	}
	return nil
}
