package netlist

import (
	"io"
	"strings"

	"github.com/katalvlaran/ronet/enable"
	"github.com/katalvlaran/ronet/hexgrid"
)

// Simulation knobs of the emitted .control block. The experiments these
// decks feed are fixed-horizon transient runs; the numbers are part of
// the external testbench contract, not tunable policy.
const (
	tbStep    = "0.1ns"
	tbStop    = "5us"
	tbOutFile = "output_nodes.csv"
	tbSupply  = "1.0"
)

// WriteTestbench wraps a previously written network file into a
// runnable deck: includes, the Xdut instantiation, one voltage source
// per enable (oscillators are all driven on; couplers follow bm), the
// supply, and a transient .control block probing every cell's output
// pin.
//
// bm decides only the coupler switches; cell enables are hardwired to 1
// so that unused oscillators still oscillate and their probes stay
// meaningful as a noise floor.
// Complexity: O(Rows×Cols).
func WriteTestbench(w io.Writer, grid hexgrid.Grid, bm *enable.Bitmap, networkFile string, opts ...WriterOption) error {
	cfg := newWriterConfig(opts...)

	if err := emit(w, "* Auto-testbench (planar graph mapped to RO grid)\n\n"); err != nil {
		return err
	}
	for _, inc := range cfg.includes {
		if err := emit(w, ".include %q\n", inc); err != nil {
			return err
		}
	}
	if err := emit(w, ".include %q\n\n", networkFile); err != nil {
		return err
	}

	roEnables, cplEnables, probes := portLists(grid)
	if err := emit(w, "Xdut %s %s %s %s %s %s\n\n",
		strings.Join(roEnables, " "), strings.Join(cplEnables, " "),
		strings.Join(probes, " "), SupplyRail, GroundRail, cfg.networkName); err != nil {
		return err
	}

	if err := emit(w, "* RO enables\n"); err != nil {
		return err
	}
	for _, c := range grid.Cells() {
		name := enable.CellSignal(c)
		if err := emit(w, "V_%s %s %s 1\n", name, name, GroundRail); err != nil {
			return err
		}
	}
	if err := emit(w, "\n* Coupler enables\n"); err != nil {
		return err
	}
	for _, p := range grid.CanonicalPairs() {
		name := enable.PairSignal(p)
		on := 0
		if bm != nil && bm.Pairs[p] {
			on = 1
		}
		if err := emit(w, "V_%s %s %s %d\n", name, name, GroundRail, on); err != nil {
			return err
		}
	}

	if err := emit(w, "\nVDD %s %s %s\n\n", SupplyRail, GroundRail, tbSupply); err != nil {
		return err
	}

	probeList := strings.Join(probes, " ")
	if err := emit(w, ".control\n"); err != nil {
		return err
	}
	if err := emit(w, "save time %s\n", probeList); err != nil {
		return err
	}
	if err := emit(w, "tran %s %s uic\n", tbStep, tbStop); err != nil {
		return err
	}
	if err := emit(w, "set filetype=ascii\nset wr_singlescale\nset wr_vecnames\nset csvdelim=comma\n"); err != nil {
		return err
	}
	if err := emit(w, "wrdata %s time %s\n", tbOutFile, probeList); err != nil {
		return err
	}
	if err := emit(w, "quit\n.endc\n\n.end\n"); err != nil {
		return err
	}
	return nil
}
