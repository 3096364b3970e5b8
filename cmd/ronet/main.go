// Command ronet glues the oscillator-network pipeline together: generate
// a random connected topology on a hex grid, emit the physical network
// description and a runnable testbench, and verify an existing network
// file against the grid model.
//
// Usage: ronet <generate|netlist|testbench|verify> [flags]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/ronet/enable"
	"github.com/katalvlaran/ronet/generate"
	"github.com/katalvlaran/ronet/hexgrid"
	"github.com/katalvlaran/ronet/netlist"
	"github.com/katalvlaran/ronet/rograph"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	var err error
	switch os.Args[1] {
	case "generate":
		err = runGenerate(os.Args[2:])
	case "netlist":
		err = runNetlist(os.Args[2:])
	case "testbench":
		err = runTestbench(os.Args[2:])
	case "verify":
		err = runVerify(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "ronet: unknown subcommand %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ronet: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: ronet <subcommand> [flags]

Subcommands:
  generate   build a random connected topology and print it
  netlist    write the full physical network description
  testbench  build a topology and write a runnable testbench deck
  verify     check a network file against the hex-grid model

Run "ronet <subcommand> -h" for flags.
`)
}

// gridFlags registers the shared -rows/-cols pair on fs.
func gridFlags(fs *flag.FlagSet) (rows, cols *int) {
	rows = fs.Int("rows", 5, "grid row count")
	cols = fs.Int("cols", 5, "grid column count")
	return rows, cols
}

// openOut opens path for writing; "-" means stdout.
func openOut(path string) (io.WriteCloser, error) {
	if path == "-" {
		return os.Stdout, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}

// closeOut closes w unless it is stdout.
func closeOut(w io.WriteCloser) error {
	if w == os.Stdout {
		return nil
	}
	return w.Close()
}

// buildGraph runs the generator with the shared topology flags.
func buildGraph(grid hexgrid.Grid, nodes int, seed int64, p float64, strict bool, restart int) (*rograph.Graph, error) {
	opts := []generate.Option{
		generate.WithSeed(seed),
		generate.WithEdgeProbability(p),
	}
	if strict {
		opts = append(opts, generate.WithStrictCapacity())
	}
	if restart > 0 {
		opts = append(opts, generate.WithRestartPolicy(restart))
	}
	return generate.Generate(grid, nodes, opts...)
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("ronet generate", flag.ExitOnError)
	rows, cols := gridFlags(fs)
	nodes := fs.Int("nodes", 10, "number of oscillators to place")
	seed := fs.Int64("seed", 1, "PRNG seed")
	p := fs.Float64("p", 0.30, "densification edge probability")
	strict := fs.Bool("strict", false, "reject nodes == rows*cols")
	restart := fs.Int("restart", 0, "restart attempts instead of repair edges (0 = repair)")
	enables := fs.String("enables", "", "also write enable source lines to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	grid, err := hexgrid.New(*rows, *cols)
	if err != nil {
		return err
	}
	g, err := buildGraph(grid, *nodes, *seed, *p, *strict, *restart)
	if err != nil {
		return err
	}

	fmt.Printf("grid %dx%d, %d nodes, %d edges\n", grid.Rows, grid.Cols, g.NumNodes(), g.NumEdges())
	for label := 0; label < g.NumNodes(); label++ {
		cell, _ := g.CellOf(label)
		fmt.Printf("node %d -> cell %s\n", label, cell)
	}
	for _, e := range g.Edges() {
		tag := ""
		if g.IsRepair(e) {
			tag = "  (repair)"
		}
		fmt.Printf("edge %d -- %d%s\n", e.U, e.V, tag)
	}

	if *enables != "" {
		bm, serr := enable.Synthesize(grid, g)
		if serr != nil {
			return serr
		}
		w, oerr := openOut(*enables)
		if oerr != nil {
			return oerr
		}
		if werr := enable.WriteSources(w, bm); werr != nil {
			closeOut(w)
			return werr
		}
		if cerr := closeOut(w); cerr != nil {
			return cerr
		}
		fmt.Printf("enable sources written to %s\n", *enables)
	}
	return nil
}

func runNetlist(args []string) error {
	fs := flag.NewFlagSet("ronet netlist", flag.ExitOnError)
	rows, cols := gridFlags(fs)
	out := fs.String("out", "-", "output file (- for stdout)")
	name := fs.String("name", netlist.DefaultNetworkName, "emitted subcircuit name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	grid, err := hexgrid.New(*rows, *cols)
	if err != nil {
		return err
	}
	w, err := openOut(*out)
	if err != nil {
		return err
	}
	if werr := netlist.Write(w, grid, netlist.WithNetworkName(*name)); werr != nil {
		closeOut(w)
		return werr
	}
	return closeOut(w)
}

func runTestbench(args []string) error {
	fs := flag.NewFlagSet("ronet testbench", flag.ExitOnError)
	rows, cols := gridFlags(fs)
	nodes := fs.Int("nodes", 10, "number of oscillators to place")
	seed := fs.Int64("seed", 1, "PRNG seed")
	p := fs.Float64("p", 0.30, "densification edge probability")
	strict := fs.Bool("strict", false, "reject nodes == rows*cols")
	restart := fs.Int("restart", 0, "restart attempts instead of repair edges (0 = repair)")
	network := fs.String("network", "ring_osc_network.spice", "network description file to include")
	out := fs.String("out", "-", "output file (- for stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	grid, err := hexgrid.New(*rows, *cols)
	if err != nil {
		return err
	}
	g, err := buildGraph(grid, *nodes, *seed, *p, *strict, *restart)
	if err != nil {
		return err
	}
	bm, err := enable.Synthesize(grid, g)
	if err != nil {
		return err
	}

	w, err := openOut(*out)
	if err != nil {
		return err
	}
	if werr := netlist.WriteTestbench(w, grid, bm, *network); werr != nil {
		closeOut(w)
		return werr
	}
	return closeOut(w)
}

func runVerify(args []string) error {
	fs := flag.NewFlagSet("ronet verify", flag.ExitOnError)
	rows, cols := gridFlags(fs)
	in := fs.String("in", "", "network file to verify (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("verify: -in is required")
	}

	grid, err := hexgrid.New(*rows, *cols)
	if err != nil {
		return err
	}
	f, err := os.Open(*in)
	if err != nil {
		return fmt.Errorf("open %s: %w", *in, err)
	}
	defer f.Close()

	deck, err := netlist.Parse(f)
	if err != nil {
		return err
	}

	rep := netlist.Verify(deck, grid)
	for _, c := range rep.Passed {
		fmt.Printf("  ✔ %s\n", c)
	}
	if !rep.OK() {
		fmt.Printf("  ❌ %s\n", rep.Failed)
		return rep.Err
	}
	fmt.Println("network file is consistent with the grid model")
	return nil
}
