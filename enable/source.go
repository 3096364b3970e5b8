package enable

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/katalvlaran/ronet/hexgrid"
)

// Source-line grammar. One voltage source per enable signal:
//
//	V_EN_RO_<r>_<c>            <node> <ref> <0|1>
//	V_EN_C_<r1>_<c1>__<r2>_<c2> <node> <ref> <0|1>
//
// Anything else — comments, directives, rail definitions — is not an
// enable source and is skipped without error (lenient policy).
var (
	cellSourceRe = regexp.MustCompile(`^V_EN_RO_(\d+)_(\d+)\s+\S+\s+\S+\s+([01])\s*$`)
	pairSourceRe = regexp.MustCompile(`^V_EN_C_(\d+)_(\d+)__(\d+)_(\d+)\s+\S+\s+\S+\s+([01])\s*$`)
)

// WriteSources emits one voltage source per cell and per canonical
// pair, in the fixed row-major/sorted order, reflecting bm's state.
// Complexity: O(Rows×Cols).
func WriteSources(w io.Writer, bm *Bitmap) error {
	for _, c := range bm.Grid.Cells() {
		name := CellSignal(c)
		if _, err := fmt.Fprintf(w, "V_%s %s gnd %d\n", name, name, bit(bm.Cells[c])); err != nil {
			return fmt.Errorf("enable: write cell source %s: %w", name, err)
		}
	}
	for _, p := range bm.Grid.CanonicalPairs() {
		name := PairSignal(p)
		if _, err := fmt.Fprintf(w, "V_%s %s gnd %d\n", name, name, bit(bm.Pairs[p])); err != nil {
			return fmt.Errorf("enable: write pair source %s: %w", name, err)
		}
	}
	return nil
}

// ParseSources reconstructs a Bitmap from source lines. Unmatched lines
// are skipped; out-of-grid coordinates are skipped too (the line may
// belong to a larger deck). Later lines override earlier ones for the
// same signal. The result is total over grid regardless of input.
// Complexity: O(lines + Rows×Cols).
func ParseSources(r io.Reader, grid hexgrid.Grid) (*Bitmap, error) {
	bm := newBitmap(grid)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if m := cellSourceRe.FindStringSubmatch(line); m != nil {
			cell := hexgrid.Cell{Row: atoi(m[1]), Col: atoi(m[2])}
			if !grid.InBounds(cell) {
				continue
			}
			bm.Cells[cell] = m[3] == "1"
			continue
		}
		if m := pairSourceRe.FindStringSubmatch(line); m != nil {
			a := hexgrid.Cell{Row: atoi(m[1]), Col: atoi(m[2])}
			b := hexgrid.Cell{Row: atoi(m[3]), Col: atoi(m[4])}
			if !grid.Adjacent(a, b) {
				continue
			}
			bm.Pairs[hexgrid.Canonical(a, b)] = m[5] == "1"
			continue
		}
		// not an enable source; skip
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("enable: read sources: %w", err)
	}
	return bm, nil
}

// bit maps a bool onto the 0/1 the source format carries.
func bit(on bool) int {
	if on {
		return 1
	}
	return 0
}

// atoi converts a digits-only submatch; the regexp guarantees validity.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
