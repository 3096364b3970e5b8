package enable

import (
	"fmt"

	"github.com/katalvlaran/ronet/hexgrid"
)

// Enable-signal identifiers shared by the source format and the netlist
// port lists. The scheme is fixed by the physical network description.

// CellSignal returns the oscillator enable identifier "EN_RO_<r>_<c>".
func CellSignal(c hexgrid.Cell) string {
	return fmt.Sprintf("EN_RO_%d_%d", c.Row, c.Col)
}

// PairSignal returns the coupler enable identifier
// "EN_C_<r1>_<c1>__<r2>_<c2>" for a canonical pair.
func PairSignal(p hexgrid.Pair) string {
	return fmt.Sprintf("EN_C_%d_%d__%d_%d", p.A.Row, p.A.Col, p.B.Row, p.B.Col)
}
