package tessella

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// WriteDXF serializes the primitives as a minimal ASCII DXF (R12)
// document: an ENTITIES section holding one LINE per segment and one
// POINT per dot, in primitive order, on layer 0. Coordinates are
// written as already scaled, so a pattern exported with a physical
// target diameter comes out in millimeters.
func WriteDXF(w io.Writer, prims []Primitive) error {
	bw := bufio.NewWriter(w)

	group := func(code int, value string) {
		fmt.Fprintf(bw, "%d\n%s\n", code, value)
	}
	coord := func(code int, v float64) {
		fmt.Fprintf(bw, "%d\n%g\n", code, v)
	}

	group(0, "SECTION")
	group(2, "ENTITIES")
	for _, p := range prims {
		switch v := p.(type) {
		case Line:
			group(0, "LINE")
			group(8, "0")
			coord(10, v.X1)
			coord(20, v.Y1)
			coord(11, v.X2)
			coord(21, v.Y2)
		case Dot:
			group(0, "POINT")
			group(8, "0")
			coord(10, v.X)
			coord(20, v.Y)
		}
	}
	group(0, "ENDSEC")
	group(0, "EOF")

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "dxf: writing entities")
	}
	return nil
}
