package tessella

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
)

// SVGStyle controls the stroke and dot appearance of an SVG export.
type SVGStyle struct {
	Stroke      string
	StrokeWidth float64
	DotRadius   float64
	DotFill     string
}

// DefaultSVGStyle is a plain black hairline suitable for inspection.
var DefaultSVGStyle = SVGStyle{
	Stroke:      "black",
	StrokeWidth: 1,
	DotRadius:   1.5,
	DotFill:     "black",
}

// WriteSVG serializes the primitives as an SVG document of the given
// size, one line element per segment and one circle per dot.
func WriteSVG(w io.Writer, prims []Primitive, width, height float64, style SVGStyle) {
	lineStyle := fmt.Sprintf("stroke:%s;stroke-width:%g", style.Stroke, style.StrokeWidth)
	dotStyle := fmt.Sprintf("fill:%s", style.DotFill)

	canvas := svg.New(w)
	canvas.Start(width, height)
	for _, p := range prims {
		switch v := p.(type) {
		case Line:
			canvas.Line(v.X1, v.Y1, v.X2, v.Y2, lineStyle)
		case Dot:
			canvas.Circle(v.X, v.Y, style.DotRadius, dotStyle)
		}
	}
	canvas.End()
}
