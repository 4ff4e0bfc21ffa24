package tessella

// Primitive is one exported drawing entity with coordinates already in
// output units.
type Primitive interface {
	prim()
}

// Line is a straight segment between two points.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Dot is a single point entity.
type Dot struct {
	X, Y float64
}

func (Line) prim() {}
func (Dot) prim()  {}

// ScaleForDiameter returns the export scale factor that maps the
// current boundary diameter onto a target physical diameter. With a
// non-positive target or current diameter no scaling applies.
func ScaleForDiameter(target, current float64) float64 {
	if target <= 0 || current <= 0 {
		return 1
	}
	return target / current
}

// Encoder accumulates export primitives, multiplying every coordinate
// by a fixed scale factor. Closed polygons are emitted as independent
// segments rather than closed polylines; consumers reconstruct closure
// themselves. Coincident edges are not deduplicated, so a Voronoi
// border shared by two cells appears once per cell.
type Encoder struct {
	scale float64
	prims []Primitive
}

// NewEncoder creates an encoder with the given scale factor; a
// non-positive factor falls back to 1.
func NewEncoder(scale float64) *Encoder {
	if scale <= 0 {
		scale = 1
	}
	return &Encoder{scale: scale}
}

// Segment appends one scaled line segment.
func (e *Encoder) Segment(a, b Point) {
	e.prims = append(e.prims, Line{
		X1: a.X * e.scale, Y1: a.Y * e.scale,
		X2: b.X * e.scale, Y2: b.Y * e.scale,
	})
}

// Polygon appends a closed polygon as len(poly) independent segments,
// the last connecting back to the first vertex.
func (e *Encoder) Polygon(poly []Point) {
	for i, p := range poly {
		e.Segment(p, poly[(i+1)%len(poly)])
	}
}

// Dots appends one scaled point entity per input point.
func (e *Encoder) Dots(pts []Point) {
	for _, p := range pts {
		e.prims = append(e.prims, Dot{X: p.X * e.scale, Y: p.Y * e.scale})
	}
}

// Triangulation appends the three edges of every triangle.
func (e *Encoder) Triangulation(t *Triangulation) {
	for _, tri := range t.Triangles {
		a, b, c := t.Points[tri[0]], t.Points[tri[1]], t.Points[tri[2]]
		e.Segment(a, b)
		e.Segment(b, c)
		e.Segment(c, a)
	}
}

// Primitives returns the accumulated entities in append order.
func (e *Encoder) Primitives() []Primitive {
	return e.prims
}
