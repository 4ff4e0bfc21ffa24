package tessella

import "math"

// circleRingRes is the number of segments used when a circle boundary
// is polygonized for containment-free uses such as export and preview.
const circleRingRes = 64

// Boundary restricts where sampled points may land. It is a closed set
// of region shapes, each with its own containment rule; a nil Boundary
// means the pattern is constrained only by the clip rectangle.
type Boundary interface {
	// Contains reports whether the point lies inside the region.
	Contains(p Point) bool
	// Center returns the geometric center of the region.
	Center() Point
	// Diameter returns the region extent used for physical-size scaling.
	Diameter() float64
	// Ring returns the region outline as a closed polygon, polygonizing
	// curved shapes. A nil ring means the region has no drawable outline.
	Ring() []Point
}

// Circle is a circular boundary region.
type Circle struct {
	C Point
	R float64
}

func (c Circle) Contains(p Point) bool {
	return p.Dist(c.C) <= c.R
}

func (c Circle) Center() Point     { return c.C }
func (c Circle) Diameter() float64 { return 2 * c.R }

// Ring polygonizes the circle at a fixed resolution. Export carries no
// curved primitives, so the outline is always emitted as segments.
func (c Circle) Ring() []Point {
	ring := make([]Point, circleRingRes)
	for i := range ring {
		a := float64(i) * 2 * math.Pi / circleRingRes
		ring[i] = Point{X: c.C.X + c.R*math.Cos(a), Y: c.C.Y + c.R*math.Sin(a)}
	}
	return ring
}

// Polygon is an arbitrary closed polygonal boundary. The vertex order
// defines the edge sequence; the last vertex connects back to the first.
type Polygon struct {
	ring []Point
}

// NewPolygon builds a polygon boundary from its vertex ring.
func NewPolygon(ring []Point) Polygon {
	return Polygon{ring: append([]Point(nil), ring...)}
}

// Contains ray-casts against the vertex ring using the even-odd rule.
// Rings with fewer than three vertices are not closed shapes and are
// treated as unconstrained rather than rejected.
func (p Polygon) Contains(pt Point) bool {
	return ringContains(p.ring, pt)
}

func (p Polygon) Center() Point {
	return Centroid(p.ring)
}

func (p Polygon) Diameter() float64 {
	return ringDiameter(p.ring, p.Center())
}

func (p Polygon) Ring() []Point {
	if len(p.ring) < 3 {
		return nil
	}
	return p.ring
}

// Jagged is a radially perturbed polygon approximating a circle.
type Jagged struct {
	c    Point
	base float64
	ring []Point
}

// NewJagged builds a jagged boundary of n vertices around center with
// the given base radius. Each vertex is displaced radially by up to
// jaggedness*radius in either direction, drawn from a generator seeded
// with seed, so the same inputs always produce the same ring.
func NewJagged(center Point, radius float64, n int, jaggedness float64, seed int64) Jagged {
	rng := NewRand(seed)
	jaggedness = clamp(jaggedness, 0, 1)
	ring := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		a := float64(i) * 2 * math.Pi / float64(n)
		offset := (rng.Float64() - 0.5) * 2 * jaggedness * radius
		r := radius + offset
		ring = append(ring, Point{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)})
	}
	return Jagged{c: center, base: radius, ring: ring}
}

func (j Jagged) Contains(p Point) bool {
	return ringContains(j.ring, p)
}

func (j Jagged) Center() Point     { return j.c }
func (j Jagged) Diameter() float64 { return 2 * j.base }

func (j Jagged) Ring() []Point {
	if len(j.ring) < 3 {
		return nil
	}
	return j.ring
}

// ringContains implements even-odd ray casting over an implicitly
// closed vertex ring. Points exactly on an edge resolve to whichever
// side the arithmetic lands on; at sub-pixel precision the tie is not
// user visible. Degenerate rings accept every point.
func ringContains(ring []Point, p Point) bool {
	if len(ring) < 3 {
		return true
	}
	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		a, b := ring[i], ring[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

func ringDiameter(ring []Point, center Point) float64 {
	var max float64
	for _, p := range ring {
		if d := p.Dist(center); d > max {
			max = d
		}
	}
	return 2 * max
}
