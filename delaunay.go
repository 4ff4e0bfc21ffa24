package tessella

import "math"

const (
	// framePad scales the ghost frame distance relative to the clip
	// rectangle extent. The frame must sit far enough out that every
	// real site's Voronoi cell closes before clipping.
	framePad = 20.0

	// dupEps is the coordinate quantum under which two input points
	// are merged into one site.
	dupEps = 1e-9

	// collinearEps is the doubled-area threshold under which a
	// triangle is treated as degenerate.
	collinearEps = 1e-12
)

// triangle is a working Bowyer–Watson triangle with its cached
// circumcircle. Indices reference the working point slice, which holds
// the input sites followed by the four ghost frame corners.
type triangle struct {
	a, b, c int
	cx, cy  float64
	rsq     float64
}

// Triangulation is the Delaunay triangulation of a point set within a
// clip rectangle. Triangles holds index-triples over Points; triangles
// touching the internal ghost frame are excluded from it but retained
// internally for Voronoi cell derivation.
type Triangulation struct {
	Points    []Point
	Triangles [][3]int

	work   []Point
	tris   []triangle
	merged []bool
}

// Triangulate computes the Delaunay triangulation of points by
// incremental insertion with the empty-circumcircle test. Exact
// duplicate points are merged deterministically: the first occurrence
// becomes the site, later occurrences are skipped and end up with an
// empty Voronoi cell. Collinear triples produce a degenerate triangle
// with an unbounded circumcircle, which later insertions consume.
func Triangulate(points []Point, rect Rect) *Triangulation {
	t := &Triangulation{Points: points}
	n := len(points)

	pad := framePad * maxOf(rect.Width(), rect.Height())
	t.work = make([]Point, 0, n+4)
	t.work = append(t.work, points...)
	t.work = append(t.work,
		Point{X: rect.X0 - pad, Y: rect.Y0 - pad},
		Point{X: rect.X1 + pad, Y: rect.Y0 - pad},
		Point{X: rect.X1 + pad, Y: rect.Y1 + pad},
		Point{X: rect.X0 - pad, Y: rect.Y1 + pad},
	)
	g := n
	t.tris = append(t.tris,
		newTriangle(g, g+1, g+2, t.work),
		newTriangle(g, g+2, g+3, t.work),
	)

	t.merged = make([]bool, n)
	seen := make(map[[2]int64]struct{}, n)
	for i, p := range points {
		key := [2]int64{int64(math.Round(p.X / dupEps)), int64(math.Round(p.Y / dupEps))}
		if _, ok := seen[key]; ok {
			t.merged[i] = true
			continue
		}
		seen[key] = struct{}{}
		t.insert(i)
	}

	for _, tr := range t.tris {
		if tr.a < n && tr.b < n && tr.c < n {
			t.Triangles = append(t.Triangles, [3]int{tr.a, tr.b, tr.c})
		}
	}
	logger().Debug("triangulated", "sites", n, "triangles", len(t.Triangles))
	return t
}

// insert carves the cavity of triangles whose circumcircle contains
// the point and re-triangulates the cavity boundary against it.
func (t *Triangulation) insert(pi int) {
	p := t.work[pi]

	var cavity [][2]int
	next := make([]triangle, 0, len(t.tris)+4)
	for _, tr := range t.tris {
		dx, dy := tr.cx-p.X, tr.cy-p.Y
		if dx*dx+dy*dy < tr.rsq {
			cavity = append(cavity, [2]int{tr.a, tr.b}, [2]int{tr.b, tr.c}, [2]int{tr.c, tr.a})
		} else {
			next = append(next, tr)
		}
	}

	// Interior cavity edges appear twice in opposite directions and
	// cancel; the surviving directed edges form the cavity boundary.
edges:
	for _, e := range cavity {
		for _, f := range cavity {
			if e[0] == f[1] && e[1] == f[0] {
				continue edges
			}
		}
		next = append(next, newTriangle(e[0], e[1], pi, t.work))
	}
	t.tris = next
}

// newTriangle builds a triangle and caches its circumcircle. A
// collinear triple gets an unbounded circumcircle so any subsequent
// insertion replaces the sliver instead of crashing on it.
func newTriangle(a, b, c int, pts []Point) triangle {
	p0, p1, p2 := pts[a], pts[b], pts[c]
	tr := triangle{a: a, b: b, c: c}

	ax, ay := p1.X-p0.X, p1.Y-p0.Y
	bx, by := p2.X-p0.X, p2.Y-p0.Y
	d := 2 * (ax*by - ay*bx)
	if math.Abs(d) < collinearEps {
		tr.cx, tr.cy = p0.X, p0.Y
		tr.rsq = math.Inf(1)
		return tr
	}

	asq := ax*ax + ay*ay
	bsq := bx*bx + by*by
	ux := (by*asq - ay*bsq) / d
	uy := (ax*bsq - bx*asq) / d
	tr.cx, tr.cy = p0.X+ux, p0.Y+uy
	tr.rsq = ux*ux + uy*uy
	return tr
}
