package tessella

import "math"

const (
	// cornerSteps is the number of interpolated points emitted per
	// rounded corner.
	cornerSteps = 8

	// roundBulge scales the sinusoidal outward bulge of a rounded
	// corner relative to the vertex-to-chord-midpoint distance.
	roundBulge = 0.5
)

// InsetPolygon moves every vertex toward the polygon centroid by
// distance d. This is a radial inset, not a true offset polygon: on
// very thin or non-convex cells the result can self-intersect, which
// is accepted for the cell shapes this pipeline produces. A vertex
// coincident with the centroid is left unmoved. With d = 0 the input
// is returned as an unchanged copy.
func InsetPolygon(poly []Point, d float64) []Point {
	out := make([]Point, len(poly))
	if d == 0 {
		copy(out, poly)
		return out
	}
	c := Centroid(poly)
	for i, v := range poly {
		dir := c.Sub(v)
		l := dir.Length()
		if l == 0 {
			out[i] = v
			continue
		}
		out[i] = v.Add(dir.Mul(d / l))
	}
	return out
}

// RoundCorners replaces every vertex with a polygonal arc
// approximation. The effective radius is limited to half of each
// adjacent edge so the rounding can never overrun the cell. Each
// corner emits cornerSteps points between the two corner-offset
// points, with a sinusoidal bulge toward the original vertex standing
// in for the circular arc. A non-positive radius returns an unchanged
// copy.
func RoundCorners(poly []Point, radius float64) []Point {
	if len(poly) < 3 || radius <= 0 {
		out := make([]Point, len(poly))
		copy(out, poly)
		return out
	}

	n := len(poly)
	out := make([]Point, 0, n*cornerSteps)
	for i := 0; i < n; i++ {
		prev := poly[(i+n-1)%n]
		v := poly[i]
		next := poly[(i+1)%n]

		toPrev := prev.Sub(v)
		toNext := next.Sub(v)
		lp := toPrev.Length()
		ln := toNext.Length()
		if lp == 0 || ln == 0 {
			out = append(out, v)
			continue
		}

		r := minOf(radius, minOf(lp, ln)/2)
		pa := v.Add(toPrev.Mul(r / lp))
		pb := v.Add(toNext.Mul(r / ln))
		mid := pa.Add(pb).Mul(0.5)
		bulgeDir := v.Sub(mid).Normalize()
		bulge := v.Dist(mid) * roundBulge

		for k := 0; k < cornerSteps; k++ {
			t := float64(k) / float64(cornerSteps-1)
			base := pa.Add(pb.Sub(pa).Mul(t))
			out = append(out, base.Add(bulgeDir.Mul(math.Sin(t*math.Pi)*bulge)))
		}
	}
	return out
}
