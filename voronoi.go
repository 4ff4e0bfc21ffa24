package tessella

import (
	"math"
	"sort"
)

// Cells derives the Voronoi cell of every input point, clipped to the
// rectangle. A cell is the circumcenters of the triangles incident to
// its site, ordered angularly around the site and clipped by the four
// rectangle half-planes. Merged duplicate sites get a nil cell. With a
// single input point the tessellation is trivial: its cell is the
// whole rectangle.
func (t *Triangulation) Cells(rect Rect) [][]Point {
	cells := make([][]Point, len(t.Points))
	if len(t.Points) == 0 {
		return cells
	}
	if len(t.Points) == 1 {
		cells[0] = rect.Corners()
		return cells
	}

	incident := make([][]Point, len(t.Points))
	for _, tr := range t.tris {
		c := Point{X: tr.cx, Y: tr.cy}
		if !c.IsFinite() {
			continue
		}
		for _, v := range [3]int{tr.a, tr.b, tr.c} {
			if v < len(t.Points) {
				incident[v] = append(incident[v], c)
			}
		}
	}

	clipped := 0
	for i, site := range t.Points {
		// merged is only populated by Triangulate; a hand-built
		// Triangulation has none, so every site counts as distinct.
		if i < len(t.merged) && t.merged[i] {
			continue
		}
		verts := incident[i]
		if len(verts) < 3 {
			continue
		}
		sortAroundSite(verts, site)
		if cell := clipToRect(verts, rect); len(cell) >= 3 {
			cells[i] = cell
			clipped++
		}
	}
	logger().Debug("derived cells", "sites", len(t.Points), "cells", clipped)
	return cells
}

// sortAroundSite orders the vertices by angle about the site. The true
// Voronoi cell is convex with exactly these vertices, so the angular
// order reconstructs its boundary.
func sortAroundSite(verts []Point, site Point) {
	angles := make([]float64, len(verts))
	for i, v := range verts {
		angles[i] = math.Atan2(v.Y-site.Y, v.X-site.X)
	}
	sort.Sort(&byAngle{verts: verts, angles: angles})
}

type byAngle struct {
	verts  []Point
	angles []float64
}

func (s *byAngle) Len() int           { return len(s.verts) }
func (s *byAngle) Less(i, j int) bool { return s.angles[i] < s.angles[j] }
func (s *byAngle) Swap(i, j int) {
	s.verts[i], s.verts[j] = s.verts[j], s.verts[i]
	s.angles[i], s.angles[j] = s.angles[j], s.angles[i]
}

// clipToRect runs Sutherland–Hodgman clipping of a closed polygon
// against the four rectangle half-planes in turn.
func clipToRect(poly []Point, r Rect) []Point {
	poly = clipHalfPlane(poly,
		func(p Point) bool { return p.X >= r.X0 },
		func(a, b Point) Point { return crossVertical(a, b, r.X0) })
	poly = clipHalfPlane(poly,
		func(p Point) bool { return p.X <= r.X1 },
		func(a, b Point) Point { return crossVertical(a, b, r.X1) })
	poly = clipHalfPlane(poly,
		func(p Point) bool { return p.Y >= r.Y0 },
		func(a, b Point) Point { return crossHorizontal(a, b, r.Y0) })
	poly = clipHalfPlane(poly,
		func(p Point) bool { return p.Y <= r.Y1 },
		func(a, b Point) Point { return crossHorizontal(a, b, r.Y1) })
	return poly
}

// clipHalfPlane keeps the part of the polygon inside one half-plane,
// inserting the edge crossing point wherever the boundary is crossed.
func clipHalfPlane(poly []Point, inside func(Point) bool, cross func(a, b Point) Point) []Point {
	if len(poly) == 0 {
		return nil
	}
	out := make([]Point, 0, len(poly)+4)
	prev := poly[len(poly)-1]
	for _, cur := range poly {
		if inside(cur) {
			if !inside(prev) {
				out = append(out, cross(prev, cur))
			}
			out = append(out, cur)
		} else if inside(prev) {
			out = append(out, cross(prev, cur))
		}
		prev = cur
	}
	return out
}

func crossVertical(a, b Point, x float64) Point {
	t := (x - a.X) / (b.X - a.X)
	return Point{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

func crossHorizontal(a, b Point, y float64) Point {
	t := (y - a.Y) / (b.Y - a.Y)
	return Point{X: a.X + t*(b.X-a.X), Y: y}
}
