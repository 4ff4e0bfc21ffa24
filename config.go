package tessella

import (
	"math"

	"github.com/pkg/errors"
)

// Rect is an axis-aligned clip rectangle with X1 > X0 and Y1 > Y0.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect builds a rectangle from its opposite corners.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Corners returns the four rectangle corners in ring order starting
// at (X0, Y0).
func (r Rect) Corners() []Point {
	return []Point{
		{X: r.X0, Y: r.Y0},
		{X: r.X1, Y: r.Y0},
		{X: r.X1, Y: r.Y1},
		{X: r.X0, Y: r.Y1},
	}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// Inset returns the rectangle shrunk by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X0: r.X0 + d, Y0: r.Y0 + d, X1: r.X1 - d, Y1: r.Y1 - d}
}

// Config is an immutable snapshot of the generation parameters. The
// caller builds one per generation request and passes it through the
// pipeline; no stage reads ambient state or mutates the snapshot.
type Config struct {
	// Count is the requested number of points. Restrictive boundaries
	// may cause fewer points to be delivered.
	Count int
	// Seed drives every random draw of the generation pass.
	Seed int64
	// Randomness blends grid layout (0) against uniform placement (1).
	Randomness float64
	// Jaggedness is the radial perturbation factor for jagged
	// circle boundaries, 0 leaving the base circle untouched.
	Jaggedness float64
	// JaggedRes is the vertex count of a jagged boundary ring.
	JaggedRes int
	// Rect is the clip window for sampling and tessellation.
	Rect Rect
	// Inset is the per-cell offset distance toward the cell centroid.
	Inset float64
	// Rounded enables corner rounding of processed cells with
	// CornerRadius as the requested radius.
	Rounded      bool
	CornerRadius float64
	// TargetDiameter, when positive, is the physical diameter in
	// millimeters the exported boundary should map to. Zero exports
	// raw canvas units.
	TargetDiameter float64
}

// Validate surfaces the hard failure conditions: non-finite inputs, a
// degenerate clip rectangle and a zero point count. Everything else
// degrades gracefully and is not an error.
func (c Config) Validate() error {
	for _, v := range []float64{
		c.Rect.X0, c.Rect.Y0, c.Rect.X1, c.Rect.Y1,
		c.Randomness, c.Jaggedness, c.Inset, c.CornerRadius, c.TargetDiameter,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("config: non-finite parameter")
		}
	}
	if c.Rect.Width() <= 0 || c.Rect.Height() <= 0 {
		return errors.Errorf("config: clip rectangle has non-positive size (%gx%g)",
			c.Rect.Width(), c.Rect.Height())
	}
	if c.Count < 1 {
		return errors.Errorf("config: point count must be at least 1, got %d", c.Count)
	}
	return nil
}
