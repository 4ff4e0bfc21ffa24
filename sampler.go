package tessella

import "math"

const (
	// sampleMargin keeps candidates off the exact clip rectangle edge.
	// Small rectangles shrink the margin so an effective area remains.
	sampleMargin = 10.0

	// gridThreshold is the randomness factor below which the sampler
	// lays points out on a near-regular grid.
	gridThreshold = 0.1

	// gridJitter is the maximum near-grid displacement, as a fraction
	// of the grid cell size.
	gridJitter = 0.2

	// attemptFactor bounds the total number of placement attempts per
	// pass at attemptFactor*Count, so a boundary too restrictive for
	// the requested density under-delivers instead of spinning.
	attemptFactor = 10
)

// SamplePoints produces up to cfg.Count points inside the margin-inset
// clip rectangle and inside the boundary region. A nil boundary means
// only the rectangle constrains placement. Candidates outside either
// constraint are retried, bounded by a global attempt cap, so the
// result may hold fewer points than requested. Output order is
// insertion order; equal configurations reproduce identical output.
func SamplePoints(cfg Config, b Boundary) []Point {
	rng := NewRand(cfg.Seed)
	randomness := clamp(cfg.Randomness, 0, 1)
	margin := minOf(sampleMargin, 0.25*minOf(cfg.Rect.Width(), cfg.Rect.Height()))
	area := cfg.Rect.Inset(margin)
	w, h := area.Width(), area.Height()

	points := make([]Point, 0, cfg.Count)
	if b != nil {
		// The region center is always kept, so even an extreme
		// boundary/count combination delivers at least one point.
		points = append(points, b.Center())
	}

	remaining := cfg.Count - len(points)
	if remaining <= 0 {
		return points
	}

	cols := int(math.Ceil(math.Sqrt(float64(remaining) * w / h)))
	if cols < 1 {
		cols = 1
	}
	rows := (remaining + cols - 1) / cols
	cellW, cellH := w/float64(cols), h/float64(rows)

	maxAttempts := attemptFactor * cfg.Count
	attempts := 0
	slot := 0
	cells := cols * rows
	for len(points) < cfg.Count && attempts < maxAttempts {
		attempts++

		var cand Point
		switch {
		case randomness < gridThreshold:
			cand = gridPoint(area, slot, cols, cellW, cellH, gridJitter, rng)
		case rng.Float64() < randomness:
			cand = Point{X: area.X0 + rng.Float64()*w, Y: area.Y0 + rng.Float64()*h}
		default:
			cand = gridPoint(area, slot, cols, cellW, cellH, randomness, rng)
		}

		// The slot advances on rejection too, wrapping over the grid,
		// so a cell the boundary can never accept is skipped instead
		// of pinning the whole pass on retries of one cell.
		slot = (slot + 1) % cells
		if !area.Contains(cand) {
			continue
		}
		if b != nil && !b.Contains(cand) {
			continue
		}
		points = append(points, cand)
	}

	logger().Debug("sampled points",
		"requested", cfg.Count, "delivered", len(points), "attempts", attempts)
	return points
}

// gridPoint places a slot at its grid cell center plus a jittered
// displacement of at most jitter*cell in each axis.
func gridPoint(area Rect, slot, cols int, cellW, cellH, jitter float64, rng *Rand) Point {
	col := slot % cols
	row := slot / cols
	jx := (rng.Float64() - 0.5) * 2 * jitter * cellW
	jy := (rng.Float64() - 0.5) * 2 * jitter * cellH
	return Point{
		X: area.X0 + (float64(col)+0.5)*cellW + jx,
		Y: area.Y0 + (float64(row)+0.5)*cellH + jy,
	}
}
