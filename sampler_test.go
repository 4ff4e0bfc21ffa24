package tessella

import (
	"math"
	"testing"
)

func baseConfig() Config {
	return Config{
		Count:      5,
		Seed:       1,
		Randomness: 0,
		Rect:       NewRect(0, 0, 100, 100),
	}
}

// Scenario: seed 1, five points, no boundary, zero randomness yields a
// reproducible near-grid layout.
func TestSampleNearGridDeterminism(t *testing.T) {
	cfg := baseConfig()
	a := SamplePoints(cfg, nil)
	b := SamplePoints(cfg, nil)

	if len(a) != 5 {
		t.Fatalf("delivered %d points, want 5", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs between identical runs: %v != %v", i, a[i], b[i])
		}
	}
}

func TestSampleMarginRespected(t *testing.T) {
	cfg := baseConfig()
	cfg.Count = 60
	cfg.Randomness = 0.9
	cfg.Seed = 17

	for _, p := range SamplePoints(cfg, nil) {
		if p.X < 10 || p.X > 90 || p.Y < 10 || p.Y > 90 {
			t.Errorf("point %v outside the margin-inset rectangle", p)
		}
	}
}

// Scenario: a tight circle boundary keeps every delivered point inside
// the circle and may under-deliver rather than hang.
func TestSampleCircleBoundary(t *testing.T) {
	cfg := baseConfig()
	cfg.Count = 50
	cfg.Randomness = 0.8
	cfg.Seed = 3
	circle := Circle{C: Pt(50, 50), R: 10}

	points := SamplePoints(cfg, circle)
	if len(points) == 0 {
		t.Fatal("no points delivered")
	}
	if len(points) > 50 {
		t.Fatalf("delivered %d points, more than requested", len(points))
	}
	for i, p := range points {
		if d := p.Dist(circle.C); d > circle.R+1e-9 {
			t.Errorf("point %d at distance %v from center, radius is %v", i, d, circle.R)
		}
	}
	if points[0] != circle.C {
		t.Errorf("first point %v is not the reserved region center", points[0])
	}
}

// A circle that comfortably fits the requested count must not starve
// the near-grid strategy: grid cells outside the circle are skipped,
// not retried forever, so delivery stays close to the request.
func TestSampleNearGridWithRoomyCircle(t *testing.T) {
	cfg := baseConfig()
	cfg.Count = 40
	cfg.Randomness = 0
	circle := Circle{C: Pt(50, 50), R: 30}

	points := SamplePoints(cfg, circle)
	if len(points) < cfg.Count/2 {
		t.Fatalf("delivered %d of %d points inside a roomy boundary", len(points), cfg.Count)
	}
	if points[0] != circle.C {
		t.Errorf("first point %v is not the reserved region center", points[0])
	}
	for i, p := range points {
		if d := p.Dist(circle.C); d > circle.R+1e-9 {
			t.Errorf("point %d at distance %v from center, radius is %v", i, d, circle.R)
		}
	}

	again := SamplePoints(cfg, circle)
	if len(again) != len(points) {
		t.Fatalf("repeat run delivered %d points, first run %d", len(again), len(points))
	}
	for i := range points {
		if points[i] != again[i] {
			t.Fatalf("point %d differs between identical runs", i)
		}
	}
}

func TestSampleUnderDeliversOnRestrictiveBoundary(t *testing.T) {
	cfg := baseConfig()
	cfg.Count = 500
	cfg.Randomness = 1
	cfg.Seed = 5

	// A circle covering well under a percent of the canvas cannot
	// absorb 500 uniform placements within the attempt cap.
	points := SamplePoints(cfg, Circle{C: Pt(50, 50), R: 3})
	if len(points) >= 500 {
		t.Fatalf("expected under-delivery, got %d of 500", len(points))
	}
}

func TestSampleBlendedModeStaysDeterministic(t *testing.T) {
	cfg := baseConfig()
	cfg.Count = 30
	cfg.Randomness = 0.5
	cfg.Seed = 11

	a := SamplePoints(cfg, nil)
	b := SamplePoints(cfg, nil)
	if len(a) != len(b) {
		t.Fatalf("run lengths differ: %d != %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %v != %v", i, a[i], b[i])
		}
	}
}

func TestSampleSmallRectShrinksMargin(t *testing.T) {
	cfg := Config{Count: 3, Seed: 2, Rect: NewRect(0, 0, 12, 12)}
	points := SamplePoints(cfg, nil)
	if len(points) == 0 {
		t.Fatal("no points delivered on a small rectangle")
	}
	for _, p := range points {
		if p.X < 3-1e-9 || p.X > 9+1e-9 || p.Y < 3-1e-9 || p.Y > 9+1e-9 {
			t.Errorf("point %v outside the shrunk margin area", p)
		}
	}
}

func TestSampleGridJitterBounded(t *testing.T) {
	cfg := baseConfig()
	cfg.Count = 9
	cfg.Seed = 4

	// 9 points on an 80x80 effective area: 3x3 grid, 26.67x26.67
	// cells, jitter at most 20% of the cell size off center.
	points := SamplePoints(cfg, nil)
	cell := 80.0 / 3
	for i, p := range points {
		col := i % 3
		row := i / 3
		cx := 10 + (float64(col)+0.5)*cell
		cy := 10 + (float64(row)+0.5)*cell
		if math.Abs(p.X-cx) > gridJitter*cell+1e-9 || math.Abs(p.Y-cy) > gridJitter*cell+1e-9 {
			t.Errorf("point %d = %v strayed from its cell center (%v, %v)", i, p, cx, cy)
		}
	}
}
