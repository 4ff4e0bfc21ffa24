package tessella

import (
	"testing"
)

func TestGeneratePipeline(t *testing.T) {
	cfg := Config{
		Count:        40,
		Seed:         12,
		Randomness:   0.5,
		Rect:         NewRect(0, 0, 400, 400),
		Inset:        3,
		Rounded:      true,
		CornerRadius: 4,
	}
	boundary := Circle{C: Pt(200, 200), R: 150}

	pat, err := Generate(cfg, boundary)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(pat.Points) == 0 {
		t.Fatal("no points generated")
	}
	if len(pat.Cells) != len(pat.Points) || len(pat.Processed) != len(pat.Points) {
		t.Fatalf("cells are not keyed by point index: %d points, %d cells, %d processed",
			len(pat.Points), len(pat.Cells), len(pat.Processed))
	}
	for i, p := range pat.Points {
		if d := p.Dist(boundary.C); d > boundary.R+1e-9 {
			t.Errorf("point %d at distance %v outside the boundary", i, d)
		}
	}
	for i, cell := range pat.Cells {
		if len(cell) >= 3 && len(pat.Processed[i]) < 3 {
			t.Errorf("cell %d lost its processed outline", i)
		}
	}
}

func TestGenerateReproducible(t *testing.T) {
	cfg := Config{Count: 25, Seed: 99, Randomness: 0.3, Rect: NewRect(0, 0, 200, 200)}
	a, err := Generate(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Fatalf("point %d differs between identical generations", i)
		}
	}
	for i := range a.Triangulation.Triangles {
		if a.Triangulation.Triangles[i] != b.Triangulation.Triangles[i] {
			t.Fatalf("triangle %d differs between identical generations", i)
		}
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	if _, err := Generate(Config{Count: 0, Rect: NewRect(0, 0, 10, 10)}, nil); err == nil {
		t.Error("zero count accepted")
	}
	if _, err := Generate(Config{Count: 5, Rect: NewRect(0, 0, 0, 10)}, nil); err == nil {
		t.Error("degenerate rectangle accepted")
	}
}

func TestExportPrimitivesSelection(t *testing.T) {
	cfg := Config{Count: 12, Seed: 4, Randomness: 0.4, Rect: NewRect(0, 0, 100, 100)}
	pat, err := Generate(cfg, Circle{C: Pt(50, 50), R: 40})
	if err != nil {
		t.Fatal(err)
	}

	prims, err := pat.ExportPrimitives(Selection{Cells: true, Boundary: true, Points: true}, 1)
	if err != nil {
		t.Fatalf("ExportPrimitives: %v", err)
	}
	var lines, dots int
	for _, p := range prims {
		switch p.(type) {
		case Line:
			lines++
		case Dot:
			dots++
		}
	}
	if dots != len(pat.Points) {
		t.Errorf("got %d dots, want %d", dots, len(pat.Points))
	}
	if lines == 0 {
		t.Error("no line primitives for cells and boundary")
	}

	if _, err := pat.ExportPrimitives(Selection{}, 1); err == nil {
		t.Error("empty selection produced primitives")
	}
}

func TestExportScaleUsesBoundaryDiameter(t *testing.T) {
	cfg := Config{Count: 5, Seed: 2, Rect: NewRect(0, 0, 100, 100), TargetDiameter: 90}
	pat, err := Generate(cfg, Circle{C: Pt(50, 50), R: 45})
	if err != nil {
		t.Fatal(err)
	}
	if got := pat.ExportScale(); got != 1 {
		// 90mm target over a 90 unit diameter boundary.
		t.Errorf("ExportScale() = %v, want 1", got)
	}

	pat.Config.TargetDiameter = 45
	if got := pat.ExportScale(); got != 0.5 {
		t.Errorf("ExportScale() = %v, want 0.5", got)
	}

	pat.Boundary = nil
	if got := pat.ExportScale(); got != 1 {
		t.Errorf("ExportScale() without boundary = %v, want 1", got)
	}
}

func TestRenderProducesImage(t *testing.T) {
	cfg := Config{Count: 15, Seed: 8, Randomness: 0.5, Rect: NewRect(0, 0, 120, 80), Inset: 2}
	pat, err := Generate(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}

	r := NewRenderer()
	img := r.Render(pat)
	b := img.Bounds()
	if b.Dx() != 120 || b.Dy() != 80 {
		t.Errorf("image is %dx%d, want 120x80", b.Dx(), b.Dy())
	}

	r.Supersample = 2
	img = r.Render(pat)
	b = img.Bounds()
	if b.Dx() != 120 || b.Dy() != 80 {
		t.Errorf("supersampled image is %dx%d, want 120x80", b.Dx(), b.Dy())
	}
}
