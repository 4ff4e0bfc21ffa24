package tessella

import "github.com/pkg/errors"

// Pattern is the complete output of one generation pass. It is derived
// entirely from the Config and Boundary it was produced with and is
// not mutated afterwards; regenerating with changed parameters simply
// replaces it.
type Pattern struct {
	Config   Config
	Boundary Boundary

	Points        []Point
	Triangulation *Triangulation
	// Cells holds the clipped Voronoi cell per point index; nil where
	// the cell degenerated (merged duplicate or fully outside).
	Cells [][]Point
	// Processed holds the inset and optionally rounded cell outlines.
	Processed [][]Point
}

// Generate runs the full pipeline: sampling, triangulation, Voronoi
// cell derivation and per-cell processing. The pass is a single
// synchronous unit of work; it either completes with a full result or
// fails validation up front.
func Generate(cfg Config, b Boundary) (*Pattern, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	points := SamplePoints(cfg, b)
	tri := Triangulate(points, cfg.Rect)
	cells := tri.Cells(cfg.Rect)

	processed := make([][]Point, len(cells))
	for i, cell := range cells {
		if len(cell) < 3 {
			continue
		}
		p := InsetPolygon(cell, cfg.Inset)
		if cfg.Rounded {
			p = RoundCorners(p, cfg.CornerRadius)
		}
		processed[i] = p
	}

	return &Pattern{
		Config:        cfg,
		Boundary:      b,
		Points:        points,
		Triangulation: tri,
		Cells:         cells,
		Processed:     processed,
	}, nil
}

// Selection picks which pattern layers are encoded for export.
type Selection struct {
	Triangles bool
	Cells     bool
	Processed bool
	Boundary  bool
	Points    bool
}

// ExportPrimitives encodes the selected layers as scaled line and
// point primitives. Exporting an empty pattern is an error: there is
// nothing to write.
func (pat *Pattern) ExportPrimitives(sel Selection, scale float64) ([]Primitive, error) {
	if len(pat.Points) == 0 {
		return nil, errors.New("export: pattern has no points")
	}

	enc := NewEncoder(scale)
	if sel.Triangles {
		enc.Triangulation(pat.Triangulation)
	}
	if sel.Cells {
		for _, cell := range pat.Cells {
			if len(cell) >= 2 {
				enc.Polygon(cell)
			}
		}
	}
	if sel.Processed {
		for _, cell := range pat.Processed {
			if len(cell) >= 2 {
				enc.Polygon(cell)
			}
		}
	}
	if sel.Boundary && pat.Boundary != nil {
		if ring := pat.Boundary.Ring(); len(ring) >= 2 {
			enc.Polygon(ring)
		}
	}
	if sel.Points {
		enc.Dots(pat.Points)
	}

	prims := enc.Primitives()
	if len(prims) == 0 {
		return nil, errors.New("export: selection produced no primitives")
	}
	return prims, nil
}

// ExportScale returns the scale factor implied by the configuration:
// the physical target diameter over the current boundary diameter, or
// 1 when no physical size is set or no boundary exists.
func (pat *Pattern) ExportScale() float64 {
	if pat.Boundary == nil {
		return 1
	}
	return ScaleForDiameter(pat.Config.TargetDiameter, pat.Boundary.Diameter())
}
