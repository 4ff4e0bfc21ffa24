package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/esimov/tessella"
	"github.com/esimov/tessella/utils"
)

var (
	// Flags
	count      = flag.Int("count", 100, "Number of points to generate")
	seed       = flag.Int64("seed", 1, "Generation seed")
	randomness = flag.Float64("rand", 0.5, "Randomness factor between 0 and 1")
	shape      = flag.String("shape", "none", "Boundary shape: none, circle, jagged, poly")
	radius     = flag.Float64("radius", 0, "Boundary radius (0 = 45% of the canvas)")
	jaggedness = flag.Float64("jag", 0.3, "Jaggedness factor between 0 and 1")
	jaggedRes  = flag.Int("res", 24, "Jagged boundary vertex count")
	vertices   = flag.String("vertices", "", "Polygon boundary vertices, e.g. 10,10;90,20;50,80")
	width      = flag.Float64("width", 800, "Canvas width")
	height     = flag.Float64("height", 800, "Canvas height")
	inset      = flag.Float64("inset", 4, "Cell inset distance")
	rounded    = flag.Bool("round", false, "Round cell corners")
	cornerRad  = flag.Float64("corner", 6, "Corner rounding radius")
	diameter   = flag.Float64("diameter", 0, "Physical export diameter in mm (0 = canvas units)")

	pngOut = flag.String("png", "", "Preview PNG output path")
	svgOut = flag.String("svg", "", "SVG output path")
	dxfOut = flag.String("dxf", "", "DXF output path")
	super  = flag.Int("super", 2, "Preview supersampling factor")

	expTriangles = flag.Bool("triangles", false, "Export triangulation edges")
	expCells     = flag.Bool("cells", false, "Export raw cell outlines")
	expProcessed = flag.Bool("processed", true, "Export processed cell outlines")
	expBoundary  = flag.Bool("boundary", true, "Export the boundary ring")
	expPoints    = flag.Bool("points", false, "Export the raw points")
)

func main() {
	flag.Parse()

	if *pngOut == "" && *svgOut == "" && *dxfOut == "" {
		log.Fatal("Usage: tessella [-count n] [-seed n] [-shape circle] -png out.png | -svg out.svg | -dxf out.dxf")
	}

	cfg := tessella.Config{
		Count:          *count,
		Seed:           *seed,
		Randomness:     *randomness,
		Jaggedness:     *jaggedness,
		JaggedRes:      *jaggedRes,
		Rect:           tessella.NewRect(0, 0, *width, *height),
		Inset:          *inset,
		Rounded:        *rounded,
		CornerRadius:   *cornerRad,
		TargetDiameter: *diameter,
	}

	boundary, err := buildBoundary(cfg)
	if err != nil {
		log.Fatalf("Invalid boundary: %v", err)
	}

	spinner := utils.NewSpinner()
	spinner.Start("Generating pattern")
	start := time.Now()

	pat, err := tessella.Generate(cfg, boundary)
	spinner.Stop()
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}
	fmt.Fprintf(os.Stderr, "%sGenerated %d points, %d triangles in %s%s\n",
		utils.SuccessColor, len(pat.Points), len(pat.Triangulation.Triangles),
		utils.FormatTime(time.Since(start)), utils.DefaultColor)

	if *pngOut != "" {
		writePNG(pat, *pngOut)
	}
	if *svgOut != "" || *dxfOut != "" {
		writeVectors(pat)
	}
}

func buildBoundary(cfg tessella.Config) (tessella.Boundary, error) {
	center := tessella.Pt(cfg.Rect.Width()/2, cfg.Rect.Height()/2)
	r := *radius
	if r <= 0 {
		if cfg.Rect.Width() < cfg.Rect.Height() {
			r = 0.45 * cfg.Rect.Width()
		} else {
			r = 0.45 * cfg.Rect.Height()
		}
	}

	switch *shape {
	case "none":
		return nil, nil
	case "circle":
		return tessella.Circle{C: center, R: r}, nil
	case "jagged":
		return tessella.NewJagged(center, r, cfg.JaggedRes, cfg.Jaggedness, cfg.Seed), nil
	case "poly":
		ring, err := parseVertices(*vertices)
		if err != nil {
			return nil, err
		}
		return tessella.NewPolygon(ring), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", *shape)
	}
}

// parseVertices decodes a semicolon separated list of x,y pairs.
func parseVertices(s string) ([]tessella.Point, error) {
	if s == "" {
		return nil, fmt.Errorf("shape poly requires -vertices")
	}
	var ring []tessella.Point
	for _, pair := range strings.Split(s, ";") {
		xy := strings.Split(pair, ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("malformed vertex %q", pair)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xy[0]), 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(xy[1]), 64)
		if err != nil {
			return nil, err
		}
		ring = append(ring, tessella.Pt(x, y))
	}
	return ring, nil
}

func writePNG(pat *tessella.Pattern, path string) {
	renderer := tessella.NewRenderer()
	renderer.Supersample = *super
	renderer.DrawTriangles = *expTriangles
	renderer.DrawCells = *expCells
	renderer.DrawProcessed = *expProcessed
	renderer.DrawBoundary = *expBoundary
	renderer.DrawPoints = *expPoints

	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Unable to create preview file: %v", err)
	}
	defer f.Close()

	if err := renderer.RenderPNG(f, pat); err != nil {
		log.Fatalf("Unable to render preview: %v", err)
	}
	fmt.Fprintf(os.Stderr, "Saved preview to %s\n", path)
}

func writeVectors(pat *tessella.Pattern) {
	sel := tessella.Selection{
		Triangles: *expTriangles,
		Cells:     *expCells,
		Processed: *expProcessed,
		Boundary:  *expBoundary,
		Points:    *expPoints,
	}
	scale := pat.ExportScale()
	prims, err := pat.ExportPrimitives(sel, scale)
	if err != nil {
		log.Fatalf("Nothing to export: %v", err)
	}

	if *svgOut != "" {
		f, err := os.Create(*svgOut)
		if err != nil {
			log.Fatalf("Unable to create SVG file: %v", err)
		}
		tessella.WriteSVG(f, prims, pat.Config.Rect.Width()*scale,
			pat.Config.Rect.Height()*scale, tessella.DefaultSVGStyle)
		f.Close()
		fmt.Fprintf(os.Stderr, "Saved %d primitives to %s\n", len(prims), *svgOut)
	}
	if *dxfOut != "" {
		f, err := os.Create(*dxfOut)
		if err != nil {
			log.Fatalf("Unable to create DXF file: %v", err)
		}
		if err := tessella.WriteDXF(f, prims); err != nil {
			log.Fatalf("Unable to write DXF: %v", err)
		}
		f.Close()
		fmt.Fprintf(os.Stderr, "Saved %d primitives to %s\n", len(prims), *dxfOut)
	}
}
