package tessella

import (
	"image"
	"image/png"
	"io"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
)

// Renderer draws a generated pattern onto a raster canvas for preview.
// Layer flags select what gets drawn; a Supersample factor above 1
// renders at a multiple of the clip size and downscales for smoother
// strokes.
type Renderer struct {
	LineWidth   float64
	Supersample int

	DrawPoints    bool
	DrawTriangles bool
	DrawCells     bool
	DrawProcessed bool
	DrawBoundary  bool
}

// NewRenderer returns a renderer with every layer enabled and a
// hairline stroke.
func NewRenderer() *Renderer {
	return &Renderer{
		LineWidth:     1,
		Supersample:   1,
		DrawPoints:    true,
		DrawTriangles: true,
		DrawCells:     true,
		DrawProcessed: true,
		DrawBoundary:  true,
	}
}

// Render rasterizes the pattern into an image sized to the clip
// rectangle.
func (r *Renderer) Render(pat *Pattern) image.Image {
	s := maxOf(r.Supersample, 1)
	rect := pat.Config.Rect
	w := int(rect.Width() + 0.5)
	h := int(rect.Height() + 0.5)

	ctx := gg.NewContext(w*s, h*s)
	ctx.SetRGBA(1, 1, 1, 1)
	ctx.Clear()
	ctx.SetLineWidth(r.LineWidth * float64(s))

	at := func(p Point) (float64, float64) {
		return (p.X - rect.X0) * float64(s), (p.Y - rect.Y0) * float64(s)
	}

	if r.DrawTriangles {
		ctx.SetRGBA(0.72, 0.72, 0.72, 1)
		for _, tri := range pat.Triangulation.Triangles {
			a, b, c := pat.Points[tri[0]], pat.Points[tri[1]], pat.Points[tri[2]]
			strokeRing(ctx, at, []Point{a, b, c})
		}
	}
	if r.DrawCells {
		ctx.SetRGBA(0.45, 0.45, 0.45, 1)
		for _, cell := range pat.Cells {
			if len(cell) >= 3 {
				strokeRing(ctx, at, cell)
			}
		}
	}
	if r.DrawProcessed {
		ctx.SetRGBA(0, 0, 0, 1)
		for _, cell := range pat.Processed {
			if len(cell) >= 3 {
				strokeRing(ctx, at, cell)
			}
		}
	}
	if r.DrawBoundary && pat.Boundary != nil {
		if ring := pat.Boundary.Ring(); len(ring) >= 3 {
			ctx.SetRGBA(0.85, 0.2, 0.2, 1)
			strokeRing(ctx, at, ring)
		}
	}
	if r.DrawPoints {
		ctx.SetRGBA(0, 0, 0, 1)
		for _, p := range pat.Points {
			x, y := at(p)
			ctx.DrawCircle(x, y, 1.5*float64(s))
			ctx.Fill()
		}
	}

	img := ctx.Image()
	if s == 1 {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// RenderPNG rasterizes the pattern and encodes it as PNG.
func (r *Renderer) RenderPNG(w io.Writer, pat *Pattern) error {
	if err := png.Encode(w, r.Render(pat)); err != nil {
		return errors.Wrap(err, "render: encoding png")
	}
	return nil
}

func strokeRing(ctx *gg.Context, at func(Point) (float64, float64), ring []Point) {
	x, y := at(ring[0])
	ctx.MoveTo(x, y)
	for _, p := range ring[1:] {
		x, y = at(p)
		ctx.LineTo(x, y)
	}
	ctx.ClosePath()
	ctx.Stroke()
}
