package penguinplot

import (
	"fmt"
	"image"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/penguinplot/internal/raster"
)

// ellipseSegments is the flattening resolution for ellipse primitives.
// At glyph sizes a 64-gon is visually indistinguishable from the true
// curve.
const ellipseSegments = 64

// labelFont is the embedded face used for labels, legend text and titles,
// parsed once on first use.
var labelFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// SoftwareOption configures a SoftwareRenderer.
type SoftwareOption func(*SoftwareRenderer)

// WithBackground sets the canvas background color. The default is white.
func WithBackground(c RGBA) SoftwareOption {
	return func(r *SoftwareRenderer) {
		r.background = c
	}
}

// SoftwareRenderer is the CPU raster surface: it rasterizes a RenderPlan
// into a Pixmap with anti-aliasing. The zero cost of the declarative core
// is paid here, once per invocation.
type SoftwareRenderer struct {
	ppu        float64
	background RGBA

	pixmap *Pixmap
	ras    *raster.Rasterizer
}

// NewSoftwareRenderer creates a raster surface drawing at pixelsPerUnit
// device pixels per plot unit (one glyph cell is one plot unit).
func NewSoftwareRenderer(pixelsPerUnit float64, opts ...SoftwareOption) *SoftwareRenderer {
	r := &SoftwareRenderer{
		ppu:        pixelsPerUnit,
		background: White,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Pixmap returns the result of the last Render call, or nil before the
// first one.
func (r *SoftwareRenderer) Pixmap() *Pixmap {
	return r.pixmap
}

// Image returns the last rendered image, or nil before the first Render.
func (r *SoftwareRenderer) Image() image.Image {
	if r.pixmap == nil {
		return nil
	}
	return r.pixmap.Image()
}

// Render rasterizes the plan into a fresh pixmap. Each call is
// self-contained; nothing is shared with previous invocations.
func (r *SoftwareRenderer) Render(plan *RenderPlan) error {
	fnt, err := labelFont()
	if err != nil {
		return fmt.Errorf("penguinplot: parsing label font: %w", err)
	}

	f := planFrame(plan, r.ppu)
	logger().Debug("software render", "width", f.W, "height", f.H, "glyphs", len(plan.Glyphs))

	r.pixmap = NewPixmap(f.W, f.H)
	r.pixmap.Clear(r.background)
	r.ras = raster.New(f.W, f.H)

	for _, g := range plan.Glyphs {
		for _, s := range g.Spec {
			if err := r.drawShape(f, fnt, s); err != nil {
				return err
			}
		}
	}

	if err := r.drawLegend(f, fnt, plan.Legend); err != nil {
		return err
	}

	if plan.Title != "" {
		x := float64(f.W) / 2
		y := (frameMargin + titleBand/2) * r.ppu
		if err := r.drawText(fnt, plan.Title, x, y, titleSize*r.ppu, Black); err != nil {
			return err
		}
	}
	return nil
}

func (r *SoftwareRenderer) drawShape(f frame, fnt *opentype.Font, s Shape) error {
	switch sh := s.(type) {
	case Polygon:
		r.fillStroke(f, sh.Vertices, sh.Fill, sh.Stroke, sh.StrokeWidth)
	case Ellipse:
		r.fillStroke(f, flattenEllipse(sh), sh.Fill, sh.Stroke, sh.StrokeWidth)
	case Text:
		dev := f.m.TransformPoint(sh.Anchor)
		return r.drawText(fnt, sh.Content, dev.X, dev.Y, sh.Size*r.ppu, sh.Color)
	}
	return nil
}

// fillStroke fills a plot-space polygon and then strokes its outline when
// the stroke is visible.
func (r *SoftwareRenderer) fillStroke(f frame, verts []Point, fill, stroke RGBA, strokeW float64) {
	pts := make([]raster.Point, len(verts))
	for i, v := range verts {
		dev := f.m.TransformPoint(v)
		pts[i] = raster.Point{X: dev.X, Y: dev.Y}
	}
	if fill.A > 0 {
		r.ras.FillPolygon(r.pixmap.NRGBA(), pts, fill.Color())
	}
	if strokeW > 0 && stroke.A > 0 {
		r.ras.StrokePolygon(r.pixmap.NRGBA(), pts, strokeW*r.ppu, stroke.Color())
	}
}

// flattenEllipse converts an ellipse to a polygon in plot space.
func flattenEllipse(e Ellipse) []Point {
	pts := make([]Point, ellipseSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		pts[i] = Pt(e.Center.X+e.RX*math.Cos(a), e.Center.Y+e.RY*math.Sin(a))
	}
	return pts
}

// drawText draws a string centered on (x, y) in device pixels.
func (r *SoftwareRenderer) drawText(fnt *opentype.Font, s string, x, y, sizePx float64, c RGBA) error {
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("penguinplot: sizing label font: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	d := font.Drawer{
		Dst:  r.pixmap.NRGBA(),
		Src:  image.NewUniform(c.Color()),
		Face: face,
	}
	w := float64(d.MeasureString(s)) / 64
	m := face.Metrics()
	// Center the cap box on y: baseline sits half the x-height below.
	baseline := y + float64(m.XHeight)/128
	d.Dot = fixed.P(int(x-w/2), int(baseline))
	d.DrawString(s)
	return nil
}

// drawLegend draws swatches and labels per the legend's placement config.
func (r *SoftwareRenderer) drawLegend(f frame, fnt *opentype.Font, l Legend) error {
	if len(l.Entries) == 0 {
		return nil
	}

	measure := func(s string, sizePx float64) float64 {
		face, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: sizePx, DPI: 72})
		if err != nil {
			return 0
		}
		defer func() {
			_ = face.Close()
		}()
		return float64(font.MeasureString(face, s)) / 64
	}

	offsets, boxW, boxH := legendMetrics(l, r.ppu, measure)
	ox, oy := f.legendOrigin(l.Anchor, boxW, boxH)

	swatch := legendSwatch * r.ppu
	gap := legendGap * r.ppu
	itemH := legendItemH * r.ppu

	for i, e := range l.Entries {
		x := ox + offsets[i].X
		y := oy + offsets[i].Y + (itemH-swatch)/2

		quad := []raster.Point{
			{X: x, Y: y},
			{X: x + swatch, Y: y},
			{X: x + swatch, Y: y + swatch},
			{X: x, Y: y + swatch},
		}
		r.ras.FillPolygon(r.pixmap.NRGBA(), quad, e.Color.Color())
		r.ras.StrokePolygon(r.pixmap.NRGBA(), quad, 1, Black.Color())

		tw := measure(e.Label, legendTextSz*r.ppu)
		tx := x + swatch + gap + tw/2
		ty := oy + offsets[i].Y + itemH/2
		if err := r.drawText(fnt, e.Label, tx, ty, legendTextSz*r.ppu, Black); err != nil {
			return err
		}
	}
	return nil
}
