package penguinplot

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
)

// SVGRenderer is the vector surface: it writes a RenderPlan as an SVG
// document to an io.Writer.
type SVGRenderer struct {
	w   io.Writer
	ppu float64
}

// NewSVGRenderer creates an SVG surface drawing at pixelsPerUnit SVG user
// units per plot unit.
func NewSVGRenderer(w io.Writer, pixelsPerUnit float64) *SVGRenderer {
	return &SVGRenderer{w: w, ppu: pixelsPerUnit}
}

// errWriter tracks the first write error so Render can surface it; svgo
// itself ignores write failures.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}

// Render writes the plan as a complete SVG document.
func (r *SVGRenderer) Render(plan *RenderPlan) error {
	f := planFrame(plan, r.ppu)
	logger().Debug("svg render", "width", f.W, "height", f.H, "glyphs", len(plan.Glyphs))

	ew := &errWriter{w: r.w}
	canvas := svg.New(ew)
	canvas.Start(float64(f.W), float64(f.H))
	canvas.Rect(0, 0, float64(f.W), float64(f.H), "fill:#FFFFFF")

	for _, g := range plan.Glyphs {
		for _, s := range g.Spec {
			r.writeShape(canvas, f, s)
		}
	}

	r.writeLegend(canvas, f, plan.Legend)

	if plan.Title != "" {
		canvas.Text(float64(f.W)/2, (frameMargin+titleBand/2)*r.ppu, plan.Title,
			textStyle(titleSize*r.ppu, Black))
	}

	canvas.End()
	return ew.err
}

func (r *SVGRenderer) writeShape(canvas *svg.SVG, f frame, s Shape) {
	switch sh := s.(type) {
	case Polygon:
		xs := make([]float64, len(sh.Vertices))
		ys := make([]float64, len(sh.Vertices))
		for i, v := range sh.Vertices {
			dev := f.m.TransformPoint(v)
			xs[i], ys[i] = dev.X, dev.Y
		}
		canvas.Polygon(xs, ys, r.paintStyle(sh.Fill, sh.Stroke, sh.StrokeWidth))
	case Ellipse:
		dev := f.m.TransformPoint(sh.Center)
		canvas.Ellipse(dev.X, dev.Y, sh.RX*r.ppu, sh.RY*r.ppu,
			r.paintStyle(sh.Fill, sh.Stroke, sh.StrokeWidth))
	case Text:
		dev := f.m.TransformPoint(sh.Anchor)
		canvas.Text(dev.X, dev.Y, sh.Content, textStyle(sh.Size*r.ppu, sh.Color))
	}
}

func (r *SVGRenderer) writeLegend(canvas *svg.SVG, f frame, l Legend) {
	if len(l.Entries) == 0 {
		return
	}

	// No font metrics in SVG; approximate label width from the font size.
	measure := func(s string, sizePx float64) float64 {
		return 0.6 * sizePx * float64(len(s))
	}

	offsets, boxW, boxH := legendMetrics(l, r.ppu, measure)
	ox, oy := f.legendOrigin(l.Anchor, boxW, boxH)

	swatch := legendSwatch * r.ppu
	gap := legendGap * r.ppu
	itemH := legendItemH * r.ppu

	canvas.Gid("legend")
	for i, e := range l.Entries {
		x := ox + offsets[i].X
		y := oy + offsets[i].Y + (itemH-swatch)/2
		canvas.Rect(x, y, swatch, swatch, r.paintStyle(e.Color, Black, 1/r.ppu))
		canvas.Text(x+swatch+gap, oy+offsets[i].Y+itemH/2, e.Label,
			textStyle(legendTextSz*r.ppu, Black)+";text-anchor:start")
	}
	canvas.Gend()
}

// paintStyle renders fill and stroke as an SVG style attribute.
// strokeW is in plot units.
func (r *SVGRenderer) paintStyle(fill, stroke RGBA, strokeW float64) string {
	s := "fill:" + fill.HexString()
	if fill.A == 0 {
		s = "fill:none"
	} else if fill.A < 1 {
		s += fmt.Sprintf(";fill-opacity:%.3f", fill.A)
	}
	if strokeW > 0 && stroke.A > 0 {
		s += fmt.Sprintf(";stroke:%s;stroke-width:%.3f", stroke.HexString(), strokeW*r.ppu)
	} else {
		s += ";stroke:none"
	}
	return s
}

func textStyle(sizePx float64, c RGBA) string {
	return fmt.Sprintf(
		"font-family:sans-serif;font-size:%.2fpx;fill:%s;text-anchor:middle;dominant-baseline:middle",
		sizePx, c.HexString())
}
