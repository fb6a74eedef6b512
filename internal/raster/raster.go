// Package raster rasterizes filled and stroked polygons with
// anti-aliasing, on top of the golang.org/x/image/vector scanline
// rasterizer. Coordinates are device pixels.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Point is a device-space vertex.
type Point struct {
	X, Y float64
}

// Rasterizer fills polygon coverage into a destination image. It reuses
// one vector.Rasterizer across calls; a Rasterizer is not safe for
// concurrent use.
type Rasterizer struct {
	width  int
	height int
	vec    *vector.Rasterizer
}

// New creates a rasterizer for a destination of the given dimensions.
func New(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
		vec:    vector.NewRasterizer(width, height),
	}
}

// FillPolygon fills a closed polygon with the given color, anti-aliased,
// composited source-over.
func (r *Rasterizer) FillPolygon(dst draw.Image, pts []Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	r.vec.Reset(r.width, r.height)
	r.vec.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.vec.LineTo(float32(p.X), float32(p.Y))
	}
	r.vec.ClosePath()
	r.draw(dst, c)
}

// StrokePolygon strokes the outline of a closed polygon with the given
// line width. Each edge is rendered as a quad; joints are patched with
// small squares, which is indistinguishable from proper joins at glyph
// stroke widths.
func (r *Rasterizer) StrokePolygon(dst draw.Image, pts []Point, width float64, c color.Color) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	r.vec.Reset(r.width, r.height)
	half := width / 2
	n := len(pts)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		r.segmentQuad(a, b, half)
		r.jointSquare(a, half)
	}
	r.draw(dst, c)
}

// segmentQuad appends the oriented rectangle covering one stroked edge.
func (r *Rasterizer) segmentQuad(a, b Point, half float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := dx*dx + dy*dy
	if length == 0 {
		return
	}
	// Perpendicular unit vector scaled to the half width.
	inv := half / math.Sqrt(length)
	nx, ny := -dy*inv, dx*inv

	r.vec.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	r.vec.LineTo(float32(b.X+nx), float32(b.Y+ny))
	r.vec.LineTo(float32(b.X-nx), float32(b.Y-ny))
	r.vec.LineTo(float32(a.X-nx), float32(a.Y-ny))
	r.vec.ClosePath()
}

// jointSquare appends an axis-aligned square patching the gap between two
// adjacent segment quads. It must wind the same way as segmentQuad: the
// rasterizer accumulates signed coverage, and opposite windings would
// cancel where square and quad overlap.
func (r *Rasterizer) jointSquare(p Point, half float64) {
	r.vec.MoveTo(float32(p.X-half), float32(p.Y-half))
	r.vec.LineTo(float32(p.X-half), float32(p.Y+half))
	r.vec.LineTo(float32(p.X+half), float32(p.Y+half))
	r.vec.LineTo(float32(p.X+half), float32(p.Y-half))
	r.vec.ClosePath()
}

func (r *Rasterizer) draw(dst draw.Image, c color.Color) {
	r.vec.DrawOp = draw.Over
	r.vec.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}
