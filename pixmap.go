package penguinplot

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// Pixmap is the pixel buffer the software surface renders into. It wraps
// an NRGBA image so rasterization and text drawing can composite into it
// directly.
type Pixmap struct {
	img *image.NRGBA
}

// NewPixmap creates a pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the pixmap in pixels.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap in pixels.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	draw.Draw(p.img, p.img.Rect, image.NewUniform(c.Color()), image.Point{}, draw.Src)
}

// GetPixel returns the color of a single pixel. Out-of-bounds coordinates
// return Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if !(image.Point{X: x, Y: y}).In(p.img.Rect) {
		return Transparent
	}
	c := p.img.NRGBAAt(x, y)
	return RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// NRGBA exposes the underlying draw target.
func (p *Pixmap) NRGBA() *image.NRGBA {
	return p.img
}

// Image returns the pixmap as an image.Image.
func (p *Pixmap) Image() image.Image {
	return p.img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.img)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Rect
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
