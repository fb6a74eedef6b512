package penguinplot

// Shape is a single declarative drawing primitive. Shapes carry plot-space
// coordinates; rendering surfaces transform them into device space.
type Shape interface {
	isShape()
}

// Polygon is a closed filled polygon with an optional stroke.
// A zero StrokeWidth or a fully transparent Stroke means no outline.
type Polygon struct {
	Vertices    []Point
	Fill        RGBA
	Stroke      RGBA
	StrokeWidth float64
}

func (Polygon) isShape() {}

// Ellipse is an axis-aligned filled ellipse with an optional stroke.
// RX == RY yields a circle.
type Ellipse struct {
	Center      Point
	RX, RY      float64
	Fill        RGBA
	Stroke      RGBA
	StrokeWidth float64
}

func (Ellipse) isShape() {}

// Text is a string centered horizontally and vertically on Anchor.
// Size is the nominal glyph height in plot units.
type Text struct {
	Anchor  Point
	Content string
	Color   RGBA
	Size    float64
}

func (Text) isShape() {}

// GlyphSpec is the complete geometric description of one glyph: an ordered
// list of shape primitives in back-to-front draw order. Later shapes must
// visually occlude earlier ones. A GlyphSpec is built fresh per row and is
// immutable once returned.
type GlyphSpec []Shape
