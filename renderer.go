package penguinplot

import "math"

// Renderer is a rendering surface: anything that can turn a RenderPlan
// into output. The core never draws; it hands the declarative plan to one
// of these. SoftwareRenderer and SVGRenderer are the built-in surfaces.
type Renderer interface {
	Render(plan *RenderPlan) error
}

// Shared framing for the built-in surfaces: an outer margin around the
// grid and a band above it when a title is present, all in plot units.
const (
	frameMargin = 0.25
	titleBand   = 0.6
	titleSize   = 0.3

	legendSwatch = 0.18
	legendGap    = 0.08
	legendItemH  = 0.26
	legendTextSz = 0.16
	legendPad    = 0.12
)

// frame maps a plan's y-up plot space onto a y-down device canvas at a
// given pixel density.
type frame struct {
	W, H int // device size in pixels
	m    Matrix
	ppu  float64
	band float64 // title band height in pixels, 0 without a title
}

func planFrame(plan *RenderPlan, ppu float64) frame {
	band := 0.0
	if plan.Title != "" {
		band = titleBand
	}
	w := (plan.Bounds.Width() + 2*frameMargin) * ppu
	h := (plan.Bounds.Height() + 2*frameMargin + band) * ppu

	// device = translate * flip-y-scale, so y-up plot units land on the
	// y-down pixel grid with the margins applied.
	m := Translate(
		(frameMargin-plan.Bounds.Min.X)*ppu,
		(frameMargin+band+plan.Bounds.Max.Y)*ppu,
	).Multiply(Scale(ppu, -ppu))

	return frame{W: ceilInt(w), H: ceilInt(h), m: m, ppu: ppu, band: band * ppu}
}

// ceilInt rounds a device size up to whole pixels. The small bias keeps
// float noise in sums like 0.6+0.25+0.25 from adding a stray pixel.
func ceilInt(v float64) int {
	return int(math.Ceil(v - 1e-9))
}

// legendOrigin resolves a legend anchor to the top-left corner of a
// legend box of the given device size, inside the frame. Top anchors
// measure from below the title band so the legend never covers a title.
func (f frame) legendOrigin(anchor LegendAnchor, boxW, boxH float64) (float64, float64) {
	pad := legendPad * f.ppu

	var x float64
	switch anchor {
	case AnchorTopLeft, AnchorBottomLeft:
		x = pad
	case AnchorTop, AnchorBottom:
		x = (float64(f.W) - boxW) / 2
	default: // AnchorTopRight, AnchorBottomRight
		x = float64(f.W) - pad - boxW
	}

	y := f.band + pad
	switch anchor {
	case AnchorBottomLeft, AnchorBottom, AnchorBottomRight:
		y = float64(f.H) - pad - boxH
	}
	return x, y
}

// legendMetrics computes per-entry offsets and the total box size for a
// legend, given a text-measuring function (surfaces measure differently).
func legendMetrics(l Legend, ppu float64, measure func(s string, size float64) float64) (offsets []Point, boxW, boxH float64) {
	swatch := legendSwatch * ppu
	gap := legendGap * ppu
	itemH := legendItemH * ppu

	offsets = make([]Point, len(l.Entries))
	if l.Horizontal {
		x := 0.0
		for i, e := range l.Entries {
			offsets[i] = Pt(x, 0)
			x += swatch + gap + measure(e.Label, legendTextSz*ppu) + 2*gap
		}
		return offsets, x - 2*gap, itemH
	}

	for i := range l.Entries {
		offsets[i] = Pt(0, float64(i)*itemH)
		w := swatch + gap + measure(l.Entries[i].Label, legendTextSz*ppu)
		if w > boxW {
			boxW = w
		}
	}
	return offsets, boxW, float64(len(l.Entries)) * itemH
}
