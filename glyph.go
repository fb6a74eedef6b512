package penguinplot

// Scales holds the four per-row scale factors produced by normalization.
// All values are strictly positive multipliers around 1; the glyph builder
// composes them with the style's proportion constants and does not
// validate them.
type Scales struct {
	BillLength    float64
	BillDepth     float64
	FlipperLength float64
	Body          float64
}

// BuildGlyph constructs the full shape list for one glyph anchored at
// center. Shapes are emitted in back-to-front draw order: body, belly
// highlight, head, bill, flippers, eyes, pupils, feet, then the optional
// label. base is the overall magnification in plot units.
//
// The eye variant is driven by sex: "female" is the only value that
// selects the rounded eyes; every other value, "male" and missing
// included, selects the angular kite eyes. That asymmetry is intentional.
func BuildGlyph(center Point, scales Scales, species, sex, label string, base float64, style Style) GlyphSpec {
	p := style.proportions()
	body := SpeciesColor(species)
	stroke := p.StrokeW * base

	spec := make(GlyphSpec, 0, 16)

	// Body outline.
	bodyRX := p.BodyRX * scales.Body * base
	bodyRY := p.BodyRY * scales.Body * base
	spec = append(spec, Ellipse{
		Center:      center.Add(Pt(0, p.BodyDY*base)),
		RX:          bodyRX,
		RY:          bodyRY,
		Fill:        body,
		Stroke:      Black,
		StrokeWidth: stroke,
	})

	// Belly highlight, fill only.
	spec = append(spec, Ellipse{
		Center: center.Add(Pt(0, p.BellyDY*base)),
		RX:     p.BellyRX * scales.Body * base,
		RY:     p.BellyRY * scales.Body * base,
		Fill:   colorBelly,
	})

	// Head outline.
	head := center.Add(Pt(0, p.HeadDY*base))
	spec = append(spec, Ellipse{
		Center:      head,
		RX:          p.HeadR * base,
		RY:          p.HeadR * base,
		Fill:        body,
		Stroke:      Black,
		StrokeWidth: stroke,
	})

	// Bill: a rightward wedge. Horizontal extent follows the bill length
	// channel, the base of the wedge follows the bill depth channel.
	rootX := head.X + p.BillRootX*base
	halfDepth := p.BillHalfDepth * scales.BillDepth * base
	tipX := rootX + p.BillLen*scales.BillLength*base
	spec = append(spec, Polygon{
		Vertices: []Point{
			Pt(rootX, head.Y+halfDepth),
			Pt(tipX, head.Y),
			Pt(rootX, head.Y-halfDepth),
		},
		Fill:        colorBill,
		Stroke:      Black,
		StrokeWidth: stroke,
	})

	// Flippers: two mirrored wedges attached at the body sides.
	flipFill := body.Shade(0.25)
	rootAt := p.FlipRootX * bodyRX
	flipLen := p.FlipLen * scales.FlipperLength * base
	for _, side := range []float64{-1, 1} {
		rx := center.X + side*rootAt
		spec = append(spec, Polygon{
			Vertices: []Point{
				Pt(rx, center.Y+p.FlipRootTopY*base),
				Pt(rx, center.Y+p.FlipRootBotY*base),
				Pt(rx+side*flipLen, center.Y+p.FlipTipY*base),
			},
			Fill:        flipFill,
			Stroke:      Black,
			StrokeWidth: stroke,
		})
	}

	// Eyes. Only "female" takes the rounded branch.
	for _, side := range []float64{-1, 1} {
		eye := head.Add(Pt(side*p.EyeDX*base, p.EyeDY*base))
		if sex == "female" {
			spec = append(spec, Ellipse{
				Center:      eye,
				RX:          p.EyeR * base,
				RY:          p.EyeR * base,
				Fill:        White,
				Stroke:      Black,
				StrokeWidth: stroke,
			})
		} else {
			spec = append(spec, Polygon{
				Vertices: []Point{
					Pt(eye.X-p.EyeKiteHalfW*base, eye.Y),
					Pt(eye.X, eye.Y+p.EyeKiteTop*base),
					Pt(eye.X+p.EyeKiteHalfW*base, eye.Y),
					Pt(eye.X, eye.Y-p.EyeKiteBot*base),
				},
				Fill:        White,
				Stroke:      Black,
				StrokeWidth: stroke,
			})
		}
	}

	// Pupils are always solid dots.
	for _, side := range []float64{-1, 1} {
		eye := head.Add(Pt(side*p.EyeDX*base, p.EyeDY*base))
		spec = append(spec, Ellipse{
			Center: eye,
			RX:     p.PupilR * base,
			RY:     p.PupilR * base,
			Fill:   Black,
		})
	}

	// Feet: fixed downward triangles, independent of any data channel.
	for _, side := range []float64{-1, 1} {
		fx := center.X + side*p.FootDX*base
		fy := center.Y + p.FootY*base
		spec = append(spec, Polygon{
			Vertices: []Point{
				Pt(fx-p.FootHalfW*base, fy),
				Pt(fx+p.FootHalfW*base, fy),
				Pt(fx, fy-p.FootLen*base),
			},
			Fill:        colorBill,
			Stroke:      Black,
			StrokeWidth: stroke,
		})
	}

	// Label sits on the belly, centered on the glyph's anchor point.
	if label != "" {
		spec = append(spec, Text{
			Anchor:  center,
			Content: label,
			Color:   Black,
			Size:    p.LabelSz * base,
		})
	}

	return spec
}
