package penguinplot

// Species palette. The three named colors follow the palmerpenguins
// convention; any other species value falls back to the neutral gray.
var (
	ColorAdelie    = Hex("#FF8C00")
	ColorChinstrap = Hex("#A034F0")
	ColorGentoo    = Hex("#159090")

	// ColorUnknownSpecies is the neutral fallback for unrecognized species.
	ColorUnknownSpecies = Hex("#9B9B9B")
)

// SpeciesColor returns the palette color for a species value.
// Unrecognized values (including the empty string) never fail; they map to
// ColorUnknownSpecies.
func SpeciesColor(species string) RGBA {
	switch species {
	case "Adelie":
		return ColorAdelie
	case "Chinstrap":
		return ColorChinstrap
	case "Gentoo":
		return ColorGentoo
	default:
		return ColorUnknownSpecies
	}
}

// Fixed non-species colors shared by both styles.
var (
	colorBill  = Hex("#D07B2F")
	colorBelly = Hex("#F4F1EC")
)

// proportions is the per-style constant table consumed by the glyph
// builder. All values are multiples of the base size; the fields marked
// with a scale channel compose multiplicatively with that channel's scale
// factor at build time.
type proportions struct {
	BodyRX, BodyRY float64 // * body scale
	BodyDY         float64

	BellyRX, BellyRY float64 // * body scale
	BellyDY          float64

	HeadR, HeadDY float64

	BillRootX     float64
	BillHalfDepth float64 // * bill depth scale
	BillLen       float64 // * bill length scale

	FlipRootX    float64 // attach point, * scaled body RX
	FlipRootTopY float64
	FlipRootBotY float64
	FlipLen      float64 // * flipper length scale
	FlipTipY     float64

	EyeDX, EyeDY float64 // relative to head center
	EyeR         float64 // round variant radius
	EyeKiteHalfW float64 // angular variant half width
	EyeKiteTop   float64
	EyeKiteBot   float64
	PupilR       float64

	FootDX, FootY float64
	FootHalfW     float64
	FootLen       float64
	StrokeW       float64
	LabelSz       float64
}

// Style selects one of the glyph proportion tables. Both styles share the
// same shape-composition contract; only the constants differ.
type Style interface {
	// Name returns the style's stable identifier ("realistic" or "cartoon").
	Name() string

	proportions() proportions
}

type styleRealistic struct{}

func (styleRealistic) Name() string { return "realistic" }

func (styleRealistic) proportions() proportions {
	return proportions{
		BodyRX: 0.40, BodyRY: 0.55, BodyDY: -0.05,
		BellyRX: 0.26, BellyRY: 0.40, BellyDY: -0.10,
		HeadR: 0.24, HeadDY: 0.62,
		BillRootX: 0.10, BillHalfDepth: 0.09, BillLen: 0.40,
		FlipRootX: 0.80, FlipRootTopY: 0.18, FlipRootBotY: -0.08,
		FlipLen: 0.38, FlipTipY: -0.25,
		EyeDX: 0.10, EyeDY: 0.06,
		EyeR: 0.055, EyeKiteHalfW: 0.065, EyeKiteTop: 0.050, EyeKiteBot: 0.035,
		PupilR: 0.024,
		FootDX: 0.15, FootY: -0.58, FootHalfW: 0.08, FootLen: 0.12,
		StrokeW: 0.02, LabelSz: 0.16,
	}
}

type styleCartoon struct{}

func (styleCartoon) Name() string { return "cartoon" }

// Cartoon keeps the head small relative to the body and exaggerates the
// bill and flippers so body mass does not drown out the other channels.
func (styleCartoon) proportions() proportions {
	return proportions{
		BodyRX: 0.46, BodyRY: 0.50, BodyDY: -0.08,
		BellyRX: 0.32, BellyRY: 0.36, BellyDY: -0.10,
		HeadR: 0.20, HeadDY: 0.58,
		BillRootX: 0.08, BillHalfDepth: 0.14, BillLen: 0.55,
		FlipRootX: 0.75, FlipRootTopY: 0.22, FlipRootBotY: -0.12,
		FlipLen: 0.52, FlipTipY: 0.10,
		EyeDX: 0.085, EyeDY: 0.05,
		EyeR: 0.070, EyeKiteHalfW: 0.080, EyeKiteTop: 0.060, EyeKiteBot: 0.045,
		PupilR: 0.030,
		FootDX: 0.17, FootY: -0.55, FootHalfW: 0.10, FootLen: 0.14,
		StrokeW: 0.025, LabelSz: 0.16,
	}
}

// The two built-in styles.
var (
	StyleRealistic Style = styleRealistic{}
	StyleCartoon   Style = styleCartoon{}
)

// StyleByName resolves a style identifier as used by CLI flags.
// Unknown names resolve to (nil, false).
func StyleByName(name string) (Style, bool) {
	switch name {
	case "realistic":
		return StyleRealistic, true
	case "cartoon":
		return StyleCartoon, true
	default:
		return nil, false
	}
}
