package penguinplot

// PlanOption configures a BuildPlan call.
// Use functional options to customize plan building.
//
// Example:
//
//	plan, err := penguinplot.BuildPlan(rows,
//		penguinplot.WithNumColumns(8),
//		penguinplot.WithStyle(penguinplot.StyleCartoon),
//		penguinplot.WithTitle("Palmer penguins"),
//	)
type PlanOption func(*planConfig)

// planConfig holds the per-invocation configuration. There is no
// process-wide plotting state; every call starts from the defaults.
type planConfig struct {
	cols             Columns
	ncols            int
	baseSize         float64
	scaleLo, scaleHi float64
	style            Style
	title            string
	legendAnchor     LegendAnchor
	legendHorizontal bool
}

func defaultPlanConfig() planConfig {
	return planConfig{
		cols:         DefaultColumns(),
		ncols:        5,
		baseSize:     0.5,
		scaleLo:      0.7,
		scaleHi:      1.3,
		style:        StyleRealistic,
		legendAnchor: AnchorTopRight,
	}
}

// WithColumns sets the field-to-column mapping.
func WithColumns(cols Columns) PlanOption {
	return func(c *planConfig) {
		c.cols = cols
	}
}

// WithNumColumns sets the number of grid columns. Values below 1 are
// rejected by BuildPlan.
func WithNumColumns(ncols int) PlanOption {
	return func(c *planConfig) {
		c.ncols = ncols
	}
}

// WithBaseSize sets the overall glyph magnification in plot units.
// Each glyph owns a unit cell; the default of 0.5 leaves breathing room
// around the largest scale factors.
func WithBaseSize(size float64) PlanOption {
	return func(c *planConfig) {
		c.baseSize = size
	}
}

// WithScaleRange sets the range scale factors are normalized into.
// The default is [0.7, 1.3]; a wider range like [0.5, 1.5] exaggerates
// differences between rows.
func WithScaleRange(lo, hi float64) PlanOption {
	return func(c *planConfig) {
		c.scaleLo = lo
		c.scaleHi = hi
	}
}

// WithStyle selects the glyph style. Nil is ignored.
func WithStyle(s Style) PlanOption {
	return func(c *planConfig) {
		if s != nil {
			c.style = s
		}
	}
}

// WithTitle sets the plot title. An empty title draws nothing.
func WithTitle(title string) PlanOption {
	return func(c *planConfig) {
		c.title = title
	}
}

// WithLegendPlacement sets the legend anchor and orientation.
func WithLegendPlacement(anchor LegendAnchor, horizontal bool) PlanOption {
	return func(c *planConfig) {
		c.legendAnchor = anchor
		c.legendHorizontal = horizontal
	}
}
