package penguinplot

// Layout computes the deterministic grid placement for n glyphs in ncols
// columns. Index i occupies column i mod ncols and row i/ncols, counted
// from the top. Each glyph owns a unit cell; centers sit at half-integer
// offsets and y grows upward, so row 0 of the input is the top visual row.
//
// The returned bounds are exactly [0, ncols] x [0, nrows] with
// nrows = ceil(n/ncols). n == 0 yields an empty placement slice and zero
// height. Layout assumes ncols >= 1; BuildPlan validates that before
// calling it.
func Layout(n, ncols int) ([]Point, Bounds) {
	if n == 0 {
		return nil, Bounds{Max: Pt(float64(ncols), 0)}
	}

	nrows := (n + ncols - 1) / ncols
	centers := make([]Point, n)
	for i := 0; i < n; i++ {
		col := i % ncols
		row := i / ncols
		centers[i] = Pt(
			float64(col)+0.5,
			float64(nrows-row-1)+0.5,
		)
	}
	return centers, Bounds{Max: Pt(float64(ncols), float64(nrows))}
}

// LegendAnchor places the legend within the plot region.
type LegendAnchor int

const (
	// AnchorTopLeft pins the legend to the top-left corner.
	AnchorTopLeft LegendAnchor = iota
	// AnchorTop centers the legend along the top edge.
	AnchorTop
	// AnchorTopRight pins the legend to the top-right corner.
	AnchorTopRight
	// AnchorBottomLeft pins the legend to the bottom-left corner.
	AnchorBottomLeft
	// AnchorBottom centers the legend along the bottom edge.
	AnchorBottom
	// AnchorBottomRight pins the legend to the bottom-right corner.
	AnchorBottomRight
)

// LegendEntry is one swatch in the legend.
type LegendEntry struct {
	Label string
	Color RGBA
}

// Legend is the category-to-color mapping for the species channel plus its
// placement configuration.
type Legend struct {
	Entries    []LegendEntry
	Anchor     LegendAnchor
	Horizontal bool
}

// buildLegend derives the legend entries from the species values in input
// order: one entry per distinct label, first-seen order, unrecognized
// labels carrying the neutral fallback color.
func buildLegend(species []string) []LegendEntry {
	seen := make(map[string]bool, 4)
	var entries []LegendEntry
	for _, s := range species {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		entries = append(entries, LegendEntry{Label: s, Color: SpeciesColor(s)})
	}
	return entries
}
