package penguinplot

import (
	"fmt"
	"math"
	"runtime"
	"sync"
)

// Row is one observation: a mapping from column name to value. Numeric
// cells are float64 (or any integer type); categorical cells are strings.
// A missing cell is an absent key, a nil value, or a NaN.
type Row map[string]any

// Columns maps the semantic channels onto the caller's column names.
// Datasets name the same measurements differently ("bill_length_mm" vs
// "bill_len"); the mapping is resolved here once instead of guessed per
// call. ID is optional; when empty, glyphs carry no label.
type Columns struct {
	BillLength    string
	BillDepth     string
	FlipperLength string
	BodyMass      string
	Species       string
	Sex           string
	ID            string
}

// DefaultColumns returns the palmerpenguins column names.
func DefaultColumns() Columns {
	return Columns{
		BillLength:    "bill_length_mm",
		BillDepth:     "bill_depth_mm",
		FlipperLength: "flipper_length_mm",
		BodyMass:      "body_mass_g",
		Species:       "species",
		Sex:           "sex",
	}
}

// PositionedGlyph pairs one glyph's shape list with its grid placement.
type PositionedGlyph struct {
	Center Point
	Spec   GlyphSpec
}

// RenderPlan is the complete declarative output of one render invocation:
// plot bounds, the per-row glyphs in input order, the legend, and an
// optional title. It is what rendering surfaces consume.
type RenderPlan struct {
	Bounds Bounds
	Glyphs []PositionedGlyph
	Legend Legend
	Title  string
}

// parallelThreshold is the row count above which glyph building fans out
// across goroutines. Each build is independent and results land in an
// indexed slice, so output order never depends on scheduling.
const parallelThreshold = 64

// BuildPlan runs the full pipeline: validate configuration, normalize the
// four numeric columns, lay out the grid, and build every glyph.
//
// Configuration errors (ncols < 1, a mapped column absent from every row)
// fail fast with a descriptive error before any geometry is built.
// Data-value edge cases — missing cells, constant columns, unrecognized
// species — are handled internally and never abort.
func BuildPlan(rows []Row, opts ...PlanOption) (*RenderPlan, error) {
	cfg := defaultPlanConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.ncols < 1 {
		return nil, fmt.Errorf("penguinplot: ncols must be >= 1, got %d", cfg.ncols)
	}

	n := len(rows)
	plan := &RenderPlan{
		Legend: Legend{Anchor: cfg.legendAnchor, Horizontal: cfg.legendHorizontal},
		Title:  cfg.title,
	}

	if n == 0 {
		_, plan.Bounds = Layout(0, cfg.ncols)
		return plan, nil
	}

	if err := checkColumns(rows, cfg.cols); err != nil {
		return nil, err
	}

	logger().Debug("building render plan",
		"rows", n, "ncols", cfg.ncols, "style", cfg.style.Name())

	billLen := Normalize(numericColumn(rows, cfg.cols.BillLength), cfg.scaleLo, cfg.scaleHi)
	billDep := Normalize(numericColumn(rows, cfg.cols.BillDepth), cfg.scaleLo, cfg.scaleHi)
	flipLen := Normalize(numericColumn(rows, cfg.cols.FlipperLength), cfg.scaleLo, cfg.scaleHi)
	bodyMass := Normalize(numericColumn(rows, cfg.cols.BodyMass), cfg.scaleLo, cfg.scaleHi)

	centers, bounds := Layout(n, cfg.ncols)
	plan.Bounds = bounds

	species := make([]string, n)
	for i, row := range rows {
		species[i] = stringValue(row, cfg.cols.Species)
	}
	plan.Legend.Entries = buildLegend(species)

	plan.Glyphs = make([]PositionedGlyph, n)
	build := func(i int) {
		row := rows[i]
		scales := Scales{
			BillLength:    billLen[i],
			BillDepth:     billDep[i],
			FlipperLength: flipLen[i],
			Body:          bodyMass[i],
		}
		var label string
		if cfg.cols.ID != "" {
			label = labelValue(row, cfg.cols.ID)
		}
		spec := BuildGlyph(centers[i], scales, species[i],
			stringValue(row, cfg.cols.Sex), label, cfg.baseSize, cfg.style)
		plan.Glyphs[i] = PositionedGlyph{Center: centers[i], Spec: spec}
	}

	if n < parallelThreshold {
		for i := 0; i < n; i++ {
			build(i)
		}
		return plan, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, (w+1)*chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				build(i)
			}
		}(lo, hi)
	}
	wg.Wait()
	return plan, nil
}

// checkColumns verifies that every mapped column exists in at least one
// row. A mapping that points nowhere is a caller contract violation and
// must be reported before any drawing.
func checkColumns(rows []Row, cols Columns) error {
	required := []struct {
		field, column string
	}{
		{"bill length", cols.BillLength},
		{"bill depth", cols.BillDepth},
		{"flipper length", cols.FlipperLength},
		{"body mass", cols.BodyMass},
		{"species", cols.Species},
		{"sex", cols.Sex},
	}
	if cols.ID != "" {
		required = append(required, struct{ field, column string }{"id", cols.ID})
	}

	for _, r := range required {
		if r.column == "" {
			return fmt.Errorf("penguinplot: no column mapped for %s", r.field)
		}
		found := false
		for _, row := range rows {
			if _, ok := row[r.column]; ok {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("penguinplot: %s column %q not present in input", r.field, r.column)
		}
	}
	return nil
}

// numericColumn extracts one column as a float64 vector with NaN marking
// missing cells.
func numericColumn(rows []Row, col string) []float64 {
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i] = numericValue(row, col)
	}
	return out
}

func numericValue(row Row, col string) float64 {
	v, ok := row[col]
	if !ok || v == nil {
		return math.NaN()
	}
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case int32:
		return float64(x)
	default:
		return math.NaN()
	}
}

func stringValue(row Row, col string) string {
	if v, ok := row[col]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// labelValue renders any cell as display text; numeric IDs are common.
func labelValue(row Row, col string) string {
	v, ok := row[col]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
