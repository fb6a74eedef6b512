package penguinplot

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func testRows() []Row {
	return []Row{
		{"bill_length_mm": 39.1, "bill_depth_mm": 18.7, "flipper_length_mm": 181.0,
			"body_mass_g": 3750.0, "species": "Adelie", "sex": "male"},
		{"bill_length_mm": 46.1, "bill_depth_mm": 13.2, "flipper_length_mm": 211.0,
			"body_mass_g": 4500.0, "species": "Gentoo", "sex": "female"},
		{"bill_length_mm": 40.3, "bill_depth_mm": 18.0, "flipper_length_mm": 195.0,
			"body_mass_g": 3250.0, "species": "Adelie", "sex": "female"},
	}
}

func TestBuildPlan_EndToEnd(t *testing.T) {
	plan, err := BuildPlan(testRows(), WithNumColumns(5))
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}

	if len(plan.Glyphs) != 3 {
		t.Fatalf("glyphs = %d, want 3", len(plan.Glyphs))
	}
	if plan.Bounds.Width() != 5 || plan.Bounds.Height() != 1 {
		t.Errorf("bounds = %v, want 5x1", plan.Bounds)
	}

	want := []LegendEntry{
		{Label: "Adelie", Color: ColorAdelie},
		{Label: "Gentoo", Color: ColorGentoo},
	}
	if !reflect.DeepEqual(plan.Legend.Entries, want) {
		t.Errorf("legend = %v, want %v", plan.Legend.Entries, want)
	}

	// Glyphs stay in input order at the layout's centers.
	if plan.Glyphs[0].Center != Pt(0.5, 0.5) {
		t.Errorf("glyph 0 center = %v, want (0.5, 0.5)", plan.Glyphs[0].Center)
	}
	if plan.Glyphs[2].Center != Pt(2.5, 0.5) {
		t.Errorf("glyph 2 center = %v, want (2.5, 0.5)", plan.Glyphs[2].Center)
	}
}

func TestBuildPlan_ConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		opts    []PlanOption
		wantSub string
	}{
		{
			name:    "zero ncols",
			opts:    []PlanOption{WithNumColumns(0)},
			wantSub: "ncols",
		},
		{
			name:    "negative ncols",
			opts:    []PlanOption{WithNumColumns(-2)},
			wantSub: "ncols",
		},
		{
			name: "column absent from input",
			opts: []PlanOption{WithColumns(Columns{
				BillLength:    "culmen_len",
				BillDepth:     "bill_depth_mm",
				FlipperLength: "flipper_length_mm",
				BodyMass:      "body_mass_g",
				Species:       "species",
				Sex:           "sex",
			})},
			wantSub: `"culmen_len"`,
		},
		{
			name: "unmapped channel",
			opts: []PlanOption{WithColumns(Columns{
				BillLength:    "bill_length_mm",
				BillDepth:     "bill_depth_mm",
				FlipperLength: "flipper_length_mm",
				BodyMass:      "body_mass_g",
				Species:       "species",
			})},
			wantSub: "sex",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildPlan(testRows(), tt.opts...)
			if err == nil {
				t.Fatal("expected a configuration error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestBuildPlan_EmptyInput(t *testing.T) {
	plan, err := BuildPlan(nil, WithNumColumns(4))
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if len(plan.Glyphs) != 0 {
		t.Errorf("glyphs = %d, want 0", len(plan.Glyphs))
	}
	if plan.Bounds.Height() != 0 {
		t.Errorf("height = %v, want 0", plan.Bounds.Height())
	}
}

func TestBuildPlan_DataEdgeCasesNeverError(t *testing.T) {
	rows := []Row{
		// Unknown species, missing sex, missing numeric cells.
		{"bill_length_mm": 1.0, "bill_depth_mm": 2.0, "flipper_length_mm": 3.0,
			"body_mass_g": 4.0, "species": "Mars", "sex": "male"},
		{"bill_length_mm": nil, "bill_depth_mm": 2.0, "flipper_length_mm": 3.0,
			"species": "Adelie", "sex": nil, "body_mass_g": nil},
	}
	plan, err := BuildPlan(rows)
	if err != nil {
		t.Fatalf("data edge cases must not abort: %v", err)
	}
	if len(plan.Glyphs) != 2 {
		t.Fatalf("glyphs = %d, want 2", len(plan.Glyphs))
	}

	body := plan.Glyphs[0].Spec[0].(Ellipse)
	if body.Fill != ColorUnknownSpecies {
		t.Errorf("unknown species fill = %v, want neutral", body.Fill)
	}
}

func TestBuildPlan_ConstantColumnUsesMidpoint(t *testing.T) {
	rows := []Row{
		{"bill_length_mm": 5.0, "bill_depth_mm": 1.0, "flipper_length_mm": 1.0,
			"body_mass_g": 7.0, "species": "Adelie", "sex": "male"},
		{"bill_length_mm": 5.0, "bill_depth_mm": 2.0, "flipper_length_mm": 2.0,
			"body_mass_g": 7.0, "species": "Adelie", "sex": "male"},
	}
	plan, err := BuildPlan(rows, WithScaleRange(0.5, 1.5), WithBaseSize(1))
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}

	// Constant body mass pins the body scale to the midpoint 1.0, so the
	// realistic body half-width is exactly 0.4.
	body := plan.Glyphs[0].Spec[0].(Ellipse)
	if body.RX != 0.4 {
		t.Errorf("body RX = %v, want 0.4 at midpoint scale", body.RX)
	}
}

func TestBuildPlan_Deterministic(t *testing.T) {
	a, err := BuildPlan(testRows(), WithTitle("t"), WithStyle(StyleCartoon))
	if err != nil {
		t.Fatal(err)
	}
	b, err := BuildPlan(testRows(), WithTitle("t"), WithStyle(StyleCartoon))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different plans")
	}
}

func TestBuildPlan_ParallelPreservesOrder(t *testing.T) {
	// Enough rows to cross the parallel threshold; labels verify that
	// glyph i was built from row i.
	n := parallelThreshold * 3
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{
			"bill_length_mm": float64(i), "bill_depth_mm": float64(i % 7),
			"flipper_length_mm": float64(i % 13), "body_mass_g": float64(i % 5),
			"species": "Adelie", "sex": "female", "id": fmt.Sprintf("r%d", i),
		}
	}
	cols := DefaultColumns()
	cols.ID = "id"

	plan, err := BuildPlan(rows, WithColumns(cols), WithNumColumns(10))
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Glyphs) != n {
		t.Fatalf("glyphs = %d, want %d", len(plan.Glyphs), n)
	}
	for i, g := range plan.Glyphs {
		label, ok := g.Spec[len(g.Spec)-1].(Text)
		if !ok {
			t.Fatalf("glyph %d has no label", i)
		}
		if want := fmt.Sprintf("r%d", i); label.Content != want {
			t.Fatalf("glyph %d label = %q, want %q", i, label.Content, want)
		}
	}
}

func TestBuildPlan_LegendPlacement(t *testing.T) {
	plan, err := BuildPlan(testRows(), WithLegendPlacement(AnchorBottom, true))
	if err != nil {
		t.Fatal(err)
	}
	if plan.Legend.Anchor != AnchorBottom || !plan.Legend.Horizontal {
		t.Errorf("legend placement = %+v", plan.Legend)
	}
}
