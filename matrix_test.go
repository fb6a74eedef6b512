package penguinplot

import "testing"

func TestMatrix_TransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -2), Pt(3, 4), Pt(13, 2)},
		{"scale", Scale(2, 3), Pt(3, 4), Pt(6, 12)},
		{"flip y", Scale(1, -1), Pt(3, 4), Pt(3, -4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.in); got != tt.want {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrix_Multiply(t *testing.T) {
	// translate(5, 7) * scale(2, -2): scale applies first.
	m := Translate(5, 7).Multiply(Scale(2, -2))
	if got := m.TransformPoint(Pt(1, 1)); got != Pt(7, 5) {
		t.Errorf("composed transform = %v, want (7, 5)", got)
	}
}

func TestMatrix_TransformVector(t *testing.T) {
	m := Translate(100, 100).Multiply(Scale(3, 3))
	if got := m.TransformVector(Pt(1, 2)); got != Pt(3, 6) {
		t.Errorf("TransformVector ignored translation incorrectly: %v", got)
	}
}

func TestPlanFrame_FlipsY(t *testing.T) {
	plan := &RenderPlan{Bounds: Bounds{Max: Pt(2, 3)}}
	f := planFrame(plan, 100)

	// Top of plot space lands near the top of the device canvas.
	top := f.m.TransformPoint(Pt(0, 3))
	bottom := f.m.TransformPoint(Pt(0, 0))
	if top.Y >= bottom.Y {
		t.Errorf("y not flipped: top %v, bottom %v", top, bottom)
	}
	if top.Y != frameMargin*100 {
		t.Errorf("top margin = %v, want %v", top.Y, frameMargin*100)
	}
	if f.W != 250 || f.H != 350 {
		t.Errorf("frame = %dx%d, want 250x350", f.W, f.H)
	}
}

func TestLegendOrigin_BelowTitleBand(t *testing.T) {
	plan := &RenderPlan{Bounds: Bounds{Max: Pt(2, 3)}, Title: "Penguins"}
	f := planFrame(plan, 100)

	// Top anchors start under the title band, not on top of it.
	_, y := f.legendOrigin(AnchorTopRight, 50, 20)
	if want := titleBand*100 + legendPad*100; y != want {
		t.Errorf("top legend y = %v, want %v", y, want)
	}

	// Bottom anchors measure from the bottom edge regardless.
	_, y = f.legendOrigin(AnchorBottomRight, 50, 20)
	if want := float64(f.H) - legendPad*100 - 20; y != want {
		t.Errorf("bottom legend y = %v, want %v", y, want)
	}

	// Without a title the band is zero and top anchors hug the edge.
	f = planFrame(&RenderPlan{Bounds: Bounds{Max: Pt(2, 3)}}, 100)
	if _, y = f.legendOrigin(AnchorTopLeft, 50, 20); y != legendPad*100 {
		t.Errorf("untitled legend y = %v, want %v", y, legendPad*100)
	}
}
