// Package penguinplot renders tabular measurement data as a grid of small
// parametric penguin glyphs, in the tradition of Chernoff faces: each row
// becomes one schematic penguin whose bill, flippers, body and eyes are
// deterministic functions of that row's values.
//
// # Quick Start
//
//	import "github.com/gogpu/penguinplot"
//
//	rows := []penguinplot.Row{
//		{"bill_length_mm": 39.1, "bill_depth_mm": 18.7,
//			"flipper_length_mm": 181.0, "body_mass_g": 3750.0,
//			"species": "Adelie", "sex": "male"},
//		// ...
//	}
//
//	plan, err := penguinplot.BuildPlan(rows, penguinplot.WithNumColumns(5))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	r := penguinplot.NewSoftwareRenderer(120)
//	r.Render(plan)
//	r.Pixmap().SavePNG("penguins.png")
//
// # Pipeline
//
// A render invocation is a pure pipeline: each numeric column is normalized
// once into a scale-factor range, the grid layout assigns every row a unit
// cell, and the geometry engine turns each row's scale factors and
// categorical attributes into an ordered list of shape primitives. The
// resulting RenderPlan is a declarative description; rendering surfaces
// (software raster, SVG) consume it without the core depending on any
// particular graphics API.
//
// # Coordinate System
//
// Plot space is y-up: the origin is the bottom-left corner of the grid and
// row 0 of the input occupies the top visual row. Rendering surfaces flip
// into their own device coordinates.
//
// # Styles
//
// Two glyph styles share one geometry contract: StyleRealistic and
// StyleCartoon. They differ only in proportion constants; Cartoon keeps a
// smaller head-to-body ratio and a larger bill and flippers so that body
// mass does not visually dominate the other channels.
package penguinplot
