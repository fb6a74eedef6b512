// Command penguinplot renders a measurement table as a grid of penguin
// glyphs.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"github.com/gogpu/penguinplot"
	"github.com/gogpu/penguinplot/dataset"
)

func main() {
	var (
		input     = flag.String("input", "", "input CSV file (built-in demo table when empty)")
		output    = flag.String("o", "penguins.png", "output file (.png or .svg)")
		ncols     = flag.Int("ncols", 5, "glyphs per grid row")
		styleName = flag.String("style", "realistic", "glyph style: realistic or cartoon")
		size      = flag.Float64("size", 120, "pixels per grid cell")
		scale     = flag.Float64("scale", 1, "resample factor applied to PNG output")
		title     = flag.String("title", "", "plot title")
		idCol     = flag.String("id", "", "column used as glyph label (optional)")

		billLen  = flag.String("bill-length", "bill_length_mm", "bill length column")
		billDep  = flag.String("bill-depth", "bill_depth_mm", "bill depth column")
		flipLen  = flag.String("flipper-length", "flipper_length_mm", "flipper length column")
		bodyMass = flag.String("body-mass", "body_mass_g", "body mass column")
		species  = flag.String("species", "species", "species column")
		sex      = flag.String("sex", "sex", "sex column")
	)
	flag.Parse()

	if err := run(*input, *output, *ncols, *styleName, *size, *scale, *title, penguinplot.Columns{
		BillLength:    *billLen,
		BillDepth:     *billDep,
		FlipperLength: *flipLen,
		BodyMass:      *bodyMass,
		Species:       *species,
		Sex:           *sex,
		ID:            *idCol,
	}); err != nil {
		log.Fatalf("penguinplot: %v", err)
	}
}

func run(input, output string, ncols int, styleName string, size, scale float64, title string, cols penguinplot.Columns) error {
	style, ok := penguinplot.StyleByName(styleName)
	if !ok {
		return errors.Errorf("unknown style %q (want realistic or cartoon)", styleName)
	}

	rows, err := loadRows(input)
	if err != nil {
		return err
	}

	plan, err := penguinplot.BuildPlan(rows,
		penguinplot.WithColumns(cols),
		penguinplot.WithNumColumns(ncols),
		penguinplot.WithStyle(style),
		penguinplot.WithTitle(title),
	)
	if err != nil {
		return err
	}

	if strings.HasSuffix(strings.ToLower(output), ".svg") {
		f, err := os.Create(output) //nolint:gosec // output path comes from the flag
		if err != nil {
			return errors.Wrap(err, "creating output")
		}
		defer func() {
			_ = f.Close()
		}()
		return penguinplot.NewSVGRenderer(f, size).Render(plan)
	}

	r := penguinplot.NewSoftwareRenderer(size)
	if err := r.Render(plan); err != nil {
		return err
	}

	img := r.Image()
	if scale != 1 {
		b := img.Bounds()
		img = imaging.Resize(img,
			int(float64(b.Dx())*scale), int(float64(b.Dy())*scale),
			imaging.Lanczos)
	}
	if err := imaging.Save(img, output); err != nil {
		return errors.Wrapf(err, "saving %s", output)
	}
	log.Printf("wrote %s (%d glyphs)", output, len(plan.Glyphs))
	return nil
}

func loadRows(input string) ([]penguinplot.Row, error) {
	if input != "" {
		return dataset.LoadFile(input)
	}
	return demoRows(), nil
}

// demoRows is a small sample of the Palmer penguins measurements.
func demoRows() []penguinplot.Row {
	return []penguinplot.Row{
		{"species": "Adelie", "sex": "male", "bill_length_mm": 39.1, "bill_depth_mm": 18.7, "flipper_length_mm": 181.0, "body_mass_g": 3750.0},
		{"species": "Adelie", "sex": "female", "bill_length_mm": 39.5, "bill_depth_mm": 17.4, "flipper_length_mm": 186.0, "body_mass_g": 3800.0},
		{"species": "Adelie", "sex": "female", "bill_length_mm": 40.3, "bill_depth_mm": 18.0, "flipper_length_mm": 195.0, "body_mass_g": 3250.0},
		{"species": "Chinstrap", "sex": "female", "bill_length_mm": 46.5, "bill_depth_mm": 17.9, "flipper_length_mm": 192.0, "body_mass_g": 3500.0},
		{"species": "Chinstrap", "sex": "male", "bill_length_mm": 50.0, "bill_depth_mm": 19.5, "flipper_length_mm": 196.0, "body_mass_g": 3900.0},
		{"species": "Chinstrap", "sex": "male", "bill_length_mm": 51.3, "bill_depth_mm": 19.2, "flipper_length_mm": 193.0, "body_mass_g": 3650.0},
		{"species": "Gentoo", "sex": "female", "bill_length_mm": 46.1, "bill_depth_mm": 13.2, "flipper_length_mm": 211.0, "body_mass_g": 4500.0},
		{"species": "Gentoo", "sex": "male", "bill_length_mm": 50.0, "bill_depth_mm": 16.3, "flipper_length_mm": 230.0, "body_mass_g": 5700.0},
		{"species": "Gentoo", "sex": "male", "bill_length_mm": 48.7, "bill_depth_mm": 14.1, "flipper_length_mm": 210.0, "body_mass_g": 4450.0},
		{"species": "Gentoo", "sex": "female", "bill_length_mm": 45.2, "bill_depth_mm": 13.8, "flipper_length_mm": 215.0, "body_mass_g": 4750.0},
	}
}
