// Package dataset loads delimited measurement tables into the row format
// consumed by penguinplot. It does no column-name guessing; callers map
// columns explicitly through penguinplot.Columns.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/gogpu/penguinplot"
)

// missing lists the cell spellings treated as absent values.
var missing = map[string]bool{
	"":    true,
	"NA":  true,
	"NaN": true,
}

// Load reads a CSV table with a header row. Numeric cells become float64,
// missing cells are kept as nil values, and everything else is kept as a
// string.
func Load(r io.Reader) ([]penguinplot.Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty input, expected a header row")
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}

	var rows []penguinplot.Row
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading line %d", line)
		}

		row := make(penguinplot.Row, len(header))
		for i, cell := range record {
			if i >= len(header) {
				continue
			}
			if missing[cell] {
				// Keep the key with a nil value so a column that is
				// missing in every row still reads as present.
				row[header[i]] = nil
				continue
			}
			if v, err := strconv.ParseFloat(cell, 64); err == nil {
				row[header[i]] = v
			} else {
				row[header[i]] = cell
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadFile reads a CSV table from disk.
func LoadFile(path string) ([]penguinplot.Row, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, errors.Wrap(err, "opening dataset")
	}
	defer func() {
		_ = f.Close()
	}()

	rows, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return rows, nil
}
