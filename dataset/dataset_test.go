package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/penguinplot"
)

const sample = `species,sex,bill_length_mm,body_mass_g
Adelie,male,39.1,3750
Gentoo,female,46.1,4500
Chinstrap,,NA,3500
`

func TestLoad(t *testing.T) {
	rows, err := Load(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Adelie", rows[0]["species"])
	assert.Equal(t, 39.1, rows[0]["bill_length_mm"])
	assert.Equal(t, 3750.0, rows[0]["body_mass_g"])
	assert.Equal(t, "female", rows[1]["sex"])

	// Empty and NA cells are nil, not zeroed and not absent.
	v, ok := rows[2]["sex"]
	assert.True(t, ok, "empty cell should keep its key")
	assert.Nil(t, v)
	v, ok = rows[2]["bill_length_mm"]
	assert.True(t, ok, "NA cell should keep its key")
	assert.Nil(t, v)
}

func TestLoad_AllMissingColumn(t *testing.T) {
	const table = `species,sex,bill_length_mm,bill_depth_mm,flipper_length_mm,body_mass_g
Adelie,male,39.1,18.7,181,NA
Gentoo,female,46.1,13.2,211,NA
`
	rows, err := Load(strings.NewReader(table))
	require.NoError(t, err)

	// A column that is missing in every row is a data edge case, not a
	// configuration error: the plan builds with the fallback scale.
	plan, err := penguinplot.BuildPlan(rows)
	require.NoError(t, err)
	assert.Len(t, plan.Glyphs, 2)
}

func TestLoad_EmptyInput(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header")
}

func TestLoad_RaggedRecord(t *testing.T) {
	_, err := Load(strings.NewReader("a,b\n1,2,3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile("does/not/exist.csv")
	require.Error(t, err)
}
