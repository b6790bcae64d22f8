package sheet

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestNewTemplate(t *testing.T) {
	l := grid.DefaultLayout()
	f, err := NewTemplate(l)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{grid.DefaultSheet}, f.GetSheetList())
	for _, c := range l.Columns() {
		cell, err := excelize.CoordinatesToCellName(c.Index, l.HeaderRow)
		require.NoError(t, err)
		v, err := f.GetCellValue(l.Sheet, cell)
		require.NoError(t, err)
		assert.Equal(t, c.Label, v)
	}
}

func TestOpenTemplate(t *testing.T) {
	l := grid.DefaultLayout()
	dir := t.TempDir()

	good := filepath.Join(dir, "good.xlsx")
	f, err := NewTemplate(l)
	require.NoError(t, err)
	require.NoError(t, f.SaveAs(good))
	f.Close()

	opened, err := OpenTemplate(good, l)
	require.NoError(t, err)
	opened.Close()

	other := excelize.NewFile()
	bad := filepath.Join(dir, "bad.xlsx")
	require.NoError(t, other.SaveAs(bad))
	other.Close()

	_, err = OpenTemplate(bad, l)
	assert.ErrorIs(t, err, ErrSheetNotFound)

	_, err = OpenTemplate(filepath.Join(dir, "missing.xlsx"), l)
	assert.Error(t, err)
}

func TestStampHeader(t *testing.T) {
	l := grid.DefaultLayout()
	f, err := NewTemplate(l)
	require.NoError(t, err)
	defer f.Close()

	now := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)
	require.NoError(t, StampHeader(f, l, "ProjectX", now))

	title, _ := f.GetCellValue(l.Sheet, "A1")
	subtitle, _ := f.GetCellValue(l.Sheet, "A2")
	assert.Equal(t, "ProjectX - Roadshow", title)
	assert.Equal(t, "October 2026", subtitle)
}

func TestApply(t *testing.T) {
	l := grid.DefaultLayout()
	f, err := NewTemplate(l)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, f.SetCellValue(l.Sheet, "D22", "template value"))

	g := grid.New()
	require.NoError(t, g.Set(22, 1, "1"))
	require.NoError(t, g.Set(22, 2, "Acme"))
	require.NoError(t, g.Set(22, 4, ""))
	require.NoError(t, g.Set(22, 5, "TRUE"))
	require.NoError(t, g.Set(500, 2, "beyond the formatted area"))
	require.NoError(t, Apply(f, l.Sheet, g))

	cellType, err := f.GetCellType(l.Sheet, "A22")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, cellType, "numeric text is stored as a number")

	for cell, want := range map[string]string{
		"A22":  "1",
		"B22":  "Acme",
		"D22":  "template value",
		"E22":  "TRUE",
		"B500": "beyond the formatted area",
	} {
		got, err := f.GetCellValue(l.Sheet, cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, cell)
	}
}
