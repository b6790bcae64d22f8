package sheet

import (
	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/grid"
	"github.com/xuri/excelize/v2"
)

// Apply writes every non-empty grid cell into sheetName. Numeric and boolean
// text is stored typed; empty values leave the template cell untouched.
func Apply(f *excelize.File, sheetName string, g *grid.Grid) error {
	for _, c := range g.Cells() {
		value, _ := g.Get(c.Row, c.Col)
		typed := parseValue(value)
		if typed == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(c.Col, c.Row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, typed); err != nil {
			return err
		}
	}
	return nil
}
