// Package sheet moves roadshow data between the output grid and an xlsx
// workbook.
package sheet

import (
	"errors"
	"fmt"
	"time"

	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/grid"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the template lacks the roadshow sheet.
var ErrSheetNotFound = errors.New("sheet not found")

// SubtitleLayout renders the generation month below the title.
const SubtitleLayout = "January 2006"

// OpenTemplate opens a template workbook and checks it has the layout sheet.
func OpenTemplate(path string, l grid.Layout) (*excelize.File, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	if err := CheckSheet(f, l.Sheet); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// NewTemplate builds a blank template: one sheet named after the layout with
// the column labels on the header row.
func NewTemplate(l grid.Layout) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), l.Sheet); err != nil {
		f.Close()
		return nil, err
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}
	for _, c := range l.Columns() {
		cell, err := excelize.CoordinatesToCellName(c.Index, l.HeaderRow)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(l.Sheet, cell, c.Label); err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellStyle(l.Sheet, cell, cell, style); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// CheckSheet returns ErrSheetNotFound unless f contains name.
func CheckSheet(f *excelize.File, name string) error {
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return err
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	return nil
}

// StampHeader overwrites the title with "<dossier> - Roadshow" and the
// subtitle with the month and year of now.
func StampHeader(f *excelize.File, l grid.Layout, dossier string, now time.Time) error {
	if err := f.SetCellValue(l.Sheet, l.TitleCell, dossier+" - Roadshow"); err != nil {
		return err
	}
	return f.SetCellValue(l.Sheet, l.SubtitleCell, now.Format(SubtitleLayout))
}
