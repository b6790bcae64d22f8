package sheet

import (
	"strconv"
	"strings"

	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/grid"
	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/models"
	"github.com/xuri/excelize/v2"
)

// ExtractRegion reads rows from..to (inclusive) of sheetName, restricted to
// cols. Every row in range is returned, empty or not.
func ExtractRegion(f *excelize.File, sheetName string, from, to int, cols []int) ([]models.CellRow, error) {
	var result []models.CellRow
	for rowNum := from; rowNum <= to; rowNum++ {
		cellMap := make(map[string]interface{})

		for _, col := range cols {
			cellName, err := excelize.CoordinatesToCellName(col, rowNum)
			if err != nil {
				return nil, err
			}
			cellValue, err := f.GetCellValue(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			if cellValue == "" {
				continue
			}
			colStr := strconv.Itoa(col)

			// Try to parse as number
			cellMap[colStr] = parseValue(cellValue)
		}

		result = append(result, models.CellRow{
			R: rowNum,
			C: cellMap,
		})
	}

	return result, nil
}

// ReadPreview reads the n data rows of the layout back from f. Header labels
// come from the template's header row, falling back to the layout labels.
func ReadPreview(f *excelize.File, l grid.Layout, bookName string, n int) (*models.Preview, error) {
	columns := l.Columns()
	cols := make([]int, len(columns))
	headers := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = c.Index
		cell, err := excelize.CoordinatesToCellName(c.Index, l.HeaderRow)
		if err != nil {
			return nil, err
		}
		label, err := f.GetCellValue(l.Sheet, cell)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(label) == "" {
			label = c.Label
		}
		headers[i] = label
	}

	var rows []models.CellRow
	if n > 0 {
		var err error
		rows, err = ExtractRegion(f, l.Sheet, l.StartRow, l.StartRow+n-1, cols)
		if err != nil {
			return nil, err
		}
	}

	return &models.Preview{
		BookName:  bookName,
		SheetName: l.Sheet,
		Headers:   headers,
		Rows:      rows,
	}, nil
}

// maxDigits is the number of significant digits a spreadsheet number keeps.
const maxDigits = 15

// parseValue converts cell text to a typed value.
// Returns nil for "", int64 for integers, float64 for plain decimals, bool
// for true/false, or the original string. Text that would not survive the
// round trip (leading zeros, signs, exponents, trailing zeros, more than
// maxDigits significant digits) stays a string.
func parseValue(s string) interface{} {
	if s == "" {
		return nil
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(i, 10) == s {
		if significantDigits(s) <= maxDigits {
			return i
		}
		return s
	}
	// Try float
	if isPlainDecimal(s) && significantDigits(s) <= maxDigits {
		if f, err := strconv.ParseFloat(s, 64); err == nil && strconv.FormatFloat(f, 'f', -1, 64) == s {
			return f
		}
	}
	if strings.EqualFold(s, "true") {
		return true
	}
	if strings.EqualFold(s, "false") {
		return false
	}
	// Return as string
	return s
}

// significantDigits counts the digits of a numeric literal, ignoring sign,
// decimal point and leading zeros.
func significantDigits(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		if n == 0 && r == '0' {
			continue
		}
		n++
	}
	return n
}

// isPlainDecimal reports whether s looks like -?digits.digits.
func isPlainDecimal(s string) bool {
	s = strings.TrimPrefix(s, "-")
	intPart, frac, ok := strings.Cut(s, ".")
	if !ok || intPart == "" || frac == "" {
		return false
	}
	if len(intPart) > 1 && intPart[0] == '0' {
		return false
	}
	for _, r := range intPart + frac {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
