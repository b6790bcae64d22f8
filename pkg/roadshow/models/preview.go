package models

// Preview is the populated data region of the output sheet, restricted to the
// layout columns.
type Preview struct {
	// BookName is the generated workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the sheet the region was read from.
	SheetName string `json:"sheet_name"`
	// Headers holds one label per layout column.
	Headers []string `json:"headers"`
	// Rows contains one row per deal, in output order.
	Rows []CellRow `json:"rows"`
}
