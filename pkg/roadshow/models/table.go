// Package models defines the records and result types used by the roadshow populator.
package models

// Table is a parsed delimited-text file: a header row plus data rows keyed by header.
type Table struct {
	// Name identifies the source (usually the file path).
	Name string `json:"name"`
	// Headers lists the column names in file order.
	Headers []string `json:"headers"`
	// Rows holds one map per data row, keyed by header name.
	Rows []map[string]string `json:"rows"`
}

// HasColumn reports whether the table header contains name (exact match).
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Value returns the cell at data row idx for column, or "" when absent.
func (t *Table) Value(idx int, column string) string {
	if idx < 0 || idx >= len(t.Rows) {
		return ""
	}
	return t.Rows[idx][column]
}
