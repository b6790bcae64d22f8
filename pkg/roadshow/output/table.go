package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/grid"
	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/models"
	"github.com/olekukonko/tablewriter"
)

// Rows flattens preview rows into display strings, one per header, using
// the layout column order.
func Rows(p *models.Preview, l grid.Layout) [][]string {
	columns := l.Columns()
	rows := make([][]string, 0, len(p.Rows))
	for _, r := range p.Rows {
		row := make([]string, len(columns))
		for i, c := range columns {
			if v, ok := r.C[strconv.Itoa(c.Index)]; ok {
				row[i] = fmt.Sprint(v)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// RenderTable writes the preview as a text table.
func RenderTable(w io.Writer, p *models.Preview, l grid.Layout) error {
	table := tablewriter.NewTable(w)

	headers := make([]any, len(p.Headers))
	for i, h := range p.Headers {
		headers[i] = h
	}
	table.Header(headers...)

	for _, row := range Rows(p, l) {
		rowData := make([]any, len(row))
		for i, cell := range row {
			rowData[i] = cell
		}
		if err := table.Append(rowData...); err != nil {
			return err
		}
	}

	return table.Render()
}
