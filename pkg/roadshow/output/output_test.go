package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/grid"
	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePreview(l grid.Layout) *models.Preview {
	headers := make([]string, 0, 20)
	for _, c := range l.Columns() {
		headers = append(headers, c.Label)
	}
	return &models.Preview{
		BookName:  "Generated_Roadshow_ProjectX.xlsx",
		SheetName: l.Sheet,
		Headers:   headers,
		Rows: []models.CellRow{
			{R: 22, C: map[string]interface{}{"1": int64(1), "2": "Acme", "9": "J Doe", "22": "2024-03-15 14:30"}},
			{R: 23, C: map[string]interface{}{"2": "Beta"}},
		},
	}
}

func TestRows(t *testing.T) {
	l := grid.DefaultLayout()
	rows := Rows(samplePreview(l), l)

	require.Len(t, rows, 2)
	require.Len(t, rows[0], 20)
	assert.Equal(t, "1", rows[0][0])
	assert.Equal(t, "Acme", rows[0][1])
	assert.Equal(t, "J Doe", rows[0][6])
	assert.Equal(t, "2024-03-15 14:30", rows[0][19])
	assert.Equal(t, "", rows[1][0])
}

func TestRenderTable(t *testing.T) {
	l := grid.DefaultLayout()
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, samplePreview(l), l))

	out := buf.String()
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "Beta")
	assert.Contains(t, out, "J Doe")
}

func TestToJSON(t *testing.T) {
	l := grid.DefaultLayout()
	data, err := ToJSON(samplePreview(l), false)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Generated_Roadshow_ProjectX.xlsx", decoded["book_name"])
	assert.Len(t, decoded["rows"], 2)

	pretty, err := ToJSON(samplePreview(l), true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"book_name\"")
}
