package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/models"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrEmptyTable indicates a file without a header row.
	ErrEmptyTable = errors.New("table has no header row")
	// ErrInvalidEncoding indicates bytes that are not valid UTF-8, such as
	// a Latin-1 export.
	ErrInvalidEncoding = encoding.ErrInvalidUTF8
)

// ReadTableFile reads a comma-separated file into a Table named after path.
func ReadTableFile(path string) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadTable(f, path)
}

// ReadTable reads comma-separated UTF-8 text with a header row. A leading
// byte order mark is dropped so the first header matches exactly, and invalid
// UTF-8 fails with ErrInvalidEncoding. Short rows are padded with empty
// values; when a header repeats, the first column wins.
func ReadTable(r io.Reader, name string) (*models.Table, error) {
	decoder := transform.Chain(encoding.UTF8Validator, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	reader := csv.NewReader(transform.NewReader(r, decoder))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyTable)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	table := &models.Table{Name: name, Headers: headers}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if _, seen := row[h]; seen {
				continue
			}
			if i < len(record) {
				row[h] = record[i]
			} else {
				row[h] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
