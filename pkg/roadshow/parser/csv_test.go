package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable(t *testing.T) {
	input := "Name,Wave/Tier,People\n" +
		"\"ProjectX - Acme\",1,\"J Doe <j@doe.com>; K Roe <k@roe.com>\"\n" +
		"ProjectX - Beta,2\n"

	table, err := ReadTable(strings.NewReader(input), "export.csv")
	require.NoError(t, err)

	assert.Equal(t, "export.csv", table.Name)
	assert.Equal(t, []string{"Name", "Wave/Tier", "People"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "J Doe <j@doe.com>; K Roe <k@roe.com>", table.Value(0, "People"))
	assert.Equal(t, "2", table.Value(1, "Wave/Tier"))
	assert.Equal(t, "", table.Value(1, "People"))
	assert.Equal(t, "", table.Value(5, "Name"))
}

func TestReadTableStripsBOM(t *testing.T) {
	table, err := ReadTable(strings.NewReader("\ufeffWave/Tier,Name\n1,X - Y\n"), "bom.csv")
	require.NoError(t, err)
	assert.True(t, table.HasColumn("Wave/Tier"))
	assert.Equal(t, RoleDeals, Classify(table))
}

func TestReadTableRejectsInvalidUTF8(t *testing.T) {
	// "Société" as written by a Latin-1 export.
	input := "Opportunity,Content,Author Date\nX - Soci\xe9t\xe9,hi,2024-03-15\n"

	_, err := ReadTable(strings.NewReader(input), "notes.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEncoding)
	assert.Contains(t, err.Error(), "notes.csv")
}

func TestReadTableDuplicateHeader(t *testing.T) {
	table, err := ReadTable(strings.NewReader("Emails,Emails\nfirst,second\n"), "dup.csv")
	require.NoError(t, err)
	assert.Equal(t, "first", table.Value(0, "Emails"))
}

func TestReadTableEmpty(t *testing.T) {
	_, err := ReadTable(strings.NewReader(""), "empty.csv")
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestReadTableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persons.csv")
	require.NoError(t, os.WriteFile(path, []byte("Full Name,Emails\nJ Doe,j@doe.com\n"), 0644))

	table, err := ReadTableFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, table.Name)
	assert.Equal(t, "J Doe", table.Value(0, "Full Name"))

	_, err = ReadTableFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
