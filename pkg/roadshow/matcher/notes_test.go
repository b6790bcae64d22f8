package matcher

import (
	"testing"

	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/models"
	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchNotesExactName(t *testing.T) {
	acquirers := []string{"Acme Inc", "Acme", "Beta"}
	notes := []models.NoteRecord{
		{Row: 0, Opportunity: "DealCo - Acme", Content: "intro done", AuthorDate: "2024-03-15T14:30:00"},
	}

	join, err := MatchNotes(acquirers, notes)
	require.NoError(t, err)
	require.Len(t, join.Matches, 1)
	assert.Equal(t, models.NoteMatch{Index: 1, Content: "intro done", Date: "2024-03-15 14:30"}, join.Matches[0])
	assert.Empty(t, join.Unmatched)
}

func TestMatchNotesFirstRowAndFirstNote(t *testing.T) {
	acquirers := []string{"Acme", "Acme"}
	notes := []models.NoteRecord{
		{Row: 0, Opportunity: "DealCo - Acme", Content: "first"},
		{Row: 1, Opportunity: "DealCo - Acme", Content: "second"},
		{Row: 2, Opportunity: "DealCo - Zeta", Content: "elsewhere"},
	}

	join, err := MatchNotes(acquirers, notes)
	require.NoError(t, err)

	require.Len(t, join.Matches, 1)
	assert.Equal(t, 0, join.Matches[0].Index)
	assert.Equal(t, "first", join.Matches[0].Content)
	assert.Equal(t, "", join.Matches[0].Date)

	require.Len(t, join.Superseded, 1)
	assert.Equal(t, "second", join.Superseded[0].Content)
	require.Len(t, join.Unmatched, 1)
	assert.Equal(t, "elsewhere", join.Unmatched[0].Content)
}

func TestMatchNotesErrors(t *testing.T) {
	_, err := MatchNotes([]string{"Acme"}, []models.NoteRecord{
		{Row: 0, Opportunity: "no separator"},
	})
	assert.ErrorIs(t, err, parser.ErrMalformedName)

	// Dates are checked even for notes that would be dropped.
	_, err = MatchNotes([]string{"Acme"}, []models.NoteRecord{
		{Row: 0, Opportunity: "DealCo - Other", AuthorDate: "15/03/2024"},
	})
	assert.ErrorIs(t, err, parser.ErrInvalidDate)

	var fe *parser.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "notes", fe.Table)
	assert.Equal(t, models.ColAuthorDate, fe.Column)
}

func TestMatchNotesEmpty(t *testing.T) {
	join, err := MatchNotes(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, join.Matches)
}
