package matcher

import (
	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/models"
	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/parser"
)

// NoteJoin is the outcome of attaching notes to output rows.
type NoteJoin struct {
	// Matches holds at most one note per output row, in note order.
	Matches []models.NoteMatch
	// Unmatched are notes whose acquirer has no output row.
	Unmatched []models.NoteRecord
	// Superseded are notes for a row that already received an earlier note.
	Superseded []models.NoteRecord
}

// MatchNotes attaches notes to output rows. acquirers holds the acquirer
// name cell of each output row in row order. A note goes to the first row
// whose name equals its acquirer exactly; only the first note for a row is
// kept. Every note must carry a composite opportunity and a parseable date,
// including notes that end up unmatched.
func MatchNotes(acquirers []string, notes []models.NoteRecord) (*NoteJoin, error) {
	join := &NoteJoin{}
	taken := make(map[int]bool)

	for _, note := range notes {
		name, err := parser.AcquirerName(note.Opportunity)
		if err != nil {
			return nil, parser.NoteError(note, models.ColOpportunity, err)
		}
		date, err := parser.FormatDate(note.AuthorDate)
		if err != nil {
			return nil, parser.NoteError(note, models.ColAuthorDate, err)
		}

		idx := indexOf(acquirers, name)
		switch {
		case idx < 0:
			join.Unmatched = append(join.Unmatched, note)
		case taken[idx]:
			join.Superseded = append(join.Superseded, note)
		default:
			taken[idx] = true
			join.Matches = append(join.Matches, models.NoteMatch{
				Index:   idx,
				Content: note.Content,
				Date:    date,
			})
		}
	}

	return join, nil
}

func indexOf(values []string, want string) int {
	for i, v := range values {
		if v == want {
			return i
		}
	}
	return -1
}
