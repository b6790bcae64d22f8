package grid

import (
	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/models"
	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/parser"
)

// Populate writes one row per deal, deal k at row StartRow+k, with the
// contacts of slots[k] in their stride columns. Rows are never reordered.
func Populate(g *Grid, l Layout, deals []models.DealRecord, slots []models.ContactSlots) error {
	for k, deal := range deals {
		acquirer, err := parser.AcquirerName(deal.Name)
		if err != nil {
			return parser.DealError(deal, models.ColName, err)
		}

		row := l.StartRow + k
		values := []struct {
			col   int
			value string
		}{
			{l.Wave, deal.WaveTier},
			{l.Acquirer, acquirer},
			{l.Status, deal.Status},
			{l.IntroductionCall, deal.IntroductionCall},
			{l.ManagementPresentation, deal.ManagementPresentation},
			{l.NDASigned, deal.NDASigned},
		}
		for _, v := range values {
			if err := g.Set(row, v.col, v.value); err != nil {
				return err
			}
		}

		if k >= len(slots) {
			continue
		}
		for i, contact := range slots[k] {
			if contact == nil {
				continue
			}
			if err := setContact(g, l, row, i, contact); err != nil {
				return err
			}
		}
	}
	return nil
}

func setContact(g *Grid, l Layout, row, slot int, c *models.ContactRecord) error {
	fields := [ContactStride]string{
		FieldName:  c.FullName,
		FieldTitle: c.JobTitle,
		FieldEmail: c.Emails,
		FieldURL:   c.LinkedInURL,
	}
	for field, value := range fields {
		if err := g.Set(row, l.ContactColumn(slot, field), value); err != nil {
			return err
		}
	}
	return nil
}

// Acquirers returns the acquirer-name cells of the first n data rows.
func Acquirers(g *Grid, l Layout, n int) []string {
	return g.Column(l.Acquirer, l.StartRow, n)
}

// PlaceNotes writes note content and date into the trailing columns of the
// matched rows.
func PlaceNotes(g *Grid, l Layout, matches []models.NoteMatch) error {
	for _, m := range matches {
		row := l.StartRow + m.Index
		if err := g.Set(row, l.NoteContent, m.Content); err != nil {
			return err
		}
		if err := g.Set(row, l.NoteDate, m.Date); err != nil {
			return err
		}
	}
	return nil
}
