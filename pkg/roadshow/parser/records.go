package parser

import (
	"fmt"

	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/models"
)

var (
	dealColumns = []string{
		models.ColName,
		models.ColWaveTier,
		models.ColBuyerStatus,
		models.ColIntroductionCall,
		models.ColManagementPresentation,
		models.ColNDASigned,
		models.ColPeople,
	}
	noteColumns    = []string{models.ColOpportunity, models.ColContent, models.ColAuthorDate}
	contactColumns = []string{models.ColFullName, models.ColJobTitles, models.ColEmails, models.ColLinkedInURL}
)

func requireColumns(t *models.Table, columns []string) error {
	for _, c := range columns {
		if !t.HasColumn(c) {
			return fmt.Errorf("%s: %w %q", t.Name, ErrMissingColumn, c)
		}
	}
	return nil
}

// DecodeDeals converts a deal export into records, preserving row order.
func DecodeDeals(t *models.Table) ([]models.DealRecord, error) {
	if err := requireColumns(t, dealColumns); err != nil {
		return nil, err
	}

	deals := make([]models.DealRecord, 0, len(t.Rows))
	for i := range t.Rows {
		deals = append(deals, models.DealRecord{
			Row:                    i,
			Name:                   t.Value(i, models.ColName),
			WaveTier:               t.Value(i, models.ColWaveTier),
			Status:                 t.Value(i, models.ColBuyerStatus),
			IntroductionCall:       t.Value(i, models.ColIntroductionCall),
			ManagementPresentation: t.Value(i, models.ColManagementPresentation),
			NDASigned:              t.Value(i, models.ColNDASigned),
			People:                 t.Value(i, models.ColPeople),
		})
	}
	return deals, nil
}

// DecodeNotes converts a notes export into records, preserving row order.
func DecodeNotes(t *models.Table) ([]models.NoteRecord, error) {
	if err := requireColumns(t, noteColumns); err != nil {
		return nil, err
	}

	notes := make([]models.NoteRecord, 0, len(t.Rows))
	for i := range t.Rows {
		notes = append(notes, models.NoteRecord{
			Row:         i,
			Opportunity: t.Value(i, models.ColOpportunity),
			Content:     t.Value(i, models.ColContent),
			AuthorDate:  t.Value(i, models.ColAuthorDate),
		})
	}
	return notes, nil
}

// DecodeContacts converts a persons export into records. Missing email cells
// decode as "" and therefore never match a contact.
func DecodeContacts(t *models.Table) ([]models.ContactRecord, error) {
	if err := requireColumns(t, contactColumns); err != nil {
		return nil, err
	}

	contacts := make([]models.ContactRecord, 0, len(t.Rows))
	for i := range t.Rows {
		contacts = append(contacts, models.ContactRecord{
			Row:         i,
			FullName:    t.Value(i, models.ColFullName),
			JobTitle:    t.Value(i, models.ColJobTitles),
			Emails:      t.Value(i, models.ColEmails),
			LinkedInURL: t.Value(i, models.ColLinkedInURL),
		})
	}
	return contacts, nil
}

// DealError wraps err with the deal export position of d.
func DealError(d models.DealRecord, column string, err error) error {
	return fieldError(RoleDeals.String(), d.Row, column, err)
}

// NoteError wraps err with the notes export position of n.
func NoteError(n models.NoteRecord, column string, err error) error {
	return fieldError(RoleNotes.String(), n.Row, column, err)
}
