// Package matcher joins deal rows with persons and notes rows.
//
// Both joins are linear scans with a first-match-wins tie-break: the earliest
// row in source order is selected, independent of how the tables were loaded.
package matcher

import (
	"strings"

	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/models"
	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/parser"
)

// FindContact returns the first contact whose Emails field contains email
// (case-sensitive substring), or nil.
func FindContact(contacts []models.ContactRecord, email string) *models.ContactRecord {
	if email == "" {
		return nil
	}
	for i := range contacts {
		if strings.Contains(contacts[i].Emails, email) {
			return &contacts[i]
		}
	}
	return nil
}

// ContactJoin is the outcome of resolving deal contacts.
type ContactJoin struct {
	// Slots has one entry per deal, in deal order.
	Slots []models.ContactSlots
	// Emails is the number of parsed emails per deal, at most
	// models.MaxContacts.
	Emails []int
}

// Missing returns the number of parsed emails that matched no persons row.
func (j *ContactJoin) Missing() int {
	n := 0
	for d, s := range j.Slots {
		n += j.Emails[d] - s.Count()
	}
	return n
}

// Matched returns the number of filled contact slots.
func (j *ContactJoin) Matched() int {
	n := 0
	for _, s := range j.Slots {
		n += s.Count()
	}
	return n
}

// MatchContacts resolves the people field of every deal against the persons
// table. Slot i of a deal holds the contact found for its i-th parsed email.
func MatchContacts(deals []models.DealRecord, contacts []models.ContactRecord) (*ContactJoin, error) {
	join := &ContactJoin{
		Slots:  make([]models.ContactSlots, len(deals)),
		Emails: make([]int, len(deals)),
	}
	for d, deal := range deals {
		emails, err := parser.ParseEmails(deal.People)
		if err != nil {
			return nil, parser.DealError(deal, models.ColPeople, err)
		}
		join.Emails[d] = len(emails)
		for i, email := range emails {
			join.Slots[d][i] = FindContact(contacts, email)
		}
	}
	return join, nil
}
