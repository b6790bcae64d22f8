package parser

import "github.com/Ayman2G/Affinity-alg/pkg/roadshow/models"

// Role is the part an input table plays in a run.
type Role string

const (
	// RoleUnknown marks a table none of the header checks recognised.
	RoleUnknown Role = ""
	// RoleDeals is the deal/opportunity export.
	RoleDeals Role = "export"
	// RoleNotes is the notes export.
	RoleNotes Role = "notes"
	// RolePersons is the associated persons export.
	RolePersons Role = "persons"
)

// Roles lists every role a run needs, in reporting order.
var Roles = []Role{RoleDeals, RoleNotes, RolePersons}

func (r Role) String() string {
	if r == RoleUnknown {
		return "unknown"
	}
	return string(r)
}

// Classify decides the role of a table from its header. The checks run in a
// fixed order and the first hit wins: Wave/Tier, then Author Date, then Emails.
func Classify(t *models.Table) Role {
	switch {
	case t.HasColumn(models.ColWaveTier):
		return RoleDeals
	case t.HasColumn(models.ColAuthorDate):
		return RoleNotes
	case t.HasColumn(models.ColEmails):
		return RolePersons
	default:
		return RoleUnknown
	}
}
