package roadshow

import (
	"context"
	"fmt"

	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/models"
	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/parser"
	"golang.org/x/sync/errgroup"
)

// Inputs are the decoded rows of the three exports.
type Inputs struct {
	Deals    []models.DealRecord
	Notes    []models.NoteRecord
	Contacts []models.ContactRecord
	// Ignored lists input files that matched no role.
	Ignored []string
}

// Sources names the file of each role explicitly.
type Sources struct {
	Deals   string
	Notes   string
	Persons string
}

// LoadSources reads the three exports from explicit paths, without
// classification.
func LoadSources(ctx context.Context, src Sources) (*Inputs, error) {
	paths := map[parser.Role]string{
		parser.RoleDeals:   src.Deals,
		parser.RoleNotes:   src.Notes,
		parser.RolePersons: src.Persons,
	}

	missing := &RolesError{}
	ordered := make([]string, 0, len(parser.Roles))
	for _, role := range parser.Roles {
		if paths[role] == "" {
			missing.Missing = append(missing.Missing, role)
		}
		ordered = append(ordered, paths[role])
	}
	if len(missing.Missing) > 0 {
		return nil, missing
	}

	tables, err := readTables(ctx, ordered)
	if err != nil {
		return nil, err
	}
	return Decode(map[parser.Role]*models.Table{
		parser.RoleDeals:   tables[0],
		parser.RoleNotes:   tables[1],
		parser.RolePersons: tables[2],
	}, nil)
}

// LoadFiles reads any number of exports and assigns each a role from its
// header row.
func LoadFiles(ctx context.Context, paths ...string) (*Inputs, error) {
	tables, err := readTables(ctx, paths)
	if err != nil {
		return nil, err
	}
	assigned, ignored, err := AssignRoles(tables)
	if err != nil {
		return nil, err
	}
	return Decode(assigned, ignored)
}

// readTables reads the files concurrently. Results keep the order of paths.
func readTables(ctx context.Context, paths []string) ([]*models.Table, error) {
	tables := make([]*models.Table, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t, err := parser.ReadTableFile(path)
			if err != nil {
				return err
			}
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

// AssignRoles classifies tables in order. Tables that match no role are
// returned as ignored; a run still needs one table per role.
func AssignRoles(tables []*models.Table) (map[parser.Role]*models.Table, []string, error) {
	assigned := make(map[parser.Role]*models.Table, len(parser.Roles))
	var ignored []string

	for _, t := range tables {
		role := parser.Classify(t)
		if role == parser.RoleUnknown {
			ignored = append(ignored, t.Name)
			continue
		}
		if prev, ok := assigned[role]; ok {
			return nil, nil, fmt.Errorf("%w: %s and %s are both %s exports", ErrDuplicateRole, prev.Name, t.Name, role)
		}
		assigned[role] = t
	}

	rerr := &RolesError{Unrecognized: ignored}
	for _, role := range parser.Roles {
		if _, ok := assigned[role]; !ok {
			rerr.Missing = append(rerr.Missing, role)
		}
	}
	if len(rerr.Missing) > 0 {
		return nil, nil, rerr
	}
	return assigned, ignored, nil
}

// Decode converts role-assigned tables into records.
func Decode(tables map[parser.Role]*models.Table, ignored []string) (*Inputs, error) {
	missing := &RolesError{}
	for _, role := range parser.Roles {
		if tables[role] == nil {
			missing.Missing = append(missing.Missing, role)
		}
	}
	if len(missing.Missing) > 0 {
		return nil, missing
	}

	deals, err := parser.DecodeDeals(tables[parser.RoleDeals])
	if err != nil {
		return nil, err
	}
	notes, err := parser.DecodeNotes(tables[parser.RoleNotes])
	if err != nil {
		return nil, err
	}
	contacts, err := parser.DecodeContacts(tables[parser.RolePersons])
	if err != nil {
		return nil, err
	}
	return &Inputs{Deals: deals, Notes: notes, Contacts: contacts, Ignored: ignored}, nil
}
