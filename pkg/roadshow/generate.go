package roadshow

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/grid"
	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/matcher"
	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/models"
	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/parser"
	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/sheet"
	"github.com/xuri/excelize/v2"
)

// Result is a populated workbook held in memory.
type Result struct {
	// Dossier is the project name taken from the first deal.
	Dossier string
	// BookName is the download file name.
	BookName string
	// Grid holds every value written to the data region.
	Grid *grid.Grid
	// Preview is the data region read back from the workbook.
	Preview *models.Preview
	// Stats summarises the joins.
	Stats Stats

	data    []byte
	created time.Time
}

// Stats counts join outcomes of a run.
type Stats struct {
	Deals           int
	ContactsMatched int
	ContactsMissing int
	NotesMatched    int
	NotesUnmatched  int
	NotesSuperseded int
}

// Generate joins the inputs and writes them into the template. Nothing is
// written to disk; call Save for that.
func Generate(in *Inputs, opts Options) (*Result, error) {
	l := opts.GetLayout()
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if len(in.Deals) == 0 {
		return nil, ErrNoDeals
	}
	log := opts.logger()

	dossier, _, err := parser.SplitName(in.Deals[0].Name)
	if err != nil {
		return nil, parser.DealError(in.Deals[0], models.ColName, err)
	}

	contacts, err := matcher.MatchContacts(in.Deals, in.Contacts)
	if err != nil {
		return nil, err
	}

	g := grid.New()
	if err := grid.Populate(g, l, in.Deals, contacts.Slots); err != nil {
		return nil, err
	}

	join, err := matcher.MatchNotes(grid.Acquirers(g, l, len(in.Deals)), in.Notes)
	if err != nil {
		return nil, err
	}
	if err := grid.PlaceNotes(g, l, join.Matches); err != nil {
		return nil, err
	}

	stats := Stats{
		Deals:           len(in.Deals),
		ContactsMatched: contacts.Matched(),
		ContactsMissing: contacts.Missing(),
		NotesMatched:    len(join.Matches),
		NotesUnmatched:  len(join.Unmatched),
		NotesSuperseded: len(join.Superseded),
	}
	log.Debug().
		Int("cells", g.Len()).
		Int("last_row", g.MaxRow()).
		Int("last_col", g.MaxCol()).
		Msg("grid populated")
	for _, n := range join.Unmatched {
		log.Debug().Str("opportunity", n.Opportunity).Int("row", n.Row+1).Msg("note has no matching acquirer")
	}
	for _, n := range join.Superseded {
		log.Debug().Str("opportunity", n.Opportunity).Int("row", n.Row+1).Msg("acquirer already has a note")
	}

	f, err := openTemplate(opts.TemplatePath, l)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	now := opts.now()
	if err := sheet.StampHeader(f, l, dossier, now); err != nil {
		return nil, err
	}
	if err := sheet.Apply(f, l.Sheet, g); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	bookName := BookName(dossier)
	preview, err := sheet.ReadPreview(f, l, bookName, len(in.Deals))
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("dossier", dossier).
		Int("deals", stats.Deals).
		Int("contacts", stats.ContactsMatched).
		Int("notes", stats.NotesMatched).
		Msg("populated roadshow template")

	return &Result{
		Dossier:  dossier,
		BookName: bookName,
		Grid:     g,
		Preview:  preview,
		Stats:    stats,
		data:     buf.Bytes(),
		created:  now,
	}, nil
}

func openTemplate(path string, l grid.Layout) (*excelize.File, error) {
	if path == "" {
		return sheet.NewTemplate(l)
	}
	return sheet.OpenTemplate(path, l)
}

// BookName is the download name of the workbook generated for dossier.
func BookName(dossier string) string {
	return fmt.Sprintf("Generated_Roadshow_%s.xlsx", fileSafe(dossier))
}

// Bytes returns the xlsx content.
func (r *Result) Bytes() []byte {
	return r.data
}

// WriteTo writes the xlsx content to w.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	return bytes.NewReader(r.data).WriteTo(w)
}

var unsafeFileChars = strings.NewReplacer(
	"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
	"\"", "_", "<", "_", ">", "_", "|", "_",
)

func fileSafe(name string) string {
	return unsafeFileChars.Replace(strings.TrimSpace(name))
}
