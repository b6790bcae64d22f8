package grid

import (
	"errors"
	"fmt"
	"os"

	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/models"
	"github.com/goccy/go-yaml"
)

// ContactStride is the number of columns per contact slot.
const ContactStride = 4

// Sub-field offsets within a contact slot.
const (
	FieldName = iota
	FieldTitle
	FieldEmail
	FieldURL
)

// ErrInvalidLayout indicates a layout whose coordinates are unusable.
var ErrInvalidLayout = errors.New("invalid layout")

// Layout fixes where each value lands in the output sheet. Columns and rows
// are 1-based.
type Layout struct {
	Sheet        string `yaml:"sheet"`
	TitleCell    string `yaml:"title_cell"`
	SubtitleCell string `yaml:"subtitle_cell"`
	HeaderRow    int    `yaml:"header_row"`
	StartRow     int    `yaml:"start_row"`

	Wave                   int `yaml:"wave"`
	Acquirer               int `yaml:"acquirer"`
	Status                 int `yaml:"status"`
	IntroductionCall       int `yaml:"introduction_call"`
	ManagementPresentation int `yaml:"management_presentation"`
	NDASigned              int `yaml:"nda_signed"`
	// ContactBase is the first column of contact slot 0; slot i starts at
	// ContactBase + i*ContactStride.
	ContactBase int `yaml:"contact_base"`
	NoteContent int `yaml:"note_content"`
	NoteDate    int `yaml:"note_date"`
}

// DefaultSheet is the sheet name of the roadshow template.
const DefaultSheet = "Suivi du Roadshow"

// DefaultLayout returns the roadshow template layout.
func DefaultLayout() Layout {
	return Layout{
		Sheet:                  DefaultSheet,
		TitleCell:              "A1",
		SubtitleCell:           "A2",
		HeaderRow:              21,
		StartRow:               22,
		Wave:                   1,
		Acquirer:               2,
		Status:                 4,
		IntroductionCall:       5,
		ManagementPresentation: 6,
		NDASigned:              7,
		ContactBase:            9,
		NoteContent:            21,
		NoteDate:               22,
	}
}

// LoadLayout reads a YAML layout file. Keys absent from the file keep their
// default value.
func LoadLayout(path string) (Layout, error) {
	l := DefaultLayout()
	data, err := os.ReadFile(path)
	if err != nil {
		return l, err
	}
	if err := yaml.Unmarshal(data, &l); err != nil {
		return l, fmt.Errorf("%w: %s: %v", ErrInvalidLayout, path, err)
	}
	return l, l.Validate()
}

// ContactColumn returns the column of field for contact slot.
func (l Layout) ContactColumn(slot, field int) int {
	return l.ContactBase + slot*ContactStride + field
}

// Column is one labelled output column.
type Column struct {
	Index int
	Label string
}

// Columns lists the data columns in sheet order with their template labels.
func (l Layout) Columns() []Column {
	cols := []Column{
		{l.Wave, "Wave"},
		{l.Acquirer, "Acquirer's Name"},
		{l.Status, "Status"},
		{l.IntroductionCall, "Intro call"},
		{l.ManagementPresentation, "Tech call"},
		{l.NDASigned, "NDA signed"},
	}
	for i := 0; i < models.MaxContacts; i++ {
		n := i + 1
		cols = append(cols,
			Column{l.ContactColumn(i, FieldName), fmt.Sprintf("Surname / Name contact %d", n)},
			Column{l.ContactColumn(i, FieldTitle), fmt.Sprintf("Position contact %d", n)},
			Column{l.ContactColumn(i, FieldEmail), fmt.Sprintf("Contact shooté %d", n)},
			Column{l.ContactColumn(i, FieldURL), fmt.Sprintf("LinkedIn contact %d", n)},
		)
	}
	return append(cols,
		Column{l.NoteContent, "Comments / Rationale (if passed)"},
		Column{l.NoteDate, "Date of comments"},
	)
}

// Validate checks that rows and columns are positive, the header sits above
// the data, and no two columns overlap.
func (l Layout) Validate() error {
	if l.Sheet == "" {
		return fmt.Errorf("%w: empty sheet name", ErrInvalidLayout)
	}
	if l.HeaderRow < 1 || l.StartRow <= l.HeaderRow {
		return fmt.Errorf("%w: header row %d must be positive and above start row %d", ErrInvalidLayout, l.HeaderRow, l.StartRow)
	}
	seen := make(map[int]string)
	for _, c := range l.Columns() {
		if c.Index < 1 {
			return fmt.Errorf("%w: column %q has index %d", ErrInvalidLayout, c.Label, c.Index)
		}
		if other, dup := seen[c.Index]; dup {
			return fmt.Errorf("%w: %q and %q share column %d", ErrInvalidLayout, other, c.Label, c.Index)
		}
		seen[c.Index] = c.Label
	}
	return nil
}
