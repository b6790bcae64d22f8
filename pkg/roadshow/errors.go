package roadshow

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/parser"
	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/sheet"
)

// Parse failures raised while reading records.
var (
	ErrMalformedContact = parser.ErrMalformedContact
	ErrMalformedName    = parser.ErrMalformedName
	ErrInvalidDate      = parser.ErrInvalidDate
	ErrMissingColumn    = parser.ErrMissingColumn
	ErrInvalidEncoding  = parser.ErrInvalidEncoding
	ErrSheetNotFound    = sheet.ErrSheetNotFound
)

// ErrUnknownRole indicates an input table none of the header checks recognised.
var ErrUnknownRole = errors.New("unrecognized input file")

// ErrMissingRole indicates a run without one of the three required tables.
var ErrMissingRole = errors.New("input file missing")

// ErrDuplicateRole indicates two input tables classified to the same role.
var ErrDuplicateRole = errors.New("duplicate input file")

// ErrNoDeals indicates a deal export with no data rows.
var ErrNoDeals = errors.New("deal export has no rows")

// ErrSaveFailed indicates the populated workbook could not be written to disk.
var ErrSaveFailed = errors.New("save failed")

// ErrFileLocked indicates the save target is locked or not writable.
var ErrFileLocked = errors.New("file locked or permission denied")

// ParseError reports a malformed field, with its table, row and column.
type ParseError = parser.FieldError

// RolesError reports every required role with no input file, plus the files
// that could not be classified.
type RolesError struct {
	Missing      []parser.Role
	Unrecognized []string
}

func (e *RolesError) Error() string {
	var parts []string
	for _, r := range e.Missing {
		parts = append(parts, fmt.Sprintf("%s file is missing", r))
	}
	for _, name := range e.Unrecognized {
		parts = append(parts, fmt.Sprintf("%s is not a recognized export", name))
	}
	return strings.Join(parts, "; ")
}

// Is implements errors.Is support.
func (e *RolesError) Is(target error) bool {
	switch target {
	case ErrMissingRole:
		return len(e.Missing) > 0
	case ErrUnknownRole:
		return len(e.Unrecognized) > 0
	}
	return false
}

// SaveError reports a failed write of the generated workbook. The Result it
// came from stays valid.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *SaveError) Is(target error) bool {
	switch target {
	case ErrSaveFailed:
		return true
	case ErrFileLocked:
		return errors.Is(e.Err, fs.ErrPermission)
	}
	return false
}
