package parser

import (
	"errors"
	"fmt"
)

// ErrMalformedContact indicates a people-field token without "<email>" delimiters.
var ErrMalformedContact = errors.New("malformed contact token")

// ErrMalformedName indicates a composite name without the " - " separator.
var ErrMalformedName = errors.New("malformed composite name")

// ErrInvalidDate indicates a date that is not ISO-8601.
var ErrInvalidDate = errors.New("invalid ISO-8601 date")

// ErrMissingColumn indicates a required column is absent from a table header.
var ErrMissingColumn = errors.New("missing required column")

// FieldError reports a parse failure in a single row of a table.
type FieldError struct {
	Table  string
	Row    int // 1-based data row number
	Column string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s row %d column %q: %v", e.Table, e.Row, e.Column, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(table string, idx int, column string, err error) *FieldError {
	return &FieldError{Table: table, Row: idx + 1, Column: column, Err: err}
}
