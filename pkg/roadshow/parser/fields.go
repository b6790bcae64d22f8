// Package parser converts raw export text into structured roadshow records.
package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/models"
)

// NameSeparator splits "<Dossier> - <Acquirer>" composite fields.
const NameSeparator = " - "

// DateLayout is the rendering of note dates in the output sheet.
const DateLayout = "2006-01-02 15:04"

// isoLayouts are the ISO-8601 forms accepted by FormatDate, tried in order.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseEmails extracts the addresses of a "Name <email>; Name <email>" list.
// An empty field yields no emails. Only the first models.MaxContacts
// addresses are returned, but every token must be well-formed. A single
// trailing ';' is allowed.
func ParseEmails(people string) ([]string, error) {
	if strings.TrimSpace(people) == "" {
		return nil, nil
	}

	tokens := strings.Split(people, ";")
	if strings.TrimSpace(tokens[len(tokens)-1]) == "" {
		tokens = tokens[:len(tokens)-1]
	}

	var emails []string
	for _, token := range tokens {
		open := strings.Index(token, "<")
		if open < 0 {
			return nil, fmt.Errorf("%w: %q has no '<'", ErrMalformedContact, token)
		}
		end := strings.Index(token[open+1:], ">")
		if end < 0 {
			return nil, fmt.Errorf("%w: %q has no closing '>'", ErrMalformedContact, token)
		}
		email := strings.TrimSpace(token[open+1 : open+1+end])
		if email == "" {
			return nil, fmt.Errorf("%w: %q has an empty address", ErrMalformedContact, token)
		}
		emails = append(emails, email)
	}

	if len(emails) > models.MaxContacts {
		emails = emails[:models.MaxContacts]
	}
	return emails, nil
}

// FormatDate renders an ISO-8601 timestamp as "YYYY-MM-DD HH:MM" in the
// timestamp's own offset. An empty value yields "".
func FormatDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// SplitName splits a composite "<Dossier> - <Acquirer>" field. When the
// field holds more than one separator the acquirer is the second segment.
func SplitName(composite string) (dossier, acquirer string, err error) {
	parts := strings.Split(composite, NameSeparator)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedName, composite)
	}
	return parts[0], parts[1], nil
}

// AcquirerName returns the acquirer segment of a composite name.
func AcquirerName(composite string) (string, error) {
	_, acquirer, err := SplitName(composite)
	return acquirer, err
}
