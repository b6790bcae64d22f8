package models

// MaxContacts is the number of contact slots per output row.
const MaxContacts = 3

// ContactSlots holds the matched contacts of one deal, indexed by the order
// of the parsed emails. A nil slot means no persons row matched.
type ContactSlots [MaxContacts]*ContactRecord

// Count returns the number of filled slots.
func (s ContactSlots) Count() int {
	n := 0
	for _, c := range s {
		if c != nil {
			n++
		}
	}
	return n
}

// NoteMatch attaches a note to an output row.
type NoteMatch struct {
	// Index is the 0-based deal index (output row = start row + Index).
	Index   int    `json:"index"`
	Content string `json:"content"`
	// Date is the author date rendered as "YYYY-MM-DD HH:MM".
	Date string `json:"date"`
}
