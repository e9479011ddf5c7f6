// Package mood defines mood entries and the fixed mood symbol set.
package mood

import "time"

// Set is the fixed list of mood symbols clients may record, in display order.
// Aggregations report every symbol of the set, including zero counts, so bar
// charts render with a stable axis.
var Set = []string{"😊", "😐", "😢", "😠", "😌", "😴"}

// ValidSymbol reports whether s is a member of the fixed mood set.
func ValidSymbol(s string) bool {
	for _, m := range Set {
		if m == s {
			return true
		}
	}
	return false
}

// Entry is a single mood record. Entries are append-only: there is no edit
// endpoint, so Date is immutable after creation.
type Entry struct {
	ID   string    `json:"id" bson:"_id,omitempty"`
	Mood string    `json:"mood" bson:"mood"`
	Note string    `json:"note,omitempty" bson:"note,omitempty"`
	Date time.Time `json:"date" bson:"date"`
}
