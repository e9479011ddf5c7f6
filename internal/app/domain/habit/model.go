// Package habit defines the habit domain model and its per-day progress log.
package habit

import (
	"regexp"
	"time"
)

// DayKeyLayout is the calendar-day format used to index the progress log.
const DayKeyLayout = "2006-01-02"

var dayKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DayKey truncates t to calendar-day precision in UTC. Both the HTTP layer
// and the stores derive keys through this function so log continuity does not
// depend on the server timezone.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayKeyLayout)
}

// ValidDayKey reports whether s is a well-formed, parseable day key.
func ValidDayKey(s string) bool {
	if !dayKeyPattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(DayKeyLayout, s)
	return err == nil
}

// Habit is a recurring activity tracked against an optional daily target.
// LastCompleted is carried on the wire for client compatibility but no
// handler consumes it.
type Habit struct {
	ID            string         `json:"id" bson:"_id,omitempty"`
	Title         string         `json:"title" bson:"title"`
	Type          string         `json:"type,omitempty" bson:"type,omitempty"`
	Target        float64        `json:"target,omitempty" bson:"target,omitempty"`
	Unit          string         `json:"unit,omitempty" bson:"unit,omitempty"`
	Log           map[string]int `json:"log" bson:"log"`
	LastCompleted *time.Time     `json:"lastCompleted,omitempty" bson:"lastCompleted,omitempty"`
	CreatedAt     time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// LogFor returns the logged count for the given day key, zero when the day
// has no entry.
func (h Habit) LogFor(dayKey string) int {
	if h.Log == nil {
		return 0
	}
	return h.Log[dayKey]
}
