package tasks

import (
	"sort"
	"time"

	"github.com/resetapp/tracker/internal/app/domain/task"
)

// SortMode selects the ordering applied by Sort.
type SortMode string

const (
	SortByDueDate  SortMode = "dueDate"
	SortByPriority SortMode = "priority"
)

// FilterByCompletion returns the subset of tasks whose Completed flag matches.
func FilterByCompletion(in []task.Task, completed bool) []task.Task {
	out := make([]task.Task, 0, len(in))
	for _, t := range in {
		if t.Completed == completed {
			out = append(out, t)
		}
	}
	return out
}

// FilterByDueDate returns tasks whose due date falls on the same UTC calendar
// day as day. Tasks without a due date never match.
func FilterByDueDate(in []task.Task, day time.Time) []task.Task {
	y, m, d := day.UTC().Date()
	out := make([]task.Task, 0, len(in))
	for _, t := range in {
		if t.DueDate == nil {
			continue
		}
		ty, tm, td := t.DueDate.UTC().Date()
		if ty == y && tm == m && td == d {
			out = append(out, t)
		}
	}
	return out
}

// Sort returns a new slice ordered by the given mode. "dueDate" sorts
// ascending with tasks lacking a due date last; "priority" sorts
// High, Medium, Low with a missing priority ranking as Medium. The sort is
// stable, so equal keys keep their relative order. Unknown modes return the
// input unchanged.
func Sort(in []task.Task, mode SortMode) []task.Task {
	out := make([]task.Task, len(in))
	copy(out, in)

	switch mode {
	case SortByDueDate:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].DueDate, out[j].DueDate
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			default:
				return a.Before(*b)
			}
		})
	case SortByPriority:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Priority.Rank() < out[j].Priority.Rank()
		})
	}
	return out
}
