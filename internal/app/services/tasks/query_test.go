package tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/resetapp/tracker/internal/app/domain/task"
)

func date(s string) *time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &d
}

func TestFilterByCompletionPartitions(t *testing.T) {
	in := []task.Task{
		{ID: "a", Completed: true},
		{ID: "b"},
		{ID: "c", Completed: true},
		{ID: "d"},
	}

	done := FilterByCompletion(in, true)
	open := FilterByCompletion(in, false)

	assert.Len(t, done, 2)
	assert.Len(t, open, 2)
	assert.Equal(t, len(in), len(done)+len(open))

	seen := map[string]bool{}
	for _, t2 := range append(done, open...) {
		assert.False(t, seen[t2.ID], "task %s appeared twice", t2.ID)
		seen[t2.ID] = true
	}
}

func TestFilterByDueDate(t *testing.T) {
	in := []task.Task{
		{ID: "a", DueDate: date("2024-06-01")},
		{ID: "b", DueDate: date("2024-06-02")},
		{ID: "c"},
	}

	got := FilterByDueDate(in, *date("2024-06-01"))
	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestSortByPriorityOrder(t *testing.T) {
	in := []task.Task{
		{ID: "low", Priority: task.PriorityLow},
		{ID: "none"},
		{ID: "high", Priority: task.PriorityHigh},
		{ID: "med", Priority: task.PriorityMedium},
	}

	got := Sort(in, SortByPriority)

	assert.Equal(t, "high", got[0].ID)
	// Missing priority ranks as Medium, stable with the explicit Medium.
	assert.Equal(t, "none", got[1].ID)
	assert.Equal(t, "med", got[2].ID)
	assert.Equal(t, "low", got[3].ID)
}

func TestSortByDueDateMissingLast(t *testing.T) {
	in := []task.Task{
		{ID: "none"},
		{ID: "late", DueDate: date("2024-07-01")},
		{ID: "early", DueDate: date("2024-06-01")},
	}

	got := Sort(in, SortByDueDate)

	assert.Equal(t, "early", got[0].ID)
	assert.Equal(t, "late", got[1].ID)
	assert.Equal(t, "none", got[2].ID)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	in := []task.Task{
		{ID: "b", Priority: task.PriorityLow},
		{ID: "a", Priority: task.PriorityHigh},
	}

	_ = Sort(in, SortByPriority)
	assert.Equal(t, "b", in[0].ID)
}

func TestSortUnknownModeReturnsInputOrder(t *testing.T) {
	in := []task.Task{{ID: "b"}, {ID: "a"}}
	got := Sort(in, "alphabetical")
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
}
