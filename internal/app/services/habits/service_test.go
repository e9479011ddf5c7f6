package habits

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/resetapp/tracker/internal/app/domain/habit"
	"github.com/resetapp/tracker/internal/app/storage"
	"github.com/resetapp/tracker/internal/app/storage/memory"
)

func TestService(t *testing.T) {
	store := memory.New()
	svc := New(store, nil)

	created, err := svc.Create(context.Background(), CreateInput{Title: "Water", Target: 8, Unit: "cups"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected id to be generated")
	}
	if created.Log == nil {
		t.Fatalf("expected empty log map, got nil")
	}

	unit := "glasses"
	updated, err := svc.Update(context.Background(), created.ID, UpdateInput{Unit: &unit})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Unit != "glasses" {
		t.Fatalf("unit not updated")
	}
	if updated.Title != "Water" {
		t.Fatalf("partial update must not clear title")
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestLogDeltaAccumulates(t *testing.T) {
	svc := New(memory.New(), nil)
	ctx := context.Background()

	h, err := svc.Create(ctx, CreateInput{Title: "Water"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	day := "2024-06-01"
	before := h.LogFor(day)

	for i := 0; i < 3; i++ {
		h, err = svc.LogDelta(ctx, h.ID, day, 1)
		if err != nil {
			t.Fatalf("log delta: %v", err)
		}
	}
	if got := h.LogFor(day); got != before+3 {
		t.Fatalf("expected %d, got %d", before+3, got)
	}

	h, err = svc.LogDelta(ctx, h.ID, day, -1)
	if err != nil {
		t.Fatalf("log delta: %v", err)
	}
	if got := h.LogFor(day); got != before+2 {
		t.Fatalf("expected %d after decrement, got %d", before+2, got)
	}
}

func TestLogDeltaBelowZeroAllowed(t *testing.T) {
	svc := New(memory.New(), nil)
	ctx := context.Background()

	h, err := svc.Create(ctx, CreateInput{Title: "Stretch"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	h, err = svc.LogDelta(ctx, h.ID, "2024-06-01", -2)
	if err != nil {
		t.Fatalf("log delta: %v", err)
	}
	if got := h.LogFor("2024-06-01"); got != -2 {
		t.Fatalf("expected -2, got %d", got)
	}
}

func TestLogDeltaDefaultsToToday(t *testing.T) {
	svc := New(memory.New(), nil)
	ctx := context.Background()

	h, err := svc.Create(ctx, CreateInput{Title: "Read"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	h, err = svc.LogDelta(ctx, h.ID, "", 1)
	if err != nil {
		t.Fatalf("log delta: %v", err)
	}
	if got := h.LogFor(habit.DayKey(time.Now())); got != 1 {
		t.Fatalf("expected today's count of 1, got %d", got)
	}
}

func TestLogDeltaRejectsMalformedDay(t *testing.T) {
	svc := New(memory.New(), nil)
	ctx := context.Background()

	h, err := svc.Create(ctx, CreateInput{Title: "Read"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, bad := range []string{"06/01/2024", "2024-6-1", "2024-13-40", "tomorrow"} {
		if _, err := svc.LogDelta(ctx, h.ID, bad, 1); !storage.IsValidation(err) {
			t.Fatalf("expected validation error for day %q, got %v", bad, err)
		}
	}
}

func TestUnwrittenDayReadsZero(t *testing.T) {
	var h habit.Habit
	if got := h.LogFor("2024-06-01"); got != 0 {
		t.Fatalf("nil log should read 0, got %d", got)
	}
	h.Log = map[string]int{"2024-06-02": 5}
	if got := h.LogFor("2024-06-01"); got != 0 {
		t.Fatalf("absent key should read 0, got %d", got)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := New(memory.New(), nil)

	if _, err := svc.Create(context.Background(), CreateInput{}); !storage.IsValidation(err) {
		t.Fatalf("expected validation error for missing title, got %v", err)
	}
}

func TestLogDeltaMissingHabit(t *testing.T) {
	svc := New(memory.New(), nil)

	if _, err := svc.LogDelta(context.Background(), "missing", "2024-06-01", 1); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
