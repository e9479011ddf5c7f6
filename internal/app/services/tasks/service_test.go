package tasks

import (
	"context"
	"errors"
	"testing"

	"github.com/resetapp/tracker/internal/app/domain/task"
	"github.com/resetapp/tracker/internal/app/storage"
	"github.com/resetapp/tracker/internal/app/storage/memory"
)

func TestService(t *testing.T) {
	store := memory.New()
	svc := New(store, nil)

	created, err := svc.Create(context.Background(), CreateInput{Title: "Buy groceries", Priority: "High"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected id to be generated")
	}
	if created.Priority != task.PriorityHigh {
		t.Fatalf("expected High priority, got %s", created.Priority)
	}
	if created.Completed {
		t.Fatalf("new task should not be completed")
	}

	completed := true
	updated, err := svc.Update(context.Background(), created.ID, UpdateInput{Completed: &completed})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.Completed {
		t.Fatalf("completed toggle not applied")
	}
	if updated.Title != "Buy groceries" {
		t.Fatalf("partial update must not clear title, got %q", updated.Title)
	}

	list, err := svc.ListCompleted(context.Background())
	if err != nil {
		t.Fatalf("list completed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 completed task, got %d", len(list))
	}
}

func TestServiceCreateDefaultsPriority(t *testing.T) {
	svc := New(memory.New(), nil)

	created, err := svc.Create(context.Background(), CreateInput{Title: "X"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Priority != task.PriorityMedium {
		t.Fatalf("expected Medium default, got %s", created.Priority)
	}
}

func TestServiceCreateValidation(t *testing.T) {
	svc := New(memory.New(), nil)

	if _, err := svc.Create(context.Background(), CreateInput{}); !storage.IsValidation(err) {
		t.Fatalf("expected validation error for missing title, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{Title: "  "}); !storage.IsValidation(err) {
		t.Fatalf("expected validation error for blank title, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{Title: "X", Priority: "Urgent"}); !storage.IsValidation(err) {
		t.Fatalf("expected validation error for unknown priority, got %v", err)
	}
}

func TestServiceUpdateMissing(t *testing.T) {
	svc := New(memory.New(), nil)

	completed := true
	_, err := svc.Update(context.Background(), "missing", UpdateInput{Completed: &completed})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestServiceDeleteMissing(t *testing.T) {
	svc := New(memory.New(), nil)

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
