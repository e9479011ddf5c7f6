// Package tasks manages task records and their query helpers.
package tasks

import (
	"context"
	"strings"
	"time"

	"github.com/resetapp/tracker/internal/app/domain/task"
	"github.com/resetapp/tracker/internal/app/storage"
	"github.com/resetapp/tracker/pkg/logger"
)

// Service manages task lifecycle.
type Service struct {
	store storage.TaskStore
	log   *logger.Logger
}

// New constructs a task service.
func New(store storage.TaskStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("tasks")
	}
	return &Service{store: store, log: log}
}

// CreateInput carries the caller-supplied fields for a new task.
type CreateInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Reminder    *time.Time `json:"reminder"`
	Tags        []string   `json:"tags"`
	Priority    string     `json:"priority"`
}

// UpdateInput carries a partial field merge. Nil fields are left unchanged.
type UpdateInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Reminder    *time.Time `json:"reminder"`
	Tags        *[]string  `json:"tags"`
	Priority    *string    `json:"priority"`
	Completed   *bool      `json:"completed"`
}

// Create validates and persists a new task.
func (s *Service) Create(ctx context.Context, in CreateInput) (task.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return task.Task{}, storage.NewValidationError("title", "required")
	}

	priority := task.Priority(in.Priority)
	if in.Priority == "" {
		priority = task.PriorityMedium
	} else if !priority.Valid() {
		return task.Task{}, storage.NewValidationError("priority", "must be Low, Medium or High")
	}

	created, err := s.store.CreateTask(ctx, task.Task{
		Title:       title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Reminder:    in.Reminder,
		Tags:        in.Tags,
		Priority:    priority,
		Completed:   false,
	})
	if err != nil {
		return task.Task{}, err
	}
	s.log.WithField("task_id", created.ID).Info("task created")
	return created, nil
}

// Update applies a partial merge to an existing task, including the
// completed toggle.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (task.Task, error) {
	t, err := s.store.GetTask(ctx, id)
	if err != nil {
		return task.Task{}, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return task.Task{}, storage.NewValidationError("title", "must not be empty")
		}
		t.Title = title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.DueDate != nil {
		t.DueDate = in.DueDate
	}
	if in.Reminder != nil {
		t.Reminder = in.Reminder
	}
	if in.Tags != nil {
		t.Tags = *in.Tags
	}
	if in.Priority != nil {
		priority := task.Priority(*in.Priority)
		if !priority.Valid() {
			return task.Task{}, storage.NewValidationError("priority", "must be Low, Medium or High")
		}
		t.Priority = priority
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}

	updated, err := s.store.UpdateTask(ctx, t)
	if err != nil {
		return task.Task{}, err
	}
	s.log.WithField("task_id", id).Debug("task updated")
	return updated, nil
}

// Get returns a single task by id.
func (s *Service) Get(ctx context.Context, id string) (task.Task, error) {
	return s.store.GetTask(ctx, id)
}

// List returns all tasks, completed ones included.
func (s *Service) List(ctx context.Context) ([]task.Task, error) {
	return s.store.ListTasks(ctx)
}

// ListCompleted returns completed tasks, most recently updated first.
func (s *Service) ListCompleted(ctx context.Context) ([]task.Task, error) {
	return s.store.ListCompletedTasks(ctx)
}

// Delete removes a task by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteTask(ctx, id); err != nil {
		return err
	}
	s.log.WithField("task_id", id).Info("task deleted")
	return nil
}
