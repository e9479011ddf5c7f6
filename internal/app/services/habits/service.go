// Package habits manages habit records and their per-day progress logs.
package habits

import (
	"context"
	"strings"
	"time"

	"github.com/resetapp/tracker/internal/app/domain/habit"
	"github.com/resetapp/tracker/internal/app/storage"
	"github.com/resetapp/tracker/pkg/logger"
)

// Service manages habit lifecycle and progress logging.
type Service struct {
	store storage.HabitStore
	log   *logger.Logger
}

// New constructs a habit service.
func New(store storage.HabitStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("habits")
	}
	return &Service{store: store, log: log}
}

// CreateInput carries the caller-supplied fields for a new habit.
type CreateInput struct {
	Title  string  `json:"title"`
	Type   string  `json:"type"`
	Target float64 `json:"target"`
	Unit   string  `json:"unit"`
}

// UpdateInput carries a partial field merge. Nil fields are left unchanged.
// The progress log is never touched by Update; LogDelta owns it.
type UpdateInput struct {
	Title  *string  `json:"title"`
	Type   *string  `json:"type"`
	Target *float64 `json:"target"`
	Unit   *string  `json:"unit"`
}

// Create validates and persists a new habit with an empty log.
func (s *Service) Create(ctx context.Context, in CreateInput) (habit.Habit, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return habit.Habit{}, storage.NewValidationError("title", "required")
	}

	created, err := s.store.CreateHabit(ctx, habit.Habit{
		Title:  title,
		Type:   in.Type,
		Target: in.Target,
		Unit:   in.Unit,
		Log:    map[string]int{},
	})
	if err != nil {
		return habit.Habit{}, err
	}
	s.log.WithField("habit_id", created.ID).Info("habit created")
	return created, nil
}

// Update applies a partial merge to an existing habit.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (habit.Habit, error) {
	h, err := s.store.GetHabit(ctx, id)
	if err != nil {
		return habit.Habit{}, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return habit.Habit{}, storage.NewValidationError("title", "must not be empty")
		}
		h.Title = title
	}
	if in.Type != nil {
		h.Type = *in.Type
	}
	if in.Target != nil {
		h.Target = *in.Target
	}
	if in.Unit != nil {
		h.Unit = *in.Unit
	}

	updated, err := s.store.UpdateHabit(ctx, h)
	if err != nil {
		return habit.Habit{}, err
	}
	s.log.WithField("habit_id", id).Debug("habit updated")
	return updated, nil
}

// LogDelta adds delta to the habit's count for the given day key and returns
// the updated habit. An empty dayKey means today (UTC). The increment happens
// atomically at the store layer. No floor is applied: repeated decrements can
// drive a day below zero, matching the recorded behavior the clients expect.
func (s *Service) LogDelta(ctx context.Context, id, dayKey string, delta int) (habit.Habit, error) {
	if dayKey == "" {
		dayKey = habit.DayKey(time.Now())
	} else if !habit.ValidDayKey(dayKey) {
		return habit.Habit{}, storage.NewValidationError("date", "must be formatted YYYY-MM-DD")
	}

	updated, err := s.store.IncrementLog(ctx, id, dayKey, delta)
	if err != nil {
		return habit.Habit{}, err
	}
	s.log.WithField("habit_id", id).
		WithField("day", dayKey).
		WithField("delta", delta).
		Debug("habit progress logged")
	return updated, nil
}

// Get returns a single habit by id.
func (s *Service) Get(ctx context.Context, id string) (habit.Habit, error) {
	return s.store.GetHabit(ctx, id)
}

// List returns all habits.
func (s *Service) List(ctx context.Context) ([]habit.Habit, error) {
	return s.store.ListHabits(ctx)
}

// Delete removes a habit by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteHabit(ctx, id); err != nil {
		return err
	}
	s.log.WithField("habit_id", id).Info("habit deleted")
	return nil
}
