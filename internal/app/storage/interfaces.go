// Package storage defines the persistence contracts for tracker records.
package storage

import (
	"context"

	"github.com/resetapp/tracker/internal/app/domain/habit"
	"github.com/resetapp/tracker/internal/app/domain/mood"
	"github.com/resetapp/tracker/internal/app/domain/task"
)

// TaskStore persists task records.
type TaskStore interface {
	CreateTask(ctx context.Context, t task.Task) (task.Task, error)
	UpdateTask(ctx context.Context, t task.Task) (task.Task, error)
	GetTask(ctx context.Context, id string) (task.Task, error)
	ListTasks(ctx context.Context) ([]task.Task, error)
	// ListCompletedTasks returns completed tasks ordered by UpdatedAt
	// descending, most recently finished first.
	ListCompletedTasks(ctx context.Context) ([]task.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// HabitStore persists habit records and their per-day progress logs.
type HabitStore interface {
	CreateHabit(ctx context.Context, h habit.Habit) (habit.Habit, error)
	UpdateHabit(ctx context.Context, h habit.Habit) (habit.Habit, error)
	GetHabit(ctx context.Context, id string) (habit.Habit, error)
	ListHabits(ctx context.Context) ([]habit.Habit, error)
	DeleteHabit(ctx context.Context, id string) error
	// IncrementLog atomically adds delta to the habit's count for dayKey and
	// returns the updated habit. The increment must be a single store-level
	// operation so concurrent deltas on the same habit and day cannot lose
	// updates.
	IncrementLog(ctx context.Context, id, dayKey string, delta int) (habit.Habit, error)
}

// MoodStore persists mood entries.
type MoodStore interface {
	CreateMood(ctx context.Context, e mood.Entry) (mood.Entry, error)
	// ListMoods returns entries ordered by Date descending.
	ListMoods(ctx context.Context) ([]mood.Entry, error)
	DeleteMood(ctx context.Context, id string) error
}
