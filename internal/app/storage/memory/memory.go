// Package memory provides an in-memory implementation of the storage
// interfaces. It is safe for concurrent use and is primarily intended for
// tests and local development without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/resetapp/tracker/internal/app/domain/habit"
	"github.com/resetapp/tracker/internal/app/domain/mood"
	"github.com/resetapp/tracker/internal/app/domain/task"
	"github.com/resetapp/tracker/internal/app/storage"
)

// Store holds all records behind a single RWMutex. Returned values are deep
// clones so callers cannot mutate stored state.
type Store struct {
	mu     sync.RWMutex
	tasks  map[string]task.Task
	habits map[string]habit.Habit
	moods  map[string]mood.Entry
}

var _ storage.TaskStore = (*Store)(nil)
var _ storage.HabitStore = (*Store)(nil)
var _ storage.MoodStore = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{
		tasks:  make(map[string]task.Task),
		habits: make(map[string]habit.Habit),
		moods:  make(map[string]mood.Entry),
	}
}

// TaskStore implementation ---------------------------------------------------

func (s *Store) CreateTask(_ context.Context, t task.Task) (task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	t.Tags = cloneStrings(t.Tags)

	s.tasks[t.ID] = t
	return cloneTask(t), nil
}

func (s *Store) UpdateTask(_ context.Context, t task.Task) (task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	original, ok := s.tasks[t.ID]
	if !ok {
		return task.Task{}, storage.ErrNotFound
	}

	t.CreatedAt = original.CreatedAt
	t.UpdatedAt = time.Now().UTC()
	t.Tags = cloneStrings(t.Tags)

	s.tasks[t.ID] = t
	return cloneTask(t), nil
}

func (s *Store) GetTask(_ context.Context, id string) (task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return task.Task{}, storage.ErrNotFound
	}
	return cloneTask(t), nil
}

func (s *Store) ListTasks(_ context.Context) ([]task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		result = append(result, cloneTask(t))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (s *Store) ListCompletedTasks(_ context.Context) ([]task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]task.Task, 0)
	for _, t := range s.tasks {
		if t.Completed {
			result = append(result, cloneTask(t))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}

func (s *Store) DeleteTask(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

// HabitStore implementation --------------------------------------------------

func (s *Store) CreateHabit(_ context.Context, h habit.Habit) (habit.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	h.CreatedAt = now
	h.UpdatedAt = now
	if h.Log == nil {
		h.Log = make(map[string]int)
	} else {
		h.Log = cloneLog(h.Log)
	}

	s.habits[h.ID] = h
	return cloneHabit(h), nil
}

func (s *Store) UpdateHabit(_ context.Context, h habit.Habit) (habit.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	original, ok := s.habits[h.ID]
	if !ok {
		return habit.Habit{}, storage.ErrNotFound
	}

	h.CreatedAt = original.CreatedAt
	h.UpdatedAt = time.Now().UTC()
	// The caller's log may be stale; IncrementLog owns the log, so the stored
	// one wins. This matches the mongo store, which only sets the other fields.
	h.Log = cloneLog(original.Log)

	s.habits[h.ID] = h
	return cloneHabit(h), nil
}

func (s *Store) GetHabit(_ context.Context, id string) (habit.Habit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.habits[id]
	if !ok {
		return habit.Habit{}, storage.ErrNotFound
	}
	return cloneHabit(h), nil
}

func (s *Store) ListHabits(_ context.Context) ([]habit.Habit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]habit.Habit, 0, len(s.habits))
	for _, h := range s.habits {
		result = append(result, cloneHabit(h))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (s *Store) DeleteHabit(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.habits[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.habits, id)
	return nil
}

// IncrementLog performs the read-modify-write under the store mutex, so
// concurrent deltas on the same habit and day serialize instead of racing.
func (s *Store) IncrementLog(_ context.Context, id, dayKey string, delta int) (habit.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.habits[id]
	if !ok {
		return habit.Habit{}, storage.ErrNotFound
	}

	log := cloneLog(h.Log)
	log[dayKey] += delta
	h.Log = log
	h.UpdatedAt = time.Now().UTC()

	s.habits[id] = h
	return cloneHabit(h), nil
}

// MoodStore implementation ---------------------------------------------------

func (s *Store) CreateMood(_ context.Context, e mood.Entry) (mood.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Date.IsZero() {
		e.Date = time.Now().UTC()
	}

	s.moods[e.ID] = e
	return e, nil
}

func (s *Store) ListMoods(_ context.Context) ([]mood.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]mood.Entry, 0, len(s.moods))
	for _, e := range s.moods {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

func (s *Store) DeleteMood(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.moods[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.moods, id)
	return nil
}

// Clone helpers ---------------------------------------------------------------

func cloneTask(t task.Task) task.Task {
	t.Tags = cloneStrings(t.Tags)
	return t
}

func cloneHabit(h habit.Habit) habit.Habit {
	h.Log = cloneLog(h.Log)
	return h
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneLog(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
