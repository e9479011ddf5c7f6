// Package moods manages mood entries and their aggregation.
package moods

import (
	"context"
	"time"

	"github.com/resetapp/tracker/internal/app/domain/mood"
	"github.com/resetapp/tracker/internal/app/storage"
	"github.com/resetapp/tracker/pkg/logger"
)

// Service manages the append-only mood journal.
type Service struct {
	store storage.MoodStore
	log   *logger.Logger
}

// New constructs a mood service.
func New(store storage.MoodStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("moods")
	}
	return &Service{store: store, log: log}
}

// CreateInput carries the caller-supplied fields for a new mood entry.
type CreateInput struct {
	Mood string `json:"mood"`
	Note string `json:"note"`
}

// Create validates and persists a new entry stamped with the current time.
func (s *Service) Create(ctx context.Context, in CreateInput) (mood.Entry, error) {
	if in.Mood == "" {
		return mood.Entry{}, storage.NewValidationError("mood", "required")
	}
	if !mood.ValidSymbol(in.Mood) {
		return mood.Entry{}, storage.NewValidationError("mood", "not a recognized mood symbol")
	}

	created, err := s.store.CreateMood(ctx, mood.Entry{
		Mood: in.Mood,
		Note: in.Note,
	})
	if err != nil {
		return mood.Entry{}, err
	}
	s.log.WithField("mood_id", created.ID).Info("mood recorded")
	return created, nil
}

// List returns all entries, newest first.
func (s *Service) List(ctx context.Context) ([]mood.Entry, error) {
	return s.store.ListMoods(ctx)
}

// Delete removes an entry by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteMood(ctx, id); err != nil {
		return err
	}
	s.log.WithField("mood_id", id).Info("mood deleted")
	return nil
}

// CountByMood tallies the given entries per symbol of the fixed mood set.
// Every symbol appears in the result, zero-valued when unmatched. Entries
// whose symbol is outside the set are ignored.
func CountByMood(entries []mood.Entry) map[string]int {
	counts := make(map[string]int, len(mood.Set))
	for _, symbol := range mood.Set {
		counts[symbol] = 0
	}
	for _, e := range entries {
		if _, ok := counts[e.Mood]; ok {
			counts[e.Mood]++
		}
	}
	return counts
}

// FilterByDay returns the entries recorded on the same UTC calendar day as
// day. Use it to scope CountByMood to a selected date.
func FilterByDay(entries []mood.Entry, day time.Time) []mood.Entry {
	y, m, d := day.UTC().Date()
	out := make([]mood.Entry, 0, len(entries))
	for _, e := range entries {
		ey, em, ed := e.Date.UTC().Date()
		if ey == y && em == m && ed == d {
			out = append(out, e)
		}
	}
	return out
}
