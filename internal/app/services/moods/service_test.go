package moods

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resetapp/tracker/internal/app/domain/mood"
	"github.com/resetapp/tracker/internal/app/storage"
	"github.com/resetapp/tracker/internal/app/storage/memory"
)

func TestServiceCreate(t *testing.T) {
	svc := New(memory.New(), nil)

	created, err := svc.Create(context.Background(), CreateInput{Mood: "😊", Note: "good day"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Date.IsZero())

	entries, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "😊", entries[0].Mood)
}

func TestServiceCreateValidation(t *testing.T) {
	svc := New(memory.New(), nil)

	_, err := svc.Create(context.Background(), CreateInput{})
	assert.True(t, storage.IsValidation(err), "missing mood should be a validation error, got %v", err)

	_, err = svc.Create(context.Background(), CreateInput{Mood: "🤖"})
	assert.True(t, storage.IsValidation(err), "unknown symbol should be a validation error, got %v", err)
}

func TestServiceDeleteMissing(t *testing.T) {
	svc := New(memory.New(), nil)
	assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), storage.ErrNotFound)
}

func TestCountByMoodSumsToLen(t *testing.T) {
	entries := []mood.Entry{
		{Mood: "😊"},
		{Mood: "😊"},
		{Mood: "😢"},
		{Mood: "😴"},
	}

	counts := CountByMood(entries)

	total := 0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, len(entries), total)
	assert.Equal(t, 2, counts["😊"])
	assert.Equal(t, 1, counts["😢"])
}

func TestCountByMoodIncludesZeroSymbols(t *testing.T) {
	counts := CountByMood(nil)

	require.Len(t, counts, len(mood.Set))
	for _, symbol := range mood.Set {
		c, ok := counts[symbol]
		assert.True(t, ok, "symbol %s missing from counts", symbol)
		assert.Zero(t, c)
	}
}

func TestCountByMoodIgnoresUnknownSymbols(t *testing.T) {
	counts := CountByMood([]mood.Entry{{Mood: "🤖"}})

	total := 0
	for _, c := range counts {
		total += c
	}
	assert.Zero(t, total)
}

func TestFilterByDay(t *testing.T) {
	d1 := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	d2 := time.Date(2024, 6, 2, 0, 0, 1, 0, time.UTC)

	entries := []mood.Entry{
		{ID: "a", Mood: "😊", Date: d1},
		{ID: "b", Mood: "😢", Date: d1.Add(8 * time.Hour)},
		{ID: "c", Mood: "😐", Date: d2},
	}

	got := FilterByDay(entries, d1)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}
