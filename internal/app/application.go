package app

import (
	"github.com/resetapp/tracker/internal/app/services/habits"
	"github.com/resetapp/tracker/internal/app/services/moods"
	"github.com/resetapp/tracker/internal/app/services/quotes"
	"github.com/resetapp/tracker/internal/app/services/tasks"
	"github.com/resetapp/tracker/internal/app/storage"
	"github.com/resetapp/tracker/internal/app/storage/memory"
	"github.com/resetapp/tracker/pkg/logger"
)

// Stores encapsulates persistence dependencies. Nil stores default to a
// shared in-memory implementation.
type Stores struct {
	Tasks  storage.TaskStore
	Habits storage.HabitStore
	Moods  storage.MoodStore
}

// Application ties the domain services together.
type Application struct {
	log *logger.Logger

	Tasks  *tasks.Service
	Habits *habits.Service
	Moods  *moods.Service
	Quotes *quotes.Service
}

// New builds a fully initialised application with the provided stores.
func New(stores Stores, log *logger.Logger) *Application {
	if log == nil {
		log = logger.NewDefault("app")
	}

	mem := memory.New()
	if stores.Tasks == nil {
		stores.Tasks = mem
	}
	if stores.Habits == nil {
		stores.Habits = mem
	}
	if stores.Moods == nil {
		stores.Moods = mem
	}

	return &Application{
		log:    log,
		Tasks:  tasks.New(stores.Tasks, log),
		Habits: habits.New(stores.Habits, log),
		Moods:  moods.New(stores.Moods, log),
		Quotes: quotes.New(nil, log),
	}
}
