// Package httpapi exposes the tracker's REST API.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	app "github.com/resetapp/tracker/internal/app"
	"github.com/resetapp/tracker/internal/app/domain/habit"
	"github.com/resetapp/tracker/internal/app/metrics"
	"github.com/resetapp/tracker/internal/app/services/habits"
	"github.com/resetapp/tracker/internal/app/services/moods"
	"github.com/resetapp/tracker/internal/app/services/tasks"
	"github.com/resetapp/tracker/internal/app/storage"
	"github.com/resetapp/tracker/internal/middleware"
	"github.com/resetapp/tracker/pkg/logger"
)

// handler bundles HTTP endpoints for the application services.
type handler struct {
	app *app.Application
}

// NewRouter returns a handler exposing the REST API, health check and
// metrics, with logging, metrics and CORS middleware attached. CORS wraps the
// router from the outside: preflight OPTIONS requests never match the
// method-restricted routes, so they must be answered before mux dispatch.
func NewRouter(application *app.Application, log *logger.Logger) http.Handler {
	h := &handler{app: application}

	r := mux.NewRouter()
	r.Use(middleware.Logging(log))
	r.Use(middleware.Metrics())

	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/tasks", h.listTasks).Methods(http.MethodGet)
	api.HandleFunc("/tasks", h.createTask).Methods(http.MethodPost)
	api.HandleFunc("/tasks/completed", h.listCompletedTasks).Methods(http.MethodGet)
	api.HandleFunc("/tasks/{id}", h.getTask).Methods(http.MethodGet)
	api.HandleFunc("/tasks/{id}", h.updateTask).Methods(http.MethodPatch)
	api.HandleFunc("/tasks/{id}", h.deleteTask).Methods(http.MethodDelete)

	api.HandleFunc("/habits", h.listHabits).Methods(http.MethodGet)
	api.HandleFunc("/habits", h.createHabit).Methods(http.MethodPost)
	api.HandleFunc("/habits/log/{id}", h.logHabit).Methods(http.MethodPatch)
	api.HandleFunc("/habits/{id}", h.getHabit).Methods(http.MethodGet)
	api.HandleFunc("/habits/{id}", h.updateHabit).Methods(http.MethodPatch)
	api.HandleFunc("/habits/{id}", h.deleteHabit).Methods(http.MethodDelete)

	api.HandleFunc("/moods", h.listMoods).Methods(http.MethodGet)
	api.HandleFunc("/moods", h.createMood).Methods(http.MethodPost)
	api.HandleFunc("/moods/summary", h.moodSummary).Methods(http.MethodGet)
	api.HandleFunc("/moods/{id}", h.deleteMood).Methods(http.MethodDelete)

	api.HandleFunc("/quotes", h.getQuote).Methods(http.MethodGet)

	return middleware.CORS()(r)
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Tasks -----------------------------------------------------------------------

// listTasks returns all tasks, optionally narrowed and ordered by query
// params: ?completed=true|false, ?due=YYYY-MM-DD, ?sortBy=dueDate|priority.
func (h *handler) listTasks(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Tasks.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	if raw := q.Get("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, storage.NewValidationError("completed", "must be true or false"))
			return
		}
		result = tasks.FilterByCompletion(result, completed)
	}
	if raw := q.Get("due"); raw != "" {
		day, err := time.Parse(habit.DayKeyLayout, raw)
		if err != nil {
			writeError(w, storage.NewValidationError("due", "must be formatted YYYY-MM-DD"))
			return
		}
		result = tasks.FilterByDueDate(result, day)
	}
	if raw := q.Get("sortBy"); raw != "" {
		mode := tasks.SortMode(raw)
		if mode != tasks.SortByDueDate && mode != tasks.SortByPriority {
			writeError(w, storage.NewValidationError("sortBy", "must be dueDate or priority"))
			return
		}
		result = tasks.Sort(result, mode)
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *handler) createTask(w http.ResponseWriter, r *http.Request) {
	var in tasks.CreateInput
	if err := decodeJSON(r.Body, &in); err != nil {
		writeError(w, storage.NewValidationError("body", err.Error()))
		return
	}
	created, err := h.app.Tasks.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	metrics.RecordCreated("task")
	writeJSON(w, http.StatusCreated, created)
}

func (h *handler) listCompletedTasks(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Tasks.ListCompleted(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) getTask(w http.ResponseWriter, r *http.Request) {
	t, err := h.app.Tasks.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *handler) updateTask(w http.ResponseWriter, r *http.Request) {
	var in tasks.UpdateInput
	if err := decodeJSONPartial(r.Body, &in); err != nil {
		writeError(w, storage.NewValidationError("body", err.Error()))
		return
	}
	updated, err := h.app.Tasks.Update(r.Context(), mux.Vars(r)["id"], in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.app.Tasks.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Task deleted"})
}

// Habits ----------------------------------------------------------------------

func (h *handler) listHabits(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Habits.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) createHabit(w http.ResponseWriter, r *http.Request) {
	var in habits.CreateInput
	if err := decodeJSON(r.Body, &in); err != nil {
		writeError(w, storage.NewValidationError("body", err.Error()))
		return
	}
	created, err := h.app.Habits.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	metrics.RecordCreated("habit")
	writeJSON(w, http.StatusCreated, created)
}

func (h *handler) logHabit(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Amount *int   `json:"amount"`
		Date   string `json:"date"`
	}
	if err := decodeJSONPartial(r.Body, &payload); err != nil {
		writeError(w, storage.NewValidationError("body", err.Error()))
		return
	}
	if payload.Amount == nil {
		writeError(w, storage.NewValidationError("amount", "required"))
		return
	}

	updated, err := h.app.Habits.LogDelta(r.Context(), mux.Vars(r)["id"], payload.Date, *payload.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	metrics.RecordHabitLogDelta(*payload.Amount)
	writeJSON(w, http.StatusOK, updated)
}

func (h *handler) getHabit(w http.ResponseWriter, r *http.Request) {
	hb, err := h.app.Habits.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hb)
}

func (h *handler) updateHabit(w http.ResponseWriter, r *http.Request) {
	var in habits.UpdateInput
	if err := decodeJSONPartial(r.Body, &in); err != nil {
		writeError(w, storage.NewValidationError("body", err.Error()))
		return
	}
	updated, err := h.app.Habits.Update(r.Context(), mux.Vars(r)["id"], in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *handler) deleteHabit(w http.ResponseWriter, r *http.Request) {
	if err := h.app.Habits.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Habit deleted"})
}

// Moods -----------------------------------------------------------------------

func (h *handler) listMoods(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Moods.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) createMood(w http.ResponseWriter, r *http.Request) {
	var in moods.CreateInput
	if err := decodeJSON(r.Body, &in); err != nil {
		writeError(w, storage.NewValidationError("body", err.Error()))
		return
	}
	created, err := h.app.Moods.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	metrics.RecordCreated("mood")
	writeJSON(w, http.StatusCreated, created)
}

// moodSummary tallies entries per mood symbol, optionally scoped to one
// calendar day via ?day=YYYY-MM-DD.
func (h *handler) moodSummary(w http.ResponseWriter, r *http.Request) {
	entries, err := h.app.Moods.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	if raw := r.URL.Query().Get("day"); raw != "" {
		day, err := time.Parse(habit.DayKeyLayout, raw)
		if err != nil {
			writeError(w, storage.NewValidationError("day", "must be formatted YYYY-MM-DD"))
			return
		}
		entries = moods.FilterByDay(entries, day)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"counts": moods.CountByMood(entries),
		"total":  len(entries),
	})
}

func (h *handler) deleteMood(w http.ResponseWriter, r *http.Request) {
	if err := h.app.Moods.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Mood deleted"})
}

// Quotes ----------------------------------------------------------------------

func (h *handler) getQuote(w http.ResponseWriter, _ *http.Request) {
	quote, err := h.app.Quotes.Pick()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"quote": quote})
}

// Helpers ---------------------------------------------------------------------

func decodeJSON(body io.ReadCloser, dst interface{}) error {
	defer body.Close()
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// decodeJSONPartial decodes a partial-update body. Unknown fields are
// ignored: clients echo the full record back on PATCH, read-only fields
// included, and that must not be a 400.
func decodeJSONPartial(body io.ReadCloser, dst interface{}) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError maps the error taxonomy to HTTP status codes: validation to 400,
// missing records to 404, everything else to 500. The message is surfaced
// unredacted; this is a single-user local tool.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case storage.IsValidation(err):
		status = http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": err.Error()})
}
