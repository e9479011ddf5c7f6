// Package mongo implements the storage interfaces backed by MongoDB.
package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/resetapp/tracker/internal/app/domain/habit"
	"github.com/resetapp/tracker/internal/app/domain/mood"
	"github.com/resetapp/tracker/internal/app/domain/task"
	"github.com/resetapp/tracker/internal/app/storage"
)

const (
	tasksCollection  = "tasks"
	habitsCollection = "habits"
	moodsCollection  = "moods"
)

// Store implements the storage interfaces on a MongoDB database handle.
type Store struct {
	db *mongo.Database
}

var _ storage.TaskStore = (*Store)(nil)
var _ storage.HabitStore = (*Store)(nil)
var _ storage.MoodStore = (*Store)(nil)

// New creates a Store using the provided database handle.
func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Connect dials MongoDB, verifies the connection with a ping and returns a
// Store bound to the named database.
func Connect(ctx context.Context, uri, database string) (*Store, *mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}
	return New(client.Database(database)), client, nil
}

func newID() string {
	return primitive.NewObjectID().Hex()
}

func translateErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return storage.ErrNotFound
	}
	return err
}

// --- TaskStore --------------------------------------------------------------

func (s *Store) CreateTask(ctx context.Context, t task.Task) (task.Task, error) {
	if t.ID == "" {
		t.ID = newID()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Tags == nil {
		t.Tags = []string{}
	}

	if _, err := s.db.Collection(tasksCollection).InsertOne(ctx, t); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

func (s *Store) UpdateTask(ctx context.Context, t task.Task) (task.Task, error) {
	t.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"title":       t.Title,
		"description": t.Description,
		"dueDate":     t.DueDate,
		"reminder":    t.Reminder,
		"tags":        t.Tags,
		"priority":    t.Priority,
		"completed":   t.Completed,
		"updatedAt":   t.UpdatedAt,
	}}

	var updated task.Task
	err := s.db.Collection(tasksCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": t.ID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return task.Task{}, translateErr(err)
	}
	return updated, nil
}

func (s *Store) GetTask(ctx context.Context, id string) (task.Task, error) {
	var t task.Task
	err := s.db.Collection(tasksCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err != nil {
		return task.Task{}, translateErr(err)
	}
	return t, nil
}

func (s *Store) ListTasks(ctx context.Context) ([]task.Task, error) {
	cur, err := s.db.Collection(tasksCollection).Find(
		ctx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	tasks := []task.Task{}
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Store) ListCompletedTasks(ctx context.Context) ([]task.Task, error) {
	cur, err := s.db.Collection(tasksCollection).Find(
		ctx,
		bson.M{"completed": true},
		options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	tasks := []task.Task{}
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Store) DeleteTask(ctx context.Context, id string) error {
	res, err := s.db.Collection(tasksCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// --- HabitStore -------------------------------------------------------------

func (s *Store) CreateHabit(ctx context.Context, h habit.Habit) (habit.Habit, error) {
	if h.ID == "" {
		h.ID = newID()
	}
	now := time.Now().UTC()
	h.CreatedAt = now
	h.UpdatedAt = now
	if h.Log == nil {
		h.Log = map[string]int{}
	}

	if _, err := s.db.Collection(habitsCollection).InsertOne(ctx, h); err != nil {
		return habit.Habit{}, err
	}
	return h, nil
}

func (s *Store) UpdateHabit(ctx context.Context, h habit.Habit) (habit.Habit, error) {
	h.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"title":     h.Title,
		"type":      h.Type,
		"target":    h.Target,
		"unit":      h.Unit,
		"updatedAt": h.UpdatedAt,
	}}

	var updated habit.Habit
	err := s.db.Collection(habitsCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": h.ID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return habit.Habit{}, translateErr(err)
	}
	return updated, nil
}

func (s *Store) GetHabit(ctx context.Context, id string) (habit.Habit, error) {
	var h habit.Habit
	err := s.db.Collection(habitsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&h)
	if err != nil {
		return habit.Habit{}, translateErr(err)
	}
	return h, nil
}

func (s *Store) ListHabits(ctx context.Context) ([]habit.Habit, error) {
	cur, err := s.db.Collection(habitsCollection).Find(
		ctx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	habits := []habit.Habit{}
	if err := cur.All(ctx, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

func (s *Store) DeleteHabit(ctx context.Context, id string) error {
	res, err := s.db.Collection(habitsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// IncrementLog applies the delta as a single $inc so concurrent increments on
// the same habit and day cannot lose updates.
func (s *Store) IncrementLog(ctx context.Context, id, dayKey string, delta int) (habit.Habit, error) {
	update := bson.M{
		"$inc": bson.M{"log." + dayKey: delta},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}

	var updated habit.Habit
	err := s.db.Collection(habitsCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return habit.Habit{}, translateErr(err)
	}
	return updated, nil
}

// --- MoodStore --------------------------------------------------------------

func (s *Store) CreateMood(ctx context.Context, e mood.Entry) (mood.Entry, error) {
	if e.ID == "" {
		e.ID = newID()
	}
	if e.Date.IsZero() {
		e.Date = time.Now().UTC()
	}

	if _, err := s.db.Collection(moodsCollection).InsertOne(ctx, e); err != nil {
		return mood.Entry{}, err
	}
	return e, nil
}

func (s *Store) ListMoods(ctx context.Context) ([]mood.Entry, error) {
	cur, err := s.db.Collection(moodsCollection).Find(
		ctx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	entries := []mood.Entry{}
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) DeleteMood(ctx context.Context, id string) error {
	res, err := s.db.Collection(moodsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}
