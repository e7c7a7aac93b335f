package repository

import (
	"context"
	"errors"
	"exercisetracker/internal/core"
	"exercisetracker/internal/db"
	"fmt"
)

type TrackerRepository struct {
	db Storage
}

func NewTrackerRepository(db Storage) *TrackerRepository {
	return &TrackerRepository{
		db: db,
	}
}

func (r *TrackerRepository) Migrate(ctx context.Context) error {
	err := r.db.MigrateTable(ctx, &User{}, &Exercise{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *TrackerRepository) CreateUser(ctx context.Context, user core.User) error {
	record := User{
		ID:       user.ID,
		Username: user.Username,
	}

	err := r.db.SaveToTable(ctx, &record)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return fmt.Errorf("username %q: %w", user.Username, core.ErrUsernameTaken)
		}
		return fmt.Errorf("save user: %w", err)
	}

	return nil
}

func (r *TrackerRepository) ListUsers(ctx context.Context) ([]core.User, error) {
	var records []User

	err := r.db.Find(ctx, db.Query{Order: "created_at, id"}, &records)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]core.User, 0, len(records))
	for _, rec := range records {
		users = append(users, core.User{ID: rec.ID, Username: rec.Username})
	}

	return users, nil
}

func (r *TrackerRepository) GetUser(ctx context.Context, userID string) (core.User, error) {
	var record User

	err := r.db.GetOneBy(ctx, "id", userID, &record)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return core.User{}, core.ErrUserNotFound
		}
		return core.User{}, fmt.Errorf("get user by id: %w", err)
	}

	return core.User{ID: record.ID, Username: record.Username}, nil
}

// AppendExercise relies on the users foreign key, so an unknown user is rejected by the insert itself.
func (r *TrackerRepository) AppendExercise(ctx context.Context, userID string, exercise core.Exercise) error {
	record := Exercise{
		UserID:      userID,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date,
	}

	err := r.db.SaveToTable(ctx, &record)
	if err != nil {
		if errors.Is(err, db.ErrReference) {
			return core.ErrUserNotFound
		}
		return fmt.Errorf("save exercise: %w", err)
	}

	return nil
}

// GetLog runs the log query in the database: filters on date, ordered by id, limited last.
func (r *TrackerRepository) GetLog(ctx context.Context, userID string, query core.LogQuery) ([]core.Exercise, error) {
	if _, err := r.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	q := db.Query{
		Where: []db.Clause{{Query: "user_id = ?", Args: []any{userID}}},
		Order: "id",
		Limit: query.Limit,
	}
	if query.From != nil {
		q.Where = append(q.Where, db.Clause{Query: "date >= ?", Args: []any{*query.From}})
	}
	if query.To != nil {
		q.Where = append(q.Where, db.Clause{Query: "date <= ?", Args: []any{*query.To}})
	}

	var records []Exercise
	if err := r.db.Find(ctx, q, &records); err != nil {
		return nil, fmt.Errorf("get exercise log: %w", err)
	}

	log := make([]core.Exercise, 0, len(records))
	for _, rec := range records {
		log = append(log, core.Exercise{
			Description: rec.Description,
			Duration:    rec.Duration,
			Date:        core.CalendarDate(rec.Date),
		})
	}

	return log, nil
}
