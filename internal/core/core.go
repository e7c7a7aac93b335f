package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Tracker registers users, records their exercises and answers log queries on top of a Store.
type Tracker struct {
	logs         *zap.SugaredLogger
	store        Store
	now          func() time.Time
	storeTimeout time.Duration
}

// NewTracker is a constructor function for the Tracker type. A non-positive storeTimeout disables
// the per-call deadline.
func NewTracker(logger *zap.SugaredLogger, store Store, now func() time.Time, storeTimeout time.Duration) *Tracker {
	return &Tracker{
		logs:         logger,
		store:        store,
		now:          now,
		storeTimeout: storeTimeout,
	}
}

// RegisterUser creates a user with a freshly generated id.
func (t *Tracker) RegisterUser(ctx context.Context, username string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return User{}, fmt.Errorf("%w: username is required", ErrValidation)
	}

	user := User{
		ID:       uuid.NewString(),
		Username: username,
	}

	ctx, cancel := t.storeContext(ctx)
	defer cancel()

	if err := t.store.CreateUser(ctx, user); err != nil {
		return User{}, fmt.Errorf("create user: %w", storeError(err))
	}

	t.logs.Infow("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// ListUsers returns every registered user in registration order.
func (t *Tracker) ListUsers(ctx context.Context) ([]User, error) {
	ctx, cancel := t.storeContext(ctx)
	defer cancel()

	users, err := t.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", storeError(err))
	}

	if users == nil {
		users = []User{}
	}
	return users, nil
}

// AddExercise appends an exercise to the user's log. A missing date defaults to today.
func (t *Tracker) AddExercise(ctx context.Context, userID string, msg ExerciseMessage) (ExerciseRecord, error) {
	description := strings.TrimSpace(msg.Description)
	if description == "" {
		return ExerciseRecord{}, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if msg.Duration <= 0 {
		return ExerciseRecord{}, fmt.Errorf("%w: duration must be a positive integer", ErrValidation)
	}

	ctx, cancel := t.storeContext(ctx)
	defer cancel()

	user, err := t.store.GetUser(ctx, userID)
	if err != nil {
		return ExerciseRecord{}, fmt.Errorf("get user: %w", storeError(err))
	}

	date := CalendarDate(t.now())
	if msg.Date != nil {
		date = CalendarDate(*msg.Date)
	}

	exercise := Exercise{
		Description: description,
		Duration:    msg.Duration,
		Date:        date,
	}

	if err := t.store.AppendExercise(ctx, user.ID, exercise); err != nil {
		return ExerciseRecord{}, fmt.Errorf("append exercise: %w", storeError(err))
	}

	t.logs.Infow("exercise recorded",
		"user_id", user.ID,
		"duration", exercise.Duration,
		"date", FormatDate(exercise.Date))

	return ExerciseRecord{
		UserID:      user.ID,
		Username:    user.Username,
		Date:        FormatDate(exercise.Date),
		Duration:    exercise.Duration,
		Description: exercise.Description,
	}, nil
}

// GetLog returns the user's log narrowed by query.
func (t *Tracker) GetLog(ctx context.Context, userID string, query LogQuery) (UserLog, error) {
	ctx, cancel := t.storeContext(ctx)
	defer cancel()

	user, err := t.store.GetUser(ctx, userID)
	if err != nil {
		return UserLog{}, fmt.Errorf("get user: %w", storeError(err))
	}

	exercises, err := t.store.GetLog(ctx, user.ID, query)
	if err != nil {
		return UserLog{}, fmt.Errorf("get log: %w", storeError(err))
	}

	entries := make([]LogEntry, 0, len(exercises))
	for _, ex := range exercises {
		entries = append(entries, LogEntry{
			Description: ex.Description,
			Duration:    ex.Duration,
			Date:        FormatDate(ex.Date),
		})
	}

	return UserLog{
		UserID:   user.ID,
		Username: user.Username,
		Count:    len(entries),
		Log:      entries,
	}, nil
}

func (t *Tracker) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if t.storeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, t.storeTimeout)
}

func storeError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, ErrStoreUnavailable) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return err
}
