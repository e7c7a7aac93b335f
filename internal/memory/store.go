package memory

import (
	"context"
	"exercisetracker/internal/core"
	"fmt"
	"sync"
)

type userRecord struct {
	user core.User
	log  []core.Exercise
}

// Store keeps users and their logs in process memory.
type Store struct {
	mu        sync.RWMutex
	users     map[string]*userRecord
	usernames map[string]string
	order     []string
}

func NewStore() *Store {
	return &Store{
		users:     make(map[string]*userRecord),
		usernames: make(map[string]string),
	}
}

func (s *Store) CreateUser(ctx context.Context, user core.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.usernames[user.Username]; ok {
		return fmt.Errorf("username %q: %w", user.Username, core.ErrUsernameTaken)
	}
	if _, ok := s.users[user.ID]; ok {
		return fmt.Errorf("user id %q already exists", user.ID)
	}

	s.users[user.ID] = &userRecord{user: user}
	s.usernames[user.Username] = user.ID
	s.order = append(s.order, user.ID)

	return nil
}

func (s *Store) ListUsers(ctx context.Context) ([]core.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]core.User, 0, len(s.order))
	for _, id := range s.order {
		users = append(users, s.users[id].user)
	}

	return users, nil
}

func (s *Store) GetUser(ctx context.Context, userID string) (core.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.users[userID]
	if !ok {
		return core.User{}, core.ErrUserNotFound
	}

	return rec.user, nil
}

func (s *Store) AppendExercise(ctx context.Context, userID string, exercise core.Exercise) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[userID]
	if !ok {
		return core.ErrUserNotFound
	}

	rec.log = append(rec.log, exercise)
	return nil
}

// GetLog returns a copy of the user's log narrowed by query.
func (s *Store) GetLog(ctx context.Context, userID string, query core.LogQuery) ([]core.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.users[userID]
	if !ok {
		return nil, core.ErrUserNotFound
	}

	return query.Apply(rec.log), nil
}
