package core

import (
	"context"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Store persists users and their exercise logs. Implementations return ErrUserNotFound and
// ErrUsernameTaken (possibly wrapped) for the corresponding conditions.
//
//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	CreateUser(ctx context.Context, user User) error
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, userID string) (User, error)
	AppendExercise(ctx context.Context, userID string, exercise Exercise) error
	GetLog(ctx context.Context, userID string, query LogQuery) ([]Exercise, error)
}
