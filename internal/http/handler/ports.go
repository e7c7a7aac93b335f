package handler

import (
	"context"
	"exercisetracker/internal/core"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ExerciseService . ExerciseService
type ExerciseService interface {
	RegisterUser(ctx context.Context, username string) (core.User, error)
	ListUsers(ctx context.Context) ([]core.User, error)
	AddExercise(ctx context.Context, userID string, msg core.ExerciseMessage) (core.ExerciseRecord, error)
	GetLog(ctx context.Context, userID string, query core.LogQuery) (core.UserLog, error)
}

//counterfeiter:generate -o fake -fake-name RequestDecoder . RequestDecoder
type RequestDecoder interface {
	DecodePayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name Recorder . Recorder
type Recorder interface {
	UserRegistered()
	ExerciseRecorded()
	RequestFailed(code string)
}
