package core

import "errors"

var (
	ErrValidation       error = errors.New("validation failed")
	ErrUserNotFound     error = errors.New("user not found")
	ErrUsernameTaken    error = errors.New("username already taken")
	ErrStoreUnavailable error = errors.New("store unavailable")
)
