package domain

import "errors"

var (
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrNoActiveSession  = errors.New("no active session")
	ErrNotFound         = errors.New("not found")
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrValidation       = errors.New("validation failed")
)
