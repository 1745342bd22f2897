package domain

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProjectNotFound    = errors.New("project not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidTimeRange   = errors.New("end time before start time")
)
