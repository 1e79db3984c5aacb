package services

import "errors"

var (
	ErrInvalidID          = errors.New("invalid id")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user doesn't exist")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = errors.New("passwords don't match")
	ErrMissingFields      = errors.New("email and password are required")
)
