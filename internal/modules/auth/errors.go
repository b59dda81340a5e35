package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidDisplayName = errors.New("display name must be 1-50 characters")
	ErrUsernameTaken      = errors.New("username already exists")
)
