package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidToken       = errors.New("invalid token")
)
