package services

import "errors"

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("user not authorized")
	ErrNotFound           = errors.New("not found")
)
