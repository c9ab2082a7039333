package models

import "errors"

// Storage level errors shared by repositories and services.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)
