package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when an entity can't be stored as given
	ErrInvalidInput = errors.New("invalid input")
)
