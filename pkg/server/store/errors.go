package store

import "errors"

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a write violates a uniqueness
	// constraint, so the route layer can map it to 409.
	ErrConflict = errors.New("record conflicts with an existing record")
)
