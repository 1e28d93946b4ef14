package filedepot

import "errors"

var (
	// ErrNotFound is returned when a file record does not exist
	ErrNotFound = errors.New("not found")
	// ErrInternal is returned when an internal error occurs
	ErrInternal = errors.New("internal error")
	// ErrInvalidInput is returned when upload validation fails
	ErrInvalidInput = errors.New("invalid input")
)
