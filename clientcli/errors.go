package clientcli

import "errors"

var (
	// ErrConfigRequired is returned when New is called without a config.
	ErrConfigRequired = errors.New("config required")
	// ErrNotFound is returned when the server reports a missing file.
	ErrNotFound = errors.New("file not found")
	// ErrEmptyPath is returned when no local path is given for an upload.
	ErrEmptyPath = errors.New("local path cannot be empty")
)
