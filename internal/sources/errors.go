package sources

import "errors"

var (
	// ErrNotFound indicates the requested source document does not exist.
	ErrNotFound = errors.New("source document not found")
	// ErrEmptyName indicates an empty document name was provided.
	ErrEmptyName = errors.New("document name must not be empty")
	// ErrInvalidName indicates the document name contains a path traversal segment.
	ErrInvalidName = errors.New("document name contains invalid path segment")
	// ErrNotDirectory indicates the configured input path is not a directory.
	ErrNotDirectory = errors.New("input path is not a directory")
)
