package store

import "errors"

// Common store errors.
var (
	// ErrLoad is returned when an ontology file cannot be read or parsed.
	ErrLoad = errors.New("ontology load failed")

	// ErrUnsupportedFormat is returned when no decoder exists for a
	// file's extension.
	ErrUnsupportedFormat = errors.New("unsupported ontology format")
)
