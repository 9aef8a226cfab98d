package resolver

import "errors"

var (
	// ErrBaseDocument is returned when the environment document cannot be
	// loaded. Resolution has no fallback for it.
	ErrBaseDocument = errors.New("error loading environment document")
	// ErrDefaultDocument is returned when the default document exists but
	// cannot be decoded.
	ErrDefaultDocument = errors.New("error loading default document")
	// ErrDotenv is returned when an existing dotfile cannot be parsed.
	ErrDotenv = errors.New("error loading dotfile")
	// ErrMerge is returned when the default document cannot be merged.
	ErrMerge = errors.New("error merging default document")
)
