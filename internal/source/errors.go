package source

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrDocumentNotFound is returned when none of the candidate files of a
	// document exist. It matches fs.ErrNotExist.
	ErrDocumentNotFound = fmt.Errorf("document not found: %w", fs.ErrNotExist)
	// ErrDotenvNotFound is returned when the dotfile does not exist. It
	// matches fs.ErrNotExist.
	ErrDotenvNotFound = fmt.Errorf("dotfile not found: %w", fs.ErrNotExist)
	// ErrMalformedDocument is returned when a document exists but cannot be
	// decoded into a key-value mapping.
	ErrMalformedDocument = errors.New("malformed document")
	// ErrMalformedDotenv is returned when the dotfile parser rejects the file.
	ErrMalformedDotenv = errors.New("malformed dotfile")
)
