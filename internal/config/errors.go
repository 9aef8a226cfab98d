package config

import "errors"

// Validation errors returned by [Settings.validate] when the merged settings
// cannot be used to locate configuration documents.
var (
	// ErrInvalidBasePath indicates that no base path could be determined.
	ErrInvalidBasePath = errors.New("invalid base path")
	// ErrInvalidConfigDir indicates an empty config directory name.
	ErrInvalidConfigDir = errors.New("invalid config directory")
	// ErrInvalidSeparator indicates a key separator made of whitespace only.
	ErrInvalidSeparator = errors.New("invalid key separator")
	// ErrInvalidEnvironmentName indicates an environment name that would
	// escape the config directory (for example, "../prod" or "a/b").
	ErrInvalidEnvironmentName = errors.New("invalid environment name")
	// ErrInvalidOutputFormat indicates an unsupported -format value.
	ErrInvalidOutputFormat = errors.New("invalid output format")
)
