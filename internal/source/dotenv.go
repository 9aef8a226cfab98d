package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DotenvLoader reads KEY=VALUE dotfiles.
type DotenvLoader struct{}

// NewDotenvLoader returns a file-system backed [DotenvLoader].
func NewDotenvLoader() *DotenvLoader {
	return &DotenvLoader{}
}

// Load parses the dotfile at path without touching the process environment.
//
// Returns [ErrDotenvNotFound] when the file does not exist and
// [ErrMalformedDotenv] when the parser rejects it.
func (l *DotenvLoader) Load(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDotenvNotFound, path)
		}
		return nil, fmt.Errorf("error opening dotfile %s: %w", path, err)
	}
	defer f.Close()

	values, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrMalformedDotenv, path, err)
	}

	return values, nil
}
