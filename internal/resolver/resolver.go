// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"dario.cat/mergo"
	"github.com/MKhiriev/go-layered-config/internal/config"
	"github.com/MKhiriev/go-layered-config/internal/logger"
	"github.com/MKhiriev/go-layered-config/models"
)

// Resolver builds the configuration tree.
type Resolver interface {
	// Resolve runs the whole pipeline and returns a fresh tree on every call.
	Resolve() (models.Tree, error)
}

type overlay int

const (
	overlayDotenv overlay = iota
	overlayEnvironment
)

func (o overlay) String() string {
	if o == overlayDotenv {
		return "dotfile"
	}
	return "environment"
}

type resolver struct {
	settings  *config.Settings
	environ   map[string]string
	documents DocumentLoader
	dotenv    DotenvLoader

	logger *logger.Logger
}

// NewResolver creates a Resolver for settings. environ is the process
// environment used both as the last overlay and for the live-variable check
// of dotfile keys.
func NewResolver(settings *config.Settings, environ map[string]string, documents DocumentLoader, dotenv DotenvLoader, logger *logger.Logger) Resolver {
	return &resolver{
		settings:  settings,
		environ:   environ,
		documents: documents,
		dotenv:    dotenv,
		logger:    logger.WithStr("environment", settings.EnvironmentName()),
	}
}

func (r *resolver) Resolve() (models.Tree, error) {
	envName := r.settings.EnvironmentName()

	tree, err := r.loadDocuments(envName)
	if err != nil {
		return nil, err
	}

	if r.settings.DotenvEnabled() {
		if err = r.applyDotenv(tree); err != nil {
			return nil, err
		}
	} else {
		r.logger.Debug().Msg("dotfile overlay disabled in test environment")
	}

	if r.settings.EnvOverlayEnabled() {
		r.applyEnvironment(tree)
	} else {
		r.logger.Debug().Msg("environment overlay disabled in test environment")
	}

	tree[models.EnvironmentNameKey] = envName

	return tree, nil
}

// loadDocuments loads the environment document and merges the default
// document beneath it: environment values win at every shared path, nested
// nodes are merged recursively and slices are replaced, not appended.
func (r *resolver) loadDocuments(envName string) (models.Tree, error) {
	basePath := r.settings.DocumentPath(envName)
	base, err := r.documents.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrBaseDocument, envName, err)
	}
	r.logger.Debug().Str("path", basePath).Int("keys", len(base)).Msg("environment document loaded")

	tree := models.Tree(base)
	if tree == nil {
		tree = models.NewTree()
	}

	defaults, err := r.loadDefaults()
	if err != nil {
		return nil, err
	}
	if len(defaults) == 0 {
		return tree, nil
	}

	if err = mergo.Merge(&tree, models.Tree(defaults), mergo.WithoutDereference); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMerge, err)
	}

	return tree, nil
}

func (r *resolver) loadDefaults() (map[string]any, error) {
	path := r.settings.DocumentPath(config.DefaultDocumentName)
	defaults, err := r.documents.Load(path)

	switch {
	case err == nil:
		r.logger.Debug().Str("path", path).Int("keys", len(defaults)).Msg("default document loaded")
		return defaults, nil
	case errors.Is(err, fs.ErrNotExist):
		r.logger.Debug().Str("path", path).Msg("no default document")
		return nil, nil
	case errors.Is(err, fs.ErrPermission):
		r.logger.Warn().Err(err).Str("path", path).Msg("default document unreadable, ignoring")
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %w", ErrDefaultDocument, err)
	}
}

func (r *resolver) applyDotenv(tree models.Tree) error {
	path := r.settings.DotenvFile()
	values, err := r.dotenv.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Debug().Str("path", path).Msg("no dotfile")
			return nil
		}
		return fmt.Errorf("%w: %w", ErrDotenv, err)
	}

	for _, key := range sortedKeys(values) {
		r.assign(tree, key, values[key], overlayDotenv)
	}
	r.logger.Debug().Str("path", path).Int("keys", len(values)).Msg("dotfile applied")

	return nil
}

func (r *resolver) applyEnvironment(tree models.Tree) {
	applied := 0
	for _, key := range sortedKeys(r.environ) {
		if config.IsControlVariable(key) {
			continue
		}
		r.assign(tree, key, r.environ[key], overlayEnvironment)
		applied++
	}
	r.logger.Debug().Int("keys", applied).Msg("environment applied")
}

func (r *resolver) assign(tree models.Tree, key, value string, from overlay) {
	tree.SetSegments(r.project(tree, key, from), models.ParseScalar(value))
}

// project maps an overlay key onto the segments it is written to.
func (r *resolver) project(tree models.Tree, raw string, from overlay) []string {
	if !r.settings.ProjectionEnabled() {
		return models.SplitPath(raw)
	}

	projected := raw
	if r.settings.KeyPrefix != "" {
		projected = strings.TrimPrefix(projected, r.settings.KeyPrefix)
	}
	if r.settings.KeySeparator != "" {
		projected = strings.ReplaceAll(projected, r.settings.KeySeparator, models.PathSeparator)
	}

	if segments, ok := tree.FindFold(projected); ok {
		if from == overlayEnvironment {
			return segments
		}
		if _, live := r.environ[raw]; !live {
			return segments
		}
	}

	r.logger.Trace().Str("key", raw).Stringer("overlay", from).Msg("key kept verbatim")
	return []string{raw}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
