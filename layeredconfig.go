// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package layeredconfig resolves the configuration of a process once at
// startup from up to four layers, lowest precedence first:
//
//  1. <base>/config/default.{json,yaml,yml} (optional)
//  2. <base>/config/<environment>.{json,yaml,yml} (required)
//  3. the <base>/.env dotfile (optional, ignored when the environment is "test")
//  4. the process environment (ignored for "test" unless
//     ALLOW_TEST_ENV_OVERRIDE is set)
//
// The environment is CONFIG_ENV, else APP_ENV, else "development". The base
// path is CONFIG_BASE_PATH, else the working directory.
//
// Typical use:
//
//	cfg, err := layeredconfig.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//	if cfg.Boolean("features.signup") {
//		...
//	}
//
// The returned [Tree] is owned by the caller; resolve it once and pass it
// down instead of resolving per use.
package layeredconfig

import (
	"fmt"

	"github.com/MKhiriev/go-layered-config/internal/config"
	"github.com/MKhiriev/go-layered-config/internal/logger"
	"github.com/MKhiriev/go-layered-config/internal/resolver"
	"github.com/MKhiriev/go-layered-config/internal/source"
	"github.com/MKhiriev/go-layered-config/models"
	"github.com/rs/zerolog"
)

// Tree is the resolved configuration.
type Tree = models.Tree

type options struct {
	environ map[string]string
	logger  *logger.Logger
}

// Option customises [Load].
type Option func(*options)

// WithEnvironment replaces the process environment, both for the variables
// steering resolution and for the environment overlay.
func WithEnvironment(environ map[string]string) Option {
	return func(o *options) {
		o.environ = environ
	}
}

// WithLogger makes resolution log which sources were applied.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger.Wrap(l)
	}
}

// Load resolves the configuration tree.
func Load(opts ...Option) (Tree, error) {
	o := &options{logger: logger.Nop()}
	for _, opt := range opts {
		opt(o)
	}
	if o.environ == nil {
		o.environ = config.ProcessEnvironment()
	}

	settings, err := config.GetSettings(o.environ)
	if err != nil {
		return nil, fmt.Errorf("error getting resolver settings: %w", err)
	}

	return resolver.NewResolver(settings, o.environ, source.NewDocumentLoader(), source.NewDotenvLoader(), o.logger).Resolve()
}

// LoadFrom resolves the configuration tree against environ instead of the
// process environment. It is shorthand for Load(WithEnvironment(environ)).
func LoadFrom(environ map[string]string, opts ...Option) (Tree, error) {
	return Load(append(opts, WithEnvironment(environ))...)
}
