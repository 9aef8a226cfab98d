// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"slices"
)

const (
	// DefaultEnvironment is used when neither CONFIG_ENV nor APP_ENV is set.
	DefaultEnvironment = "development"
	// TestEnvironment disables the dotfile overlay and, unless
	// ALLOW_TEST_ENV_OVERRIDE is set, the environment overlay.
	TestEnvironment = "test"
	// DefaultConfigDir is the directory under the base path holding documents.
	DefaultConfigDir = "config"
	// DefaultDotenvPath is the dotfile location relative to the base path.
	DefaultDotenvPath = ".env"
	// DefaultDocumentName names the lower-precedence document merged beneath
	// the environment document.
	DefaultDocumentName = "default"
)

// Environment variables read by [Settings]. They steer resolution and are
// never overlaid into the resolved tree.
const (
	EnvConfigEnv         = "CONFIG_ENV"
	EnvAppEnv            = "APP_ENV"
	EnvBasePath          = "CONFIG_BASE_PATH"
	EnvConfigDir         = "CONFIG_DIR"
	EnvDotenvPath        = "ENV_PATH"
	EnvKeyPrefix         = "CONFIG_ENV_PREFIX"
	EnvKeySeparator      = "CONFIG_ENV_SEPARATOR"
	EnvAllowTestOverride = "ALLOW_TEST_ENV_OVERRIDE"
)

var controlVariables = []string{
	EnvConfigEnv,
	EnvAppEnv,
	EnvBasePath,
	EnvConfigDir,
	EnvDotenvPath,
	EnvKeyPrefix,
	EnvKeySeparator,
	EnvAllowTestOverride,
}

// Settings is the bootstrap configuration of the resolver. It is populated by
// merging built-in defaults, environment variables and, for the CLI, flags.
//
// Struct tags:
//   - env — environment variable name (caarlos0/env).
type Settings struct {
	// ConfigEnv selects the environment document and takes precedence over
	// AppEnv.
	// Env: CONFIG_ENV
	ConfigEnv string `env:"CONFIG_ENV"`

	// AppEnv is the general runtime environment selector.
	// Env: APP_ENV
	AppEnv string `env:"APP_ENV"`

	// BasePath is the directory under which the config directory and the
	// dotfile are looked up. Defaults to the working directory.
	// Env: CONFIG_BASE_PATH
	BasePath string `env:"CONFIG_BASE_PATH"`

	// ConfigDir is the name of the directory holding documents.
	// Env: CONFIG_DIR
	ConfigDir string `env:"CONFIG_DIR"`

	// DotenvPath is the dotfile location; relative paths are resolved
	// against BasePath.
	// Env: ENV_PATH
	DotenvPath string `env:"ENV_PATH"`

	// KeyPrefix is stripped from overlay keys before projection.
	// Env: CONFIG_ENV_PREFIX
	KeyPrefix string `env:"CONFIG_ENV_PREFIX"`

	// KeySeparator is replaced with "." in overlay keys before projection,
	// e.g. "__" turns LEVEL1__PROP into LEVEL1.PROP.
	// Env: CONFIG_ENV_SEPARATOR
	KeySeparator string `env:"CONFIG_ENV_SEPARATOR"`

	// AllowTestOverride enables the environment overlay in the test
	// environment when non-empty.
	// Env: ALLOW_TEST_ENV_OVERRIDE
	AllowTestOverride string `env:"ALLOW_TEST_ENV_OVERRIDE"`
}

// EnvironmentName returns CONFIG_ENV, else APP_ENV, else "development".
func (s *Settings) EnvironmentName() string {
	switch {
	case s.ConfigEnv != "":
		return s.ConfigEnv
	case s.AppEnv != "":
		return s.AppEnv
	default:
		return DefaultEnvironment
	}
}

// IsTest reports whether the resolved environment is the reserved test one.
func (s *Settings) IsTest() bool {
	return s.EnvironmentName() == TestEnvironment
}

// TestOverrideAllowed reports whether ALLOW_TEST_ENV_OVERRIDE is set to any
// non-empty value, including "false" and "0".
func (s *Settings) TestOverrideAllowed() bool {
	return s.AllowTestOverride != ""
}

// DotenvEnabled reports whether the dotfile overlay applies.
func (s *Settings) DotenvEnabled() bool {
	return !s.IsTest()
}

// EnvOverlayEnabled reports whether the environment-variable overlay applies.
func (s *Settings) EnvOverlayEnabled() bool {
	return !s.IsTest() || s.TestOverrideAllowed()
}

// ProjectionEnabled reports whether overlay keys are projected through
// KeyPrefix and KeySeparator.
func (s *Settings) ProjectionEnabled() bool {
	return s.KeyPrefix != "" || s.KeySeparator != ""
}

// ConfigPath returns <base path>/<config dir>.
func (s *Settings) ConfigPath() string {
	return filepath.Join(s.BasePath, s.ConfigDir)
}

// DocumentPath returns the extension-less location of the named document.
func (s *Settings) DocumentPath(name string) string {
	return filepath.Join(s.ConfigPath(), name)
}

// DotenvFile returns the dotfile location.
func (s *Settings) DotenvFile() string {
	if filepath.IsAbs(s.DotenvPath) {
		return s.DotenvPath
	}
	return filepath.Join(s.BasePath, s.DotenvPath)
}

// IsControlVariable reports whether name is one of the variables read into
// [Settings].
func IsControlVariable(name string) bool {
	return slices.Contains(controlVariables, name)
}

// GetSettings loads, merges, and validates the resolver settings from the
// built-in defaults and environ (the process environment when nil).
func GetSettings(environ map[string]string) (*Settings, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv(environ).
		build()
}
