// Package config provides the bootstrap settings that steer configuration
// resolution: which environment is being resolved, where documents and the
// dotfile live, how overlay keys are projected onto paths, and whether tests
// may be overridden from the environment.
//
// Settings are assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (config-resolve only)
//
// The main entry points are [GetSettings] for library callers and
// [GetCLIConfig] for the config-resolve binary.
package config
