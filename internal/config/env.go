// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the given environment using the caarlos0/env
// library. Struct fields are mapped via their `env` tags defined on
// [Settings].
//
// A nil environ falls back to the process environment.
func parseEnv(cfg any, environ map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: environ})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// ProcessEnvironment returns the current process environment as a map.
func ProcessEnvironment() map[string]string {
	return env.ToMap(os.Environ())
}
