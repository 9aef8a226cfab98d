// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"slices"
	"strings"
)

// validate checks that the merged [Settings] can be used to locate documents.
func (s *Settings) validate() error {
	if s.BasePath == "" {
		return ErrInvalidBasePath
	}

	if strings.TrimSpace(s.ConfigDir) == "" {
		return ErrInvalidConfigDir
	}

	if s.KeySeparator != "" && strings.TrimSpace(s.KeySeparator) == "" {
		return ErrInvalidSeparator
	}

	name := s.EnvironmentName()
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return ErrInvalidEnvironmentName
	}

	return nil
}

func (cfg *CLIConfig) validate() error {
	if !slices.Contains(OutputFormats, cfg.Format) {
		return ErrInvalidOutputFormat
	}

	return nil
}
