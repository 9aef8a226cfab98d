package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*Settings
	format  string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Settings, 0, 3),
	}
}

func (b *configBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	settings := new(Settings)
	for _, cfg := range b.configs {
		if err := mergo.Merge(settings, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := settings.validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	wd, err := os.Getwd()
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error getting working directory: %w", err))
		return b
	}

	b.configs = append(b.configs, &Settings{
		BasePath:   wd,
		ConfigDir:  DefaultConfigDir,
		DotenvPath: DefaultDotenvPath,
	})
	return b
}

func (b *configBuilder) withEnv(environ map[string]string) *configBuilder {
	envCfg := &Settings{}
	if err := parseEnv(envCfg, environ); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, format, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.format = format
	b.configs = append(b.configs, flags)
	return b
}
