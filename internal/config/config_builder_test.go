package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs fails
// validation because no base path is known.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidBasePath)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterConfigsOverride verifies that non-zero fields of later
// configs override earlier ones while zero fields keep earlier values.
func TestBuild_LaterConfigsOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&Settings{BasePath: "/srv/app", ConfigDir: "config", AppEnv: "production"},
		&Settings{ConfigDir: "settings"},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/srv/app", cfg.BasePath)
	assert.Equal(t, "settings", cfg.ConfigDir)
	assert.Equal(t, "production", cfg.AppEnv)
}

func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  error
	}{
		{
			name:     "valid",
			settings: Settings{BasePath: "/srv/app", ConfigDir: "config"},
		},
		{
			name:     "blank config dir",
			settings: Settings{BasePath: "/srv/app", ConfigDir: "  "},
			wantErr:  ErrInvalidConfigDir,
		},
		{
			name:     "whitespace separator",
			settings: Settings{BasePath: "/srv/app", ConfigDir: "config", KeySeparator: " "},
			wantErr:  ErrInvalidSeparator,
		},
		{
			name:     "underscore separator",
			settings: Settings{BasePath: "/srv/app", ConfigDir: "config", KeySeparator: "__"},
		},
		{
			name:     "environment escaping config dir",
			settings: Settings{BasePath: "/srv/app", ConfigDir: "config", ConfigEnv: "../secrets"},
			wantErr:  ErrInvalidEnvironmentName,
		},
		{
			name:     "dot dot environment",
			settings: Settings{BasePath: "/srv/app", ConfigDir: "config", AppEnv: ".."},
			wantErr:  ErrInvalidEnvironmentName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			settings := tt.settings
			b.configs = append(b.configs, &settings)

			cfg, err := b.build()
			if tt.wantErr != nil {
				assert.Nil(t, cfg)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.settings, *cfg)
		})
	}
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_UsesWorkingDirectory verifies the built-in defaults.
func TestWithDefaults_UsesWorkingDirectory(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	b := newConfigBuilder()
	assert.Same(t, b, b.withDefaults())
	require.Len(t, b.configs, 1)
	assert.Equal(t, &Settings{
		BasePath:   wd,
		ConfigDir:  DefaultConfigDir,
		DotenvPath: DefaultDotenvPath,
	}, b.configs[0])
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv(map[string]string{}))
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv(map[string]string{"APP_ENV": "production", "ENV_PATH": "tmp/.test-env"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "production", b.configs[0].AppEnv)
	assert.Equal(t, "tmp/.test-env", b.configs[0].DotenvPath)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_RecordsFormat verifies that the output format is kept on the
// builder and the flag settings are appended.
func TestWithFlags_RecordsFormat(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-format", "flat", "-env", "staging"}))

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, FormatFlat, b.format)
	assert.Equal(t, "staging", b.configs[0].ConfigEnv)
}

// TestWithFlags_SetsErrorOnBadFlag verifies that flag errors are collected.
func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-nope"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── GetSettings / GetCLIConfig ────────────────────────────────────────────────

// TestGetSettings_EnvOverridesDefaults verifies the defaults → env order.
func TestGetSettings_EnvOverridesDefaults(t *testing.T) {
	base := t.TempDir()

	cfg, err := GetSettings(map[string]string{
		"CONFIG_BASE_PATH": base,
		"APP_ENV":          "production",
	})

	require.NoError(t, err)
	assert.Equal(t, base, cfg.BasePath)
	assert.Equal(t, DefaultConfigDir, cfg.ConfigDir)
	assert.Equal(t, DefaultDotenvPath, cfg.DotenvPath)
	assert.Equal(t, "production", cfg.EnvironmentName())
}

// TestGetCLIConfig_FlagsOverrideEnv verifies the env → flags order.
func TestGetCLIConfig_FlagsOverrideEnv(t *testing.T) {
	cfg, err := GetCLIConfig(
		map[string]string{"CONFIG_ENV": "production", "CONFIG_DIR": "settings"},
		[]string{"-env", "staging", "-format", "yaml"},
	)

	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.Settings.EnvironmentName())
	assert.Equal(t, "settings", cfg.Settings.ConfigDir)
	assert.Equal(t, FormatYAML, cfg.Format)
}

// TestGetCLIConfig_InvalidFormat verifies output format validation.
func TestGetCLIConfig_InvalidFormat(t *testing.T) {
	_, err := GetCLIConfig(map[string]string{}, []string{"-format", "xml"})
	assert.ErrorIs(t, err, ErrInvalidOutputFormat)
}
