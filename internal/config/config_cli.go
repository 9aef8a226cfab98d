package config

import "fmt"

// Output formats supported by config-resolve.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatFlat = "flat"
)

// OutputFormats lists the accepted -format values.
var OutputFormats = []string{FormatJSON, FormatYAML, FormatFlat}

// CLIConfig is the configuration of the config-resolve binary.
type CLIConfig struct {
	// Settings steer resolution; flags override environment variables.
	Settings *Settings
	// Format selects how the resolved tree is printed.
	Format string
}

// GetCLIConfig builds and validates the config-resolve configuration from
// the built-in defaults, environ and the command-line args.
func GetCLIConfig(environ map[string]string, args []string) (*CLIConfig, error) {
	b := newConfigBuilder().
		withDefaults().
		withEnv(environ).
		withFlags(args)

	settings, err := b.build()
	if err != nil {
		return nil, fmt.Errorf("error get settings: %w", err)
	}

	cliCfg := &CLIConfig{
		Settings: settings,
		Format:   b.format,
	}

	return cliCfg, cliCfg.validate()
}
