package config

import (
	"flag"
	"fmt"
	"strings"
)

// ParseFlags parses the config-resolve flags from args (without the program
// name) and returns the settings they override plus the output format.
//
// Flags:
//
//	-env environment name (overrides CONFIG_ENV and APP_ENV)
//	-base-path directory holding the config directory and the dotfile
//	-config-dir config directory name
//	-env-path dotfile path
//	-prefix key prefix stripped from overlay keys
//	-separator separator converted to "." in overlay keys
//	-allow-test-override apply environment variables in the test environment
//	-format output format: json, yaml or flat
func ParseFlags(args []string) (*Settings, string, error) {
	var (
		envName           string
		basePath          string
		configDir         string
		dotenvPath        string
		keyPrefix         string
		keySeparator      string
		allowTestOverride bool
		format            string
	)

	fs := flag.NewFlagSet("config-resolve", flag.ContinueOnError)
	fs.StringVar(&envName, "env", "", "Environment name")
	fs.StringVar(&basePath, "base-path", "", "Base path (defaults to the working directory)")
	fs.StringVar(&configDir, "config-dir", "", "Config directory name")
	fs.StringVar(&dotenvPath, "env-path", "", "Dotfile path")
	fs.StringVar(&keyPrefix, "prefix", "", "Prefix stripped from overlay keys")
	fs.StringVar(&keySeparator, "separator", "", "Separator converted to '.' in overlay keys")
	fs.BoolVar(&allowTestOverride, "allow-test-override", false, "Apply environment variables in the test environment")
	fs.StringVar(&format, "format", FormatJSON, "Output format: "+strings.Join(OutputFormats, ", "))

	if err := fs.Parse(args); err != nil {
		return nil, "", fmt.Errorf("error parsing flags: %w", err)
	}

	settings := &Settings{
		ConfigEnv:    envName,
		BasePath:     basePath,
		ConfigDir:    configDir,
		DotenvPath:   dotenvPath,
		KeyPrefix:    keyPrefix,
		KeySeparator: keySeparator,
	}
	if allowTestOverride {
		settings.AllowTestOverride = "true"
	}

	return settings, format, nil
}
