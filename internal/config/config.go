// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/go-mini-actor/internal/cli"

// Built-in defaults used when no other source provides a value.
const (
	DefaultInputPath    = "data/input.sample.json"
	DefaultOutputPath   = "data/output.sample.json"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
	DefaultSettingsPath = "config/settings.json"
)

// StructuredConfig is the top-level configuration container for the actor.
// It is built once at startup and handed to the components that need it;
// nothing reads configuration from package-level state.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the run settings: where to read and write, and how loudly.
	App App `envPrefix:"ACTOR_"`

	// SettingsFilePath is the optional path to a JSON or YAML settings file.
	// Populated via the ACTOR_CONFIG environment variable or the -c / --config
	// flag. When empty, DefaultSettingsPath is used if that file exists.
	SettingsFilePath string `env:"ACTOR_CONFIG"`
}

// App holds the settings that drive a single run.
type App struct {
	// InputPath is the JSON file whose items are processed.
	// Env: ACTOR_DEFAULT_INPUT_PATH
	InputPath string `env:"DEFAULT_INPUT_PATH"`

	// OutputPath is the JSON report written at the end of the run. Missing
	// parent directories are created.
	// Env: ACTOR_DEFAULT_OUTPUT_PATH
	OutputPath string `env:"DEFAULT_OUTPUT_PATH"`

	// LogLevel is one of silent|error|info|debug. Unknown values are
	// treated as info by the logger.
	// Env: ACTOR_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFormat is console or json.
	// Env: ACTOR_LOG_FORMAT
	LogFormat string `env:"LOG_FORMAT"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. args are the already scanned command-line arguments.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args cli.Args) (*StructuredConfig, error) {
	return newConfigBuilder().
		withArgs(args).
		withDotEnv().
		withEnv().
		withSettingsFile().
		withDefaults().
		build()
}
