package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SettingsFile is the on-disk layout of a settings file. The same keys are
// used for JSON and YAML; every field is optional.
type SettingsFile struct {
	DefaultInputPath  string `json:"defaultInputPath" yaml:"defaultInputPath"`
	DefaultOutputPath string `json:"defaultOutputPath" yaml:"defaultOutputPath"`
	LogLevel          string `json:"logLevel" yaml:"logLevel"`
	LogFormat         string `json:"logFormat" yaml:"logFormat"`
}

func parseSettingsFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading settings file: %w", err)
	}

	var settings SettingsFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &settings); err != nil {
			return nil, fmt.Errorf("error decoding json settings %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return nil, fmt.Errorf("error decoding yaml settings %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSettingsFile, path)
	}

	return &StructuredConfig{
		App: App{
			InputPath:  settings.DefaultInputPath,
			OutputPath: settings.DefaultOutputPath,
			LogLevel:   settings.LogLevel,
			LogFormat:  settings.LogFormat,
		},
	}, nil
}
