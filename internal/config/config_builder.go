package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-mini-actor/internal/cli"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error

	dotEnvPaths         []string
	defaultSettingsPath string
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs:             make([]*StructuredConfig, 0, 4),
		dotEnvPaths:         []string{".env"},
		defaultSettingsPath: DefaultSettingsPath,
	}
}

// build merges the collected configs. mergo only fills zero fields of the
// destination, so the config appended first has the highest priority.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withArgs(args cli.Args) *configBuilder {
	b.configs = append(b.configs, parseArgs(args))
	return b
}

func (b *configBuilder) withDotEnv() *configBuilder {
	if err := loadDotEnv(b.dotEnvPaths...); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withSettingsFile loads the settings file named by the highest-priority
// source. An explicitly named file must exist; the implicit default is
// skipped when absent.
func (b *configBuilder) withSettingsFile() *configBuilder {
	var settingsPath string
	for _, cfg := range b.configs {
		if cfg.SettingsFilePath != "" {
			settingsPath = cfg.SettingsFilePath
			break
		}
	}

	if settingsPath == "" {
		if b.defaultSettingsPath == "" {
			return b
		}
		if _, err := os.Stat(b.defaultSettingsPath); err != nil {
			return b
		}
		settingsPath = b.defaultSettingsPath
	}

	settingsCfg, err := parseSettingsFile(settingsPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, settingsCfg)

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			InputPath:  DefaultInputPath,
			OutputPath: DefaultOutputPath,
			LogLevel:   DefaultLogLevel,
			LogFormat:  DefaultLogFormat,
		},
	})
	return b
}
