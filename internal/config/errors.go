package config

import "errors"

var (
	// ErrInvalidLogFormat indicates a log format other than console or json.
	ErrInvalidLogFormat = errors.New("invalid log format")
	// ErrUnsupportedSettingsFile indicates a settings file extension that is
	// neither JSON nor YAML.
	ErrUnsupportedSettingsFile = errors.New("unsupported settings file type")
)
