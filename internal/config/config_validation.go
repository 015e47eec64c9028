// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the final merged [StructuredConfig] before it is used at
// startup and normalizes case-insensitive enum values.
//
// Unknown log levels are accepted; the logger maps them to info.
func (cfg *StructuredConfig) validate() error {
	cfg.App.LogLevel = strings.ToLower(strings.TrimSpace(cfg.App.LogLevel))
	cfg.App.LogFormat = strings.ToLower(strings.TrimSpace(cfg.App.LogFormat))

	switch cfg.App.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: %q (want console or json)", ErrInvalidLogFormat, cfg.App.LogFormat)
	}

	return nil
}
