package config

import "github.com/MKhiriev/go-mini-actor/internal/cli"

// parseArgs maps the scanned command-line arguments onto a
// [StructuredConfig]. Flags given without a value are ignored here.
//
// Flags:
//
//	-i/--input       input file path
//	-o/--output      output file path
//	-c/--config      settings file path
//	--log-level      silent|error|info|debug
//	--log-format     console|json
func parseArgs(args cli.Args) *StructuredConfig {
	inputPath, _ := args.Lookup(cli.FlagInput, cli.FlagInputS)
	outputPath, _ := args.Lookup(cli.FlagOutput, cli.FlagOutputS)
	settingsPath, _ := args.Lookup(cli.FlagConfig, cli.FlagConfigS)
	logLevel, _ := args.Lookup(cli.FlagLogLevel)
	logFormat, _ := args.Lookup(cli.FlagLogFormat)

	return &StructuredConfig{
		App: App{
			InputPath:  inputPath,
			OutputPath: outputPath,
			LogLevel:   logLevel,
			LogFormat:  logFormat,
		},
		SettingsFilePath: settingsPath,
	}
}
