package cli

import (
	"fmt"
	"io"
)

// Flag names understood by the actor.
const (
	FlagInput     = "input"
	FlagInputS    = "i"
	FlagOutput    = "output"
	FlagOutputS   = "o"
	FlagConfig    = "config"
	FlagConfigS   = "c"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
	FlagHelp      = "help"
	FlagHelpS     = "h"
	FlagVersion   = "version"
	FlagVersionS  = "v"
)

// PrintUsage writes the help text for program to w.
func PrintUsage(w io.Writer, program string) {
	fmt.Fprintf(w, `
Create Mini Actor - transforms every item of a JSON input file and writes a JSON report.

Usage:
  %s [options]

Options:
  -i, --input <path>        Input JSON file (default: settings, then data/input.sample.json)
  -o, --output <path>       Output JSON file (default: settings, then data/output.sample.json)
  -c, --config <path>       Settings file (.json, .yaml or .yml)
      --log-level <level>   silent | error | info | debug
      --log-format <format> console | json
  -v, --version             Print build information and exit
  -h, --help                Print this help and exit

Environment:
  ACTOR_DEFAULT_INPUT_PATH, ACTOR_DEFAULT_OUTPUT_PATH, ACTOR_LOG_LEVEL,
  ACTOR_LOG_FORMAT, ACTOR_CONFIG
`, program)
}
