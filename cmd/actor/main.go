package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-mini-actor/internal/app"
	"github.com/MKhiriev/go-mini-actor/internal/cli"
	"github.com/MKhiriev/go-mini-actor/internal/config"
	"github.com/MKhiriev/go-mini-actor/internal/logger"
	"github.com/MKhiriev/go-mini-actor/internal/processor"
	"github.com/MKhiriev/go-mini-actor/internal/utils"
	"github.com/MKhiriev/go-mini-actor/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const programName = "actor"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the actor with argv and returns the process exit code.
func run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	args := cli.ParseArgs(argv)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if args.Has(cli.FlagHelp, cli.FlagHelpS) {
		cli.PrintUsage(stdout, programName)
		return 0
	}
	if args.Has(cli.FlagVersion, cli.FlagVersionS) {
		fmt.Fprint(stdout, buildInfo.String())
		return 0
	}

	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		bootstrap := logger.NewLogger(logger.Options{Stdout: stdout, Stderr: stderr})
		bootstrap.LogError(fmt.Errorf("error getting configs: %w", err))
		return 1
	}

	log := logger.NewLogger(logger.Options{
		Level:  cfg.App.LogLevel,
		Format: cfg.App.LogFormat,
		Role:   programName,
		RunID:  utils.NewRunIDGenerator().Generate(),
		Stdout: stdout,
		Stderr: stderr,
	})
	log.Debug().
		Str("version", buildInfo.BuildVersion()).
		Str("commit", buildInfo.BuildCommit()).
		Str("settings", cfg.SettingsFilePath).
		Msg("received configs")

	actor := app.NewApp(cfg, processor.New(), log)
	if err := actor.Run(ctx); err != nil {
		return 1
	}

	return 0
}
