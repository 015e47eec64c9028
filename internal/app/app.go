package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-mini-actor/internal/config"
	"github.com/MKhiriev/go-mini-actor/internal/input"
	"github.com/MKhiriev/go-mini-actor/internal/logger"
	"github.com/MKhiriev/go-mini-actor/internal/output"
	"github.com/MKhiriev/go-mini-actor/internal/processor"
	"github.com/MKhiriev/go-mini-actor/models"
)

// App holds everything a run needs. It is built once per process.
type App struct {
	cfg       config.App
	processor processor.Processor
	log       *logger.Logger

	executable func() (string, error)
}

// NewApp wires an App from the merged configuration.
func NewApp(cfg *config.StructuredConfig, proc processor.Processor, log *logger.Logger) *App {
	return &App{
		cfg:        cfg.App,
		processor:  proc,
		log:        log,
		executable: os.Executable,
	}
}

// Run executes one batch.
//
// A failure to load the input or to write the report is logged and
// returned; nothing is written when loading fails. Failures of single items
// are logged, recorded in their output record with a nil result, and do not
// stop the batch. A run whose ctx is cancelled while items are processed
// returns the context error without writing the report.
func (a *App) Run(ctx context.Context) error {
	ctx = a.log.WithContext(ctx)

	a.log.Info().Msg(MsgStartingUp)
	if a.log.DebugEnabled() {
		a.log.Debug().Msgf(MsgRunningAt, a.runtimeLocation())
	}
	a.log.Info().Msgf(MsgUsingInput, a.cfg.InputPath)
	a.log.Info().Msgf(MsgUsingOutput, a.cfg.OutputPath)

	items, err := input.Load(a.cfg.InputPath)
	if err != nil {
		a.log.LogError(err)
		return fmt.Errorf("error loading input: %w", err)
	}

	if len(items) == 0 {
		a.log.Info().Msg(MsgNoItems)
		return a.write([]models.ProcessedRecord{})
	}

	records := a.Process(ctx, items)
	if err := ctx.Err(); err != nil {
		err = fmt.Errorf("run interrupted, report not written: %w", err)
		a.log.LogError(err)
		return err
	}

	if err := a.write(records); err != nil {
		return err
	}
	a.log.Info().Msgf(MsgComplete, len(records))

	return nil
}

// Process runs every item through the processor in input order and returns
// exactly one record per item. It stops before the next item once ctx is
// cancelled, so the result is then shorter than items.
func (a *App) Process(ctx context.Context, items []models.Item) []models.ProcessedRecord {
	records := make([]models.ProcessedRecord, 0, len(items))

	for index, item := range items {
		if ctx.Err() != nil {
			break
		}

		res, err := processor.SafeProcess(ctx, a.processor, item, index)
		if err != nil {
			itemErr := &ItemError{Index: index, Err: err}
			a.log.LogError(itemErr)
			records = append(records, models.NewProcessedRecord(item, nil, itemErr.Error()))
			continue
		}

		value := res.Value
		records = append(records, models.NewProcessedRecord(item, &value, res.Log))
	}

	return records
}

func (a *App) write(records []models.ProcessedRecord) error {
	written, err := output.Write(a.cfg.OutputPath, records)
	if err != nil {
		a.log.LogError(err)
		return fmt.Errorf("error writing output: %w", err)
	}

	a.log.Info().Msgf(MsgOutputWritten, written)
	return nil
}

func (a *App) runtimeLocation() string {
	exe, err := a.executable()
	if err != nil {
		return os.Args[0]
	}
	if abs, err := filepath.Abs(exe); err == nil {
		return abs
	}
	return exe
}
