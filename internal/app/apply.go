package app

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/markermap/markermap/internal/logger"
	"github.com/markermap/markermap/internal/pipeline"
	"github.com/markermap/markermap/internal/store/file"
)

// runApply executes one mutation pipeline run. A failing outcome returns an
// error so the process exits non-zero and the surrounding automation leaves
// the request open.
func (a *App) runApply(args []string) error {
	fs := pflag.NewFlagSet("apply", pflag.ContinueOnError)
	eventPath := fs.String("event", a.cfg.EventFile, "path to the issue event payload")
	datasetPath := fs.String("dataset", a.cfg.DatasetFile, "path to the marker dataset")
	outcomePath := fs.String("outcome", a.cfg.OutcomeFile, "path the outcome record is written to")
	if err := fs.Parse(args); err != nil {
		return err
	}

	history, client, err := a.connectHistory()
	if err != nil {
		// History is an audit trail; a down redis must not block mutations.
		a.logger.Warn("outcome history unavailable, continuing without it",
			logger.Error(err))
	}
	if client != nil {
		defer func() {
			if err := client.Close(); err != nil {
				a.logger.Warnf("failed to close redis: %v", err)
			}
		}()
	}

	var runnerHistory pipeline.History
	if history != nil {
		runnerHistory = history
	}

	runner := pipeline.NewRunner(a.logger, file.NewStore(*datasetPath), *outcomePath, runnerHistory)
	outcome, err := runner.Run(context.Background(), *eventPath)
	if err != nil {
		return err
	}
	if !outcome.OK {
		return fmt.Errorf("mutation failed: %s", outcome.Message)
	}
	return nil
}
