// Package pipeline runs one mutation request end to end: load the event
// and dataset, apply the mutation, re-validate, and commit all-or-nothing.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/markermap/markermap/internal/event"
	"github.com/markermap/markermap/internal/logger"
	"github.com/markermap/markermap/internal/mutate"
	"github.com/markermap/markermap/internal/store/file"
	"github.com/markermap/markermap/internal/validate"
)

// History records outcomes for later inspection. Nil disables recording.
type History interface {
	Record(ctx context.Context, request int, outcome event.Outcome) error
}

// Runner owns the single mutable collection for the duration of one run.
type Runner struct {
	log         logger.Logger
	store       *file.Store
	engine      *mutate.Engine
	history     History
	outcomePath string
	stdout      io.Writer
}

// NewRunner wires a runner. history may be nil.
func NewRunner(log logger.Logger, store *file.Store, outcomePath string, history History) *Runner {
	return &Runner{
		log:         log,
		store:       store,
		engine:      mutate.NewEngine(log),
		history:     history,
		outcomePath: outcomePath,
		stdout:      os.Stdout,
	}
}

// Run executes one request. The returned error is fatal (missing payload,
// unreadable dataset, failed commit); every operation-level failure is
// converted into a failing outcome instead. The dataset file is only
// rewritten when the mutation succeeded and the mutated collection passed
// schema validation.
func (r *Runner) Run(ctx context.Context, eventPath string) (event.Outcome, error) {
	payload, err := event.LoadPayload(eventPath)
	if err != nil {
		return event.Outcome{}, err
	}
	col, err := r.store.Load()
	if err != nil {
		return event.Outcome{}, err
	}

	r.log.Info("processing request",
		logger.Int("request", payload.Issue.Number),
		logger.String("dataset", r.store.Path()),
		logger.Int("markers", len(col.Features)))

	outcome := r.engine.Apply(mutate.Request{
		Number: payload.Issue.Number,
		Body:   payload.Issue.Body,
		Labels: payload.LabelNames(),
	}, col)

	if outcome.OK {
		// The validator is the authoritative final gate: even a mutation
		// the engine accepted is discarded if the result fails schema.
		if violations := r.revalidate(col); len(violations) > 0 {
			for _, v := range violations {
				r.log.Error("post-mutation schema violation", logger.String("violation", v))
			}
			outcome = event.Failure("mutation produced an invalid dataset: %s", violations[0])
		}
	}

	if outcome.OK {
		if err := r.store.Save(col); err != nil {
			return event.Outcome{}, err
		}
		r.log.Info("dataset persisted",
			logger.String("dataset", r.store.Path()),
			logger.Int("markers", len(col.Features)))
	}

	if err := r.report(ctx, payload.Issue.Number, outcome); err != nil {
		return outcome, err
	}
	return outcome, nil
}

// revalidate runs the schema validator against the mutated collection via a
// JSON round trip, the same view the persisted file would present.
func (r *Runner) revalidate(col any) []string {
	data, err := json.Marshal(col)
	if err != nil {
		return []string{fmt.Sprintf("failed to encode mutated dataset: %v", err)}
	}
	return validate.Bytes(data)
}

// report writes the outcome record, emits it on stdout, and records it in
// the history when one is configured. History failures are logged, not
// fatal: the commit already happened.
func (r *Runner) report(ctx context.Context, request int, outcome event.Outcome) error {
	if err := outcome.WriteFile(r.outcomePath); err != nil {
		return err
	}
	fmt.Fprintln(r.stdout, outcome.JSON())

	r.log.Info("outcome",
		logger.Bool("ok", outcome.OK),
		logger.String("message", outcome.Message))

	if r.history != nil {
		if err := r.history.Record(ctx, request, outcome); err != nil {
			r.log.Warn("failed to record outcome history", logger.Error(err))
		}
	}
	return nil
}
