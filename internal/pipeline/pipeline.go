// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mia-platform/pipectl/internal/logger"
)

const (
	loggerName = "pipectl:pipeline"
)

// JobRunner runs a single external job and blocks until it exits.
type JobRunner interface {
	RunJob(ctx context.Context, service string) error
}

// Stage pairs a pipeline stage name with the external service implementing it.
type Stage struct {
	// Name is the pipeline stage identifier. (e.g., "extract")
	Name string
	// Service is the external job implementing the stage.
	Service string
}

// Pipeline executes an ordered list of stages on a JobRunner.
type Pipeline struct {
	runner JobRunner
	stages []Stage
}

func New(runner JobRunner, stages ...Stage) *Pipeline {
	return &Pipeline{
		runner: runner,
		stages: stages,
	}
}

// Run executes the stages strictly in order, each one blocking until the
// external job exits. The first failing stage aborts the run and its error
// is returned wrapped in a StageError; the following stages are never invoked.
func (p *Pipeline) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithName(loggerName)

	runID := uuid.NewString()
	log.Debug("starting pipeline run", "run_id", runID, "stages", len(p.stages))

	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			log.Debug("pipeline cancelled from context", "run_id", runID, "error", err)
			return err
		}

		log.Info("starting stage", "run_id", runID, "stage", stage.Name, "service", stage.Service)
		start := time.Now()
		if err := p.runner.RunJob(ctx, stage.Service); err != nil {
			log.Error("stage failed", "run_id", runID, "stage", stage.Name, "error", err)
			return &StageError{Stage: stage.Name, Err: err}
		}

		log.Info("stage completed", "run_id", runID, "stage", stage.Name, "elapsed", time.Since(start).String())
	}

	return nil
}
