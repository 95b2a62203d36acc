// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"time"

	"github.com/mia-platform/pipectl/internal/compose"
	"github.com/mia-platform/pipectl/internal/config"
	"github.com/mia-platform/pipectl/internal/database"
	"github.com/mia-platform/pipectl/internal/pipeline"
	"github.com/mia-platform/pipectl/internal/workspace"
)

// options configures the external job invocations performed by the commands.
type options struct {
	environment *config.Environment
	config      *config.PipelineConfig
	runner      compose.Runner
}

// validate checks the configured values and reports invalid setups.
func (o *options) validate() error {
	if o.runner == nil {
		return errMissingRunner
	}

	return nil
}

// executeStages runs the named stages strictly in order, stopping at the
// first failure. Each stage blocks until its external job exits.
func (o *options) executeStages(ctx context.Context, stageNames ...string) error {
	stages := make([]pipeline.Stage, 0, len(stageNames))
	for _, name := range stageNames {
		stages = append(stages, pipeline.Stage{
			Name:    name,
			Service: o.config.ServiceForStage(name),
		})
	}

	return pipeline.New(o.runner, stages...).Run(ctx)
}

// executeDatabaseUp starts the database service detached. When wait is set it
// also blocks until the database answers a ping or waitTimeout elapses.
// Starting an already running service is a no-op for compose.
func (o *options) executeDatabaseUp(ctx context.Context, wait bool, waitTimeout time.Duration) error {
	if err := o.runner.Up(ctx, o.config.Database.Service); err != nil {
		return err
	}

	if !wait {
		return nil
	}

	waitCtx, cancel := context.WithTimeout(ctx, waitTimeout)
	defer cancel()

	return database.WaitReady(waitCtx, o.environment.DatabaseURL)
}

// executeDatabaseDown stops and removes the services of the compose project.
// Compose treats an already stopped project as a no-op.
func (o *options) executeDatabaseDown(ctx context.Context) error {
	return o.runner.Down(ctx)
}

// executeClean empties the configured output directories.
func (o *options) executeClean(ctx context.Context) error {
	return workspace.Clean(ctx, o.config.OutputDirs...)
}
