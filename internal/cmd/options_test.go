// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/pipectl/internal/compose/fake"
	"github.com/mia-platform/pipectl/internal/config"
)

func TestOptionsValidation(t *testing.T) {
	t.Parallel()

	t.Run("missing runner is rejected", func(t *testing.T) {
		t.Parallel()

		opts := &options{config: config.DefaultPipelineConfig()}
		assert.ErrorIs(t, opts.validate(), errMissingRunner)
	})

	t.Run("complete options are valid", func(t *testing.T) {
		t.Parallel()

		opts := &options{
			config: config.DefaultPipelineConfig(),
			runner: fake.NewFakeRunner(t),
		}
		assert.NoError(t, opts.validate())
	})
}

func TestExecuteStagesServiceMapping(t *testing.T) {
	t.Parallel()

	pipelineConfig := config.DefaultPipelineConfig()
	pipelineConfig.Stages[config.StageExtract] = config.StageConfig{Service: "xml-extractor"}

	runner := fake.NewFakeRunner(t)
	opts := &options{config: pipelineConfig, runner: runner}

	require.NoError(t, opts.executeStages(t.Context(), config.StageOrder...))
	assert.Equal(t, []string{"xml-extractor", "normalize", "load"}, runner.RunServices())
}
