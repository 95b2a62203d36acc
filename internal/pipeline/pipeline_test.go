// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/pipectl/internal/compose/fake"
)

var testStages = []Stage{
	{Name: "extract", Service: "extract"},
	{Name: "normalize", Service: "normalize"},
	{Name: "load", Service: "load"},
}

func TestPipelineRun(t *testing.T) {
	t.Parallel()

	jobErr := errors.New("exit status 1")

	testCases := map[string]struct {
		jobErrors        map[string]error
		expectedServices []string
		expectedStage    string
	}{
		"all stages succeed in order": {
			expectedServices: []string{"extract", "normalize", "load"},
		},
		"extract failure stops the run before normalize": {
			jobErrors:        map[string]error{"extract": jobErr},
			expectedServices: []string{"extract"},
			expectedStage:    "extract",
		},
		"normalize failure stops the run before load": {
			jobErrors:        map[string]error{"normalize": jobErr},
			expectedServices: []string{"extract", "normalize"},
			expectedStage:    "normalize",
		},
		"load failure is surfaced": {
			jobErrors:        map[string]error{"load": jobErr},
			expectedServices: []string{"extract", "normalize", "load"},
			expectedStage:    "load",
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			runner := fake.NewFakeRunner(t)
			for service, err := range test.jobErrors {
				runner.JobErrors[service] = err
			}

			err := New(runner, testStages...).Run(t.Context())
			if test.expectedStage == "" {
				require.NoError(t, err)
			} else {
				stageErr := new(StageError)
				require.ErrorAs(t, err, &stageErr)
				assert.Equal(t, test.expectedStage, stageErr.Stage)
				assert.ErrorIs(t, err, jobErr)
			}

			assert.Equal(t, test.expectedServices, runner.RunServices())
		})
	}
}

func TestPipelineRunCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	runner := fake.NewFakeRunner(t)
	err := New(runner, testStages...).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, runner.RunServices())
}

func TestStageError(t *testing.T) {
	t.Parallel()

	wrapped := errors.New("exit status 2")
	err := &StageError{Stage: "normalize", Err: wrapped}
	assert.Equal(t, `stage "normalize" failed: exit status 2`, err.Error())
	assert.ErrorIs(t, err, wrapped)
}
