// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePipelineFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultPipelineConfig(t *testing.T) {
	t.Parallel()

	config := DefaultPipelineConfig()
	assert.Equal(t, []string{"output/csv", "output/norm_csv"}, config.OutputDirs)
	assert.Equal(t, "postgres", config.Database.Service)
	for _, name := range StageOrder {
		assert.Equal(t, name, config.ServiceForStage(name))
	}
}

func TestNewPipelineConfigFromPath(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		content        string
		expectedError  error
		expectedConfig func(t *testing.T, config *PipelineConfig)
	}{
		"empty stages fall back to defaults": {
			content: "database:\n  service: db\n",
			expectedConfig: func(t *testing.T, config *PipelineConfig) {
				t.Helper()
				assert.Equal(t, "db", config.Database.Service)
				assert.Equal(t, "extract", config.ServiceForStage(StageExtract))
				assert.Equal(t, []string{"output/csv", "output/norm_csv"}, config.OutputDirs)
			},
		},
		"stage service override": {
			content: "stages:\n  load:\n    service: loader\n",
			expectedConfig: func(t *testing.T, config *PipelineConfig) {
				t.Helper()
				assert.Equal(t, "loader", config.ServiceForStage(StageLoad))
				assert.Equal(t, "extract", config.ServiceForStage(StageExtract))
			},
		},
		"output directories override": {
			content: "outputDirs:\n- data/raw\n- data/norm\n",
			expectedConfig: func(t *testing.T, config *PipelineConfig) {
				t.Helper()
				assert.Equal(t, []string{"data/raw", "data/norm"}, config.OutputDirs)
			},
		},
		"unknown stage name": {
			content:       "stages:\n  transform:\n    service: transform\n",
			expectedError: ErrParsing,
		},
		"unknown field": {
			content:       "stages: {}\nvolumes: []\n",
			expectedError: ErrParsing,
		},
		"invalid yaml": {
			content:       "\tstages",
			expectedError: ErrParsing,
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			path := writePipelineFile(t, test.content)
			config, err := NewPipelineConfigFromPath(path)
			if test.expectedError != nil {
				assert.ErrorIs(t, err, test.expectedError)
				return
			}

			require.NoError(t, err)
			test.expectedConfig(t, config)
		})
	}
}

func TestNewPipelineConfigFromMissingPath(t *testing.T) {
	t.Parallel()

	_, err := NewPipelineConfigFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
