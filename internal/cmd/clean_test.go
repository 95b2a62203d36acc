// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/pipectl/internal/compose/fake"
)

func TestCleanCommand(t *testing.T) {
	setupDirs := func(t *testing.T) (string, string) {
		t.Helper()

		baseDir := t.TempDir()
		csvDir := filepath.Join(baseDir, "csv")
		normDir := filepath.Join(baseDir, "norm_csv")
		require.NoError(t, os.MkdirAll(csvDir, os.ModePerm))
		require.NoError(t, os.MkdirAll(normDir, os.ModePerm))
		require.NoError(t, os.WriteFile(filepath.Join(csvDir, "buses.csv"), []byte("id\n"), os.ModePerm))

		configPath := writePipelineFile(t, fmt.Sprintf("outputDirs:\n- %s\n- %s\n", csvDir, normDir))
		return csvDir, configPath
	}

	t.Run("empties the configured output directories", func(t *testing.T) {
		runner := fake.NewFakeRunner(t)
		installFakeRunner(t, runner)

		csvDir, configPath := setupDirs(t)
		require.NoError(t, executeCommand(t, CleanCmd(), "--"+pipelineFileFlagName, configPath))

		entries, err := os.ReadDir(csvDir)
		require.NoError(t, err)
		assert.Empty(t, entries)
		// no compose invocation is involved in cleaning
		assert.Empty(t, runner.Invocations)
	})

	t.Run("repeated invocations succeed", func(t *testing.T) {
		runner := fake.NewFakeRunner(t)
		installFakeRunner(t, runner)

		_, configPath := setupDirs(t)
		require.NoError(t, executeCommand(t, CleanCmd(), "--"+pipelineFileFlagName, configPath))
		require.NoError(t, executeCommand(t, CleanCmd(), "--"+pipelineFileFlagName, configPath))
	})

	t.Run("missing directories are a no-op", func(t *testing.T) {
		runner := fake.NewFakeRunner(t)
		installFakeRunner(t, runner)

		configPath := writePipelineFile(t, fmt.Sprintf("outputDirs:\n- %s\n", filepath.Join(t.TempDir(), "missing")))
		require.NoError(t, executeCommand(t, CleanCmd(), "--"+pipelineFileFlagName, configPath))
	})
}
