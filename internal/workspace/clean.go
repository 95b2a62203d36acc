// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package workspace

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mia-platform/pipectl/internal/logger"
)

const (
	loggerName = "pipectl:workspace"
)

// Clean removes every entry found inside the passed directories, leaving the
// directories themselves in place. A directory that does not exist is skipped
// without error, so repeated invocations are idempotent; any other filesystem
// failure is reported.
func Clean(ctx context.Context, dirs ...string) error {
	log := logger.FromContext(ctx).WithName(loggerName)

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debug("output directory does not exist, skipping", "dir", dir)
				continue
			}

			return fmt.Errorf("reading output directory %q: %w", dir, err)
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if err := os.RemoveAll(path); err != nil {
				return fmt.Errorf("removing %q: %w", path, err)
			}
		}

		log.Info("output directory cleaned", "dir", dir, "removed", len(entries))
	}

	return nil
}
