// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mia-platform/pipectl/internal/compose"
	"github.com/mia-platform/pipectl/internal/config"
)

var (
	errMissingRunner = errors.New("no compose runner configured")

	// newRunner is a function that returns the compose runner used to invoke
	// the external jobs. It can be overridden for testing purposes.
	newRunner = compose.NewRunner
)

// handleError will do custom print error handling based on the type of error received.
// it will return nil if the command must return 0 exit code, otherwise it will return
// the original error.
func handleError(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, config.ErrParsing), errors.Is(err, config.ErrEnvVariablesNotValid):
		cmd.PrintErrln(err)
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return err
	default:
		cmd.PrintErrln(err)
		return err
	}
}
