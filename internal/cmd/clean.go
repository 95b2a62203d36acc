// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

const (
	cleanCmdShort = "delete the intermediate CSV artifacts"
	cleanCmdLong  = `Delete the contents of the output directories used by the pipeline
	stages to exchange their intermediate CSV artifacts. Missing or already
	empty directories are skipped, so the command can be repeated safely.`
)

// CleanCmd returns the Cobra command that empties the output directories.
func CleanCmd() *cobra.Command {
	flags := &flags{}
	cmd := &cobra.Command{
		Use:   "clean",
		Short: heredoc.Doc(cleanCmdShort),
		Long:  heredoc.Doc(cleanCmdLong),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := flags.toOptions(cmd)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.validate(); err != nil {
				return handleError(cmd, err)
			}

			if err := opts.executeClean(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}
