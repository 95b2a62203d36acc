// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

const (
	dbUpCmdShort = "start the database dependency"
	dbUpCmdLong  = `Start the Postgres service of the compose project in detached mode.
	Starting an already running service is a no-op. The database lifecycle is
	independent from the pipeline stages: the load job does not start it on
	its own.`

	dbUpCmdExample = `# Start the database and wait until it accepts connections
	pipectl db-up --wait --wait-timeout 30s`

	dbDownCmdShort = "stop the database dependency"
	dbDownCmdLong  = `Stop and remove the running services of the compose project.
	Stopping a project with nothing running is a no-op.`
)

// DBUpCmd returns the Cobra command that starts the database service detached.
func DBUpCmd() *cobra.Command {
	flags := &databaseFlags{}
	cmd := &cobra.Command{
		Use:     "db-up",
		Short:   heredoc.Doc(dbUpCmdShort),
		Long:    heredoc.Doc(dbUpCmdLong),
		Example: heredoc.Doc(dbUpCmdExample),

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

			if err := opts.executeDatabaseUp(cmd.Context(), flags.wait, flags.waitTimeout); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}

// DBDownCmd returns the Cobra command that stops the database service.
func DBDownCmd() *cobra.Command {
	flags := &flags{}
	cmd := &cobra.Command{
		Use:   "db-down",
		Short: heredoc.Doc(dbDownCmdShort),
		Long:  heredoc.Doc(dbDownCmdLong),

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

			if err := opts.executeDatabaseDown(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}
