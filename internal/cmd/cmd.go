// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/mia-platform/pipectl/internal/config"
)

const (
	extractCmdShort = "run the extraction job"
	extractCmdLong  = `Run the extraction job.
	The job reads the raw substation XML and writes the extracted entities as
	CSV files inside the first output directory. The command exits with the
	same code as the underlying job.`

	normalizeCmdShort = "run the normalization job"
	normalizeCmdLong  = `Run the normalization job.
	The job reads the extracted CSV files and writes their normalized form
	inside the second output directory. It expects the extraction job to have
	run first, but the ordering is not enforced by this command. The command
	exits with the same code as the underlying job.`

	loadCmdShort = "run the load job"
	loadCmdLong  = `Run the load job.
	The job reads the normalized CSV files and loads them into the Postgres
	database. The database service is not started automatically, use the
	db-up command beforehand. The command exits with the same code as the
	underlying job.`

	runCmdShort = "run the whole pipeline"
	runCmdLong  = `Run the extract, normalize and load jobs strictly in this order.
	The first failing stage aborts the run and the remaining stages are never
	invoked; the failure of that stage is surfaced as the command result.`

	runCmdExample = `# Run the whole pipeline with a custom compose project name
	PIPECTL_PROJECT_NAME=poc-xml pipectl run`
)

// ExtractCmd returns the Cobra command that runs the extraction job.
func ExtractCmd() *cobra.Command {
	return stageCmd(config.StageExtract, extractCmdShort, extractCmdLong)
}

// NormalizeCmd returns the Cobra command that runs the normalization job.
func NormalizeCmd() *cobra.Command {
	return stageCmd(config.StageNormalize, normalizeCmdShort, normalizeCmdLong)
}

// LoadCmd returns the Cobra command that runs the load job.
func LoadCmd() *cobra.Command {
	return stageCmd(config.StageLoad, loadCmdShort, loadCmdLong)
}

// RunCmd returns the Cobra command that runs all the pipeline stages in order.
func RunCmd() *cobra.Command {
	flags := &flags{}
	cmd := &cobra.Command{
		Use:     "run",
		Short:   heredoc.Doc(runCmdShort),
		Long:    heredoc.Doc(runCmdLong),
		Example: heredoc.Doc(runCmdExample),

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

			if err := opts.executeStages(cmd.Context(), config.StageOrder...); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}

// stageCmd returns a Cobra command running the single named stage.
func stageCmd(stageName, short, long string) *cobra.Command {
	flags := &flags{}
	cmd := &cobra.Command{
		Use:   stageName,
		Short: heredoc.Doc(short),
		Long:  heredoc.Doc(long),

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

			if err := opts.executeStages(cmd.Context(), stageName); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}
