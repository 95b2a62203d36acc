// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mia-platform/pipectl/internal/config"
)

const (
	pipelineFileFlagName  = "pipeline-file"
	pipelineFileFlagShort = "f"
	pipelineFileFlagUsage = "Path to a YAML file overriding the stage to service mappings and the output directories"

	waitFlagName  = "wait"
	waitFlagUsage = "After starting the database, block until it accepts connections"

	waitTimeoutFlagName  = "wait-timeout"
	waitTimeoutFlagUsage = "Maximum time to wait for the database to become ready, used together with --" + waitFlagName
	defaultWaitTimeout   = 60 * time.Second
)

// flags collects the CLI options shared by all the runner commands.
type flags struct {
	pipelineFile string
}

// addFlags registers the CLI flags on cmd.
func (f *flags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.pipelineFile, pipelineFileFlagName, pipelineFileFlagShort, "", pipelineFileFlagUsage)
}

// toOptions builds an options instance from the parsed flags and the environment.
func (f *flags) toOptions(cmd *cobra.Command) (*options, error) {
	envVars, err := config.LoadEnvironment()
	if err != nil {
		return nil, err
	}

	pipelineConfig := config.DefaultPipelineConfig()
	if f.pipelineFile != "" {
		pipelineConfig, err = config.NewPipelineConfigFromPath(f.pipelineFile)
		if err != nil {
			return nil, err
		}
	}

	return &options{
		environment: envVars,
		config:      pipelineConfig,
		runner:      newRunner(envVars.ComposeFile, envVars.ProjectName, cmd.OutOrStdout(), cmd.ErrOrStderr()),
	}, nil
}

// databaseFlags collects the CLI options of the db-up command.
type databaseFlags struct {
	flags

	wait        bool
	waitTimeout time.Duration
}

// addFlags registers the CLI flags on cmd.
func (f *databaseFlags) addFlags(cmd *cobra.Command) {
	f.flags.addFlags(cmd)
	cmd.Flags().BoolVar(&f.wait, waitFlagName, false, waitFlagUsage)
	cmd.Flags().DurationVar(&f.waitTimeout, waitTimeoutFlagName, defaultWaitTimeout, waitTimeoutFlagUsage)
}
