// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package compose

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/mia-platform/pipectl/internal/logger"
)

const (
	loggerName = "pipectl:compose"

	dockerBinary     = "docker"
	composeSubcmd    = "compose"
	fileFlagName     = "--file"
	projectFlagName  = "--project-name"
	removeFlagName   = "--rm"
	detachedFlagName = "--detach"
)

// Make sure that execRunner is a Runner.
var _ Runner = &execRunner{}

// execRunner drives a compose project by spawning the docker command line.
type execRunner struct {
	composeFile string
	projectName string

	stdout io.Writer
	stderr io.Writer
}

// NewRunner returns a Runner targeting the compose project described by
// composeFile. projectName can be empty to use the compose default. The
// spawned processes write directly to stdout and stderr so the job output
// stays visible to the caller.
func NewRunner(composeFile, projectName string, stdout, stderr io.Writer) Runner {
	return &execRunner{
		composeFile: composeFile,
		projectName: projectName,
		stdout:      stdout,
		stderr:      stderr,
	}
}

func (r *execRunner) RunJob(ctx context.Context, service string) error {
	return r.command(ctx, "run", removeFlagName, service)
}

func (r *execRunner) Up(ctx context.Context, services ...string) error {
	args := append([]string{"up", detachedFlagName}, services...)
	return r.command(ctx, args...)
}

func (r *execRunner) Down(ctx context.Context) error {
	return r.command(ctx, "down")
}

// command builds and runs a docker compose invocation, blocking until the
// process exits. The returned error is the raw exec error so callers can
// recover the exit code of the job.
func (r *execRunner) command(ctx context.Context, args ...string) error {
	composeArgs := r.composeArgs(args...)

	log := logger.FromContext(ctx).WithName(loggerName)
	log.Debug("invoking compose", "args", composeArgs)

	cmd := exec.CommandContext(ctx, dockerBinary, composeArgs...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	return cmd.Run()
}

// composeArgs builds the full compose argument list for the docker binary.
func (r *execRunner) composeArgs(args ...string) []string {
	composeArgs := []string{composeSubcmd, fileFlagName, r.composeFile}
	if r.projectName != "" {
		composeArgs = append(composeArgs, projectFlagName, r.projectName)
	}

	return append(composeArgs, args...)
}
