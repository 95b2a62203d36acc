// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package compose

import "context"

// Runner describes the operations needed to drive the compose project.
type Runner interface {
	// RunJob runs the named service as a one-shot job and blocks until it exits.
	// The error carries the exit status of the underlying process.
	RunJob(ctx context.Context, service string) error

	// Up starts the named services detached, leaving them running in background.
	Up(ctx context.Context, services ...string) error

	// Down stops and removes the running services of the project.
	Down(ctx context.Context) error
}
