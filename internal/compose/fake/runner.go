// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package fake provides a compose Runner recording invocations for tests.
package fake

import (
	"context"
	"testing"

	"github.com/mia-platform/pipectl/internal/compose"
)

var _ compose.Runner = &FakeRunner{}

// Invocation records a single call received by the fake runner.
type Invocation struct {
	// Operation is one of "run", "up" or "down".
	Operation string
	// Services holds the service names the operation was invoked with.
	Services []string
}

// FakeRunner records every invocation and can be primed to fail selected jobs.
type FakeRunner struct {
	tb testing.TB

	// JobErrors maps a service name to the error its RunJob call must return.
	JobErrors map[string]error
	// UpError is returned by Up when set.
	UpError error
	// DownError is returned by Down when set.
	DownError error

	Invocations []Invocation
}

// NewFakeRunner returns a FakeRunner where every invocation succeeds.
func NewFakeRunner(tb testing.TB) *FakeRunner {
	tb.Helper()
	return &FakeRunner{tb: tb, JobErrors: map[string]error{}}
}

func (f *FakeRunner) RunJob(_ context.Context, service string) error {
	f.tb.Helper()
	f.Invocations = append(f.Invocations, Invocation{Operation: "run", Services: []string{service}})
	return f.JobErrors[service]
}

func (f *FakeRunner) Up(_ context.Context, services ...string) error {
	f.tb.Helper()
	f.Invocations = append(f.Invocations, Invocation{Operation: "up", Services: services})
	return f.UpError
}

func (f *FakeRunner) Down(_ context.Context) error {
	f.tb.Helper()
	f.Invocations = append(f.Invocations, Invocation{Operation: "down"})
	return f.DownError
}

// RunServices returns the service names passed to RunJob, in call order.
func (f *FakeRunner) RunServices() []string {
	f.tb.Helper()

	services := make([]string, 0, len(f.Invocations))
	for _, invocation := range f.Invocations {
		if invocation.Operation == "run" {
			services = append(services, invocation.Services...)
		}
	}

	return services
}
