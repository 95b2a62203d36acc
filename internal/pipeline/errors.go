// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pipeline

import "fmt"

// StageError signals that an external job invoked for a stage exited with a failure.
type StageError struct {
	// Stage is the name of the failed stage.
	Stage string
	// Err is the error returned by the job runner.
	Err error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %q failed: %s", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
