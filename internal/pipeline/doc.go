// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package pipeline provides the core building blocks to run the ETL stages.
// A pipeline is an ordered list of stages executed strictly in sequence
// against an external job runner.
package pipeline
