// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package compose invokes the external jobs and the database dependency
// through the Docker Compose command line.
package compose
