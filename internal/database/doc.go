// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package database probes the readiness of the Postgres dependency.
package database
