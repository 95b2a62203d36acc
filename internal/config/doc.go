// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package config loads the runner configuration from the environment and
// from an optional pipeline file that maps stages to compose services.
package config
