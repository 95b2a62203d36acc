// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package workspace manages the filesystem locations where the pipeline
// stages exchange their intermediate CSV artifacts.
package workspace
