// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for spellbook.
//
// This package implements the Cobra command hierarchy: listing the
// composed namespace, casting tasks, and first-time setup. Output
// styling and the settings lifecycle live here; the composition
// semantics live in pkg/spellbook.
package cmd
