// SPDX-License-Identifier: MPL-2.0

// Package tui provides the small interactive prompts the CLI needs: a
// multi-select picker for choosing spells during setup and a yes/no
// confirmation. Both are thin wrappers over huh forms.
package tui
