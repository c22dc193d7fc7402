// SPDX-License-Identifier: MPL-2.0

// Package config loads and persists the spellbook settings file: the cast
// mode (all / opt-in / opt-out), the selection patterns, and the extra
// directories to pull user spell files from. The file lives in the
// platform config directory and is what `spellbook init` writes.
package config
