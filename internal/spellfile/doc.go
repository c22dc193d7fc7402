// SPDX-License-Identifier: MPL-2.0

// Package spellfile parses user-authored spell files: CUE documents that
// declare a task module (name, prefix flag, visibility rule) and its
// script-backed tasks. Files are validated against an embedded schema
// before being decoded, so malformed input fails with a path-qualified
// error instead of a half-decoded module.
package spellfile
