// SPDX-License-Identifier: MPL-2.0

// Package spellbook composes spell modules into a command namespace.
//
// A Spellbook collects module descriptors (builtin registrations plus
// external paths resolved through a Loader), applies a selection policy
// (all / only / except, with shell-style glob patterns matched against
// dotted "module.task" names), applies module prefixes, and produces an
// immutable Namespace.
//
// Failure semantics follow a fix-it-now / route-around split: problems
// that indicate a setup mistake (malformed pattern, unresolvable display
// name collision) abort composition with a ConfigurationError, while a
// single module that fails to load is skipped with a warning so one broken
// module never takes down the rest of the book.
package spellbook
