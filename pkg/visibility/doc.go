// SPDX-License-Identifier: MPL-2.0

// Package visibility provides the predicates that decide whether a spell
// module or an individual task should show up in the composed namespace.
//
// Predicates are zero-argument functions evaluated against the process's
// current working directory. They are evaluated fresh on every namespace
// listing and never cached, because the answer depends on where the user
// happens to be standing when they run the CLI.
package visibility
