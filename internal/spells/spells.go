// SPDX-License-Identifier: MPL-2.0

// Package spells holds the builtin spell modules: thin wrappers around
// third-party command-line tools, registered with the composer as
// descriptors. Each module declares its own visibility so it only shows
// up in directories where the wrapped tool makes sense.
//
// These are deliberately shallow; anything with actual logic belongs in
// its own package.
package spells

import (
	"context"
	"os/exec"

	"spellbook-cli/pkg/spell"
)

// Builtin returns descriptors for every builtin spell module, in stable
// order.
func Builtin() []spell.ModuleDescriptor {
	return []spell.ModuleDescriptor{
		spell.Describe(gitModule()),
		spell.Describe(preCommitModule()),
		spell.Describe(poetryModule()),
		spell.Describe(dockerModule()),
		spell.Describe(mediaModule()),
		spell.Describe(onedriveModule()),
	}
}

// run shells out to an external tool with the invocation's I/O streams.
func run(ctx context.Context, inv *spell.Invocation, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = inv.Stdin
	cmd.Stdout = inv.Stdout
	cmd.Stderr = inv.Stderr
	return cmd.Run()
}

// command builds a handler that runs a fixed tool invocation, appending
// the user's extra arguments.
func command(name string, args ...string) spell.Handler {
	return func(ctx context.Context, inv *spell.Invocation) error {
		return run(ctx, inv, name, append(args, inv.Args...)...)
	}
}
