// SPDX-License-Identifier: MPL-2.0

package spells

import (
	"context"
	"strings"

	"spellbook-cli/pkg/spell"
	"spellbook-cli/pkg/visibility"
)

// gitModule wraps everyday git maintenance. Visible only inside a
// checkout.
func gitModule() *spell.Module {
	return spell.NewModule("git").
		Source("builtin").
		VisibleWhen(visibility.IsGitRepo).
		Add(
			spell.NewTask("switch_default", gitSwitchDefault).
				Summary("Switch to the default branch and pull").
				MustBuild(),
			spell.NewTask("tidy", command("git", "remote", "prune", "origin")).
				Summary("Prune remote-tracking branches that no longer exist").
				MustBuild(),
			spell.NewTask("history", command("git", "log", "--oneline", "--graph", "--decorate", "-20")).
				Summary("Show a compact graph of recent history").
				MustBuild(),
		).
		MustBuild()
}

// gitSwitchDefault resolves origin's default branch, switches to it and
// pulls. Falls back to main when the remote HEAD is not set locally.
func gitSwitchDefault(ctx context.Context, inv *spell.Invocation) error {
	branch := "main"
	var out strings.Builder
	probe := *inv
	probe.Stdout = &out
	if err := run(ctx, &probe, "git", "symbolic-ref", "--short", "refs/remotes/origin/HEAD"); err == nil {
		if ref := strings.TrimSpace(out.String()); ref != "" {
			branch = strings.TrimPrefix(ref, "origin/")
		}
	}

	if err := run(ctx, inv, "git", "switch", branch); err != nil {
		return err
	}
	return run(ctx, inv, "git", "pull", "--prune")
}
