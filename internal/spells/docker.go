// SPDX-License-Identifier: MPL-2.0

package spells

import (
	"spellbook-cli/pkg/spell"
)

// dockerModule wraps container housekeeping. Always listed; docker is a
// machine-wide tool, not a per-project one.
func dockerModule() *spell.Module {
	return spell.NewModule("docker").
		Source("builtin").
		Prefix(true).
		Add(
			spell.NewTask("prune", command("docker", "system", "prune", "--volumes")).
				Summary("Remove unused containers, images and volumes").
				MustBuild(),
			spell.NewTask("ps", command("docker", "ps", "--all", "--format", "table {{.Names}}\t{{.Status}}\t{{.Image}}")).
				Summary("List containers with a compact table").
				MustBuild(),
		).
		MustBuild()
}
