// SPDX-License-Identifier: MPL-2.0

package spells

import (
	"spellbook-cli/pkg/spell"
	"spellbook-cli/pkg/visibility"
)

// preCommitModule wraps pre-commit hook management. The module is
// prefixed, so tasks compose as "pre-commit.install" etc., and visible
// only where a .pre-commit-config.yaml exists.
func preCommitModule() *spell.Module {
	return spell.NewModule("pre_commit").
		Source("builtin").
		Prefix(true).
		VisibleWhen(visibility.HasPreCommitConfig).
		Add(
			spell.NewTask("install", command("pre-commit", "install", "--install-hooks")).
				Summary("Install the pre-commit hooks").
				MustBuild(),
			spell.NewTask("uninstall", command("pre-commit", "uninstall")).
				Summary("Remove the pre-commit hooks").
				MustBuild(),
			spell.NewTask("run", command("pre-commit", "run", "--all-files")).
				Summary("Run all hooks against all files").
				MustBuild(),
			spell.NewTask("autoupdate", command("pre-commit", "autoupdate")).
				Summary("Bump hook versions in the config").
				MustBuild(),
		).
		MustBuild()
}
