// SPDX-License-Identifier: MPL-2.0

package spells

import (
	"spellbook-cli/pkg/spell"
	"spellbook-cli/pkg/visibility"
)

// poetryModule wraps Poetry dependency management. Visible only in
// directories whose pyproject.toml has a [tool.poetry] section.
func poetryModule() *spell.Module {
	return spell.NewModule("poetry").
		Source("builtin").
		Prefix(true).
		VisibleWhen(visibility.IsPoetryProject).
		Add(
			spell.NewTask("install", command("poetry", "install")).
				Summary("Install project dependencies").
				MustBuild(),
			spell.NewTask("outdated", command("poetry", "show", "--outdated", "--top-level")).
				Summary("List outdated top-level dependencies").
				MustBuild(),
			spell.NewTask("env", command("poetry", "env", "info")).
				Summary("Show the active virtualenv").
				MustBuild(),
		).
		MustBuild()
}
