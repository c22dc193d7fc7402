// SPDX-License-Identifier: MPL-2.0

package spellfile

import (
	"spellbook-cli/pkg/visibility"
)

// Rule names a visibility predicate in a spell file. Rules are the
// declarative counterpart of pkg/visibility's functions; a file cannot
// ship arbitrary code, so it picks from this fixed set.
type Rule string

const (
	// RuleAlways makes the tasks visible everywhere.
	RuleAlways Rule = "always"
	// RuleGitRepo requires the current dir to be a git checkout.
	RuleGitRepo Rule = "git-repo"
	// RulePreCommit requires a .pre-commit-config.yaml in the current dir.
	RulePreCommit Rule = "pre-commit"
	// RulePyproject requires a pyproject.toml in the current dir.
	RulePyproject Rule = "pyproject"
	// RulePoetry requires a pyproject.toml with a [tool.poetry] section.
	RulePoetry Rule = "poetry"
	// RuleHome requires the current dir to be the user's home dir.
	RuleHome Rule = "home"
)

// Predicate maps the rule to its predicate function. Unknown rules cannot
// occur on schema-validated input; they map to "always" so a stale file
// degrades to visible rather than silently vanishing.
func (r Rule) Predicate() visibility.Predicate {
	switch r {
	case RuleGitRepo:
		return visibility.IsGitRepo
	case RulePreCommit:
		return visibility.HasPreCommitConfig
	case RulePyproject:
		return visibility.HasPyproject
	case RulePoetry:
		return visibility.IsPoetryProject
	case RuleHome:
		return visibility.IsHomeDir
	default:
		return visibility.Always
	}
}

// TaskDef is one task declaration inside a spell file.
type TaskDef struct {
	// Name is the task name.
	Name string `json:"name"`
	// Summary is the one-line description shown in listings.
	Summary string `json:"summary"`
	// Script is the shell script executed by the embedded interpreter.
	Script string `json:"script"`
	// AlwaysVisible makes the task ignore module-level visibility.
	AlwaysVisible bool `json:"always_visible"`
	// VisibleWhen, when set, overrides both AlwaysVisible and the module
	// rule for this task.
	VisibleWhen Rule `json:"visible_when,omitempty"`
}

// Spellfile is a parsed spell file: one module's worth of declarations.
type Spellfile struct {
	// Module is the module name ("pre_commit", "media").
	Module string `json:"module"`
	// Prefix controls whether composed display names carry the module
	// prefix.
	Prefix bool `json:"prefix"`
	// VisibleWhen is the module-level visibility rule.
	VisibleWhen Rule `json:"visible_when"`
	// Tasks are the task declarations in file order.
	Tasks []TaskDef `json:"tasks"`

	// FilePath is where the file was read from. Set by Parse, not part of
	// the document.
	FilePath string `json:"-"`
}
