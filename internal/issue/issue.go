// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	NoSpellsFoundId Id = iota + 1
	SpellfileParseErrorId
	TaskNotFoundId
	SettingsLoadFailedId
	InvalidCastModeId
	NameCollisionId
	ScriptExecutionFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // links into the project docs for this issue
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	noSpellsFoundIssue = &Issue{
		id: NoSpellsFoundId,
		mdMsg: `
# No spells found!

The cast produced an empty namespace: no module contributed any task.

## Common causes:
- The cast mode is opt-in and no pattern matched
- All configured spell directories are empty or missing
- Every spell file failed to load (check the warnings above)

## Things you can try:
- List everything composed, ignoring visibility rules:
~~~
$ spellbook list --all
~~~

- Check the mode and selection patterns in your settings file
- Re-run setup to scaffold a starter spell file:
~~~
$ spellbook init
~~~`,
	}

	spellfileParseErrorIssue = &Issue{
		id: SpellfileParseErrorId,
		mdMsg: `
# Failed to parse spell file!

Your spell file contains syntax errors or invalid configuration.

## Common issues:
- Invalid CUE syntax (missing quotes, braces, etc.)
- Unknown field names
- A task missing its required fields (name, script)
- A visible_when rule that is not one of the known rules

## Things you can try:
- Check the error message above for the specific line/column
- Validate the file with the cue command-line tool
- Run with verbose mode for more details:
~~~
$ spellbook --verbose list
~~~

## Known visibility rules:
~~~
always, git-repo, pre-commit, pyproject, poetry, home
~~~`,
	}

	taskNotFoundIssue = &Issue{
		id: TaskNotFoundId,
		mdMsg: `
# Task not found!

The task you named is not in the composed namespace.

## Things you can try:
- List all available tasks:
~~~
$ spellbook list
~~~

- Remember that prefixed modules use dotted names:
~~~
$ spellbook cast pre-commit.install
~~~

- Check for typos; declared underscores become dashes (pre_commit → pre-commit)
- A task excluded by your cast mode is still runnable after
  adjusting the patterns in your settings`,
	}

	settingsLoadFailedIssue = &Issue{
		id: SettingsLoadFailedId,
		mdMsg: `
# Failed to load settings!

The settings file exists but could not be read or decoded.

## Things you can try:
- Check the YAML syntax of the file
- Regenerate it from scratch:
~~~
$ spellbook init --force
~~~

- Environment variables (SPELLBOOK_*) override file values;
  unset any that conflict`,
	}

	invalidCastModeIssue = &Issue{
		id: InvalidCastModeId,
		mdMsg: `
# Invalid cast mode!

The cast mode must be one of: **all**, **opt-in**, **opt-out**.

## Notes:
- opt-in and opt-out both require at least one selection pattern
- Patterns are globs matched against dotted "module.task" names:
~~~yaml
mode: opt-out
spells:
  - "media*"
  - "onedrive*"
~~~`,
	}

	nameCollisionIssue = &Issue{
		id: NameCollisionId,
		mdMsg: `
# Task name collision!

Two modules contribute tasks that end up with the same name and the
collision could not be resolved automatically.

## How names are resolved:
- Prefixed modules own their namespace; a clash inside one is a setup error
- Unprefixed clashes get a module suffix (cleanup → cleanup-media)
- If the suffixed name is also taken, composition stops

## Things you can try:
- Mark one of the modules as prefixed:
~~~cue
prefix: true
~~~

- Rename one of the tasks
- Exclude one of the modules via your cast mode patterns`,
	}

	scriptExecutionFailedIssue = &Issue{
		id: ScriptExecutionFailedId,
		mdMsg: `
# Script execution failed!

The task's script failed to execute properly.

## Common causes:
- Command not found in PATH
- Permission denied
- Syntax error in the script
- The script exited non-zero on purpose

## Things you can try:
- Run with verbose mode for more details:
~~~
$ spellbook --verbose cast <task>
~~~

- Test the script manually in your shell
- Check file permissions and PATH settings`,
	}

	issues = map[Id]*Issue{
		noSpellsFoundIssue.Id():         noSpellsFoundIssue,
		spellfileParseErrorIssue.Id():   spellfileParseErrorIssue,
		taskNotFoundIssue.Id():          taskNotFoundIssue,
		settingsLoadFailedIssue.Id():    settingsLoadFailedIssue,
		invalidCastModeIssue.Id():       invalidCastModeIssue,
		nameCollisionIssue.Id():         nameCollisionIssue,
		scriptExecutionFailedIssue.Id(): scriptExecutionFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
