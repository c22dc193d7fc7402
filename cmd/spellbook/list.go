// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"spellbook-cli/internal/issue"
	"spellbook-cli/pkg/spellbook"
)

var (
	listAll bool

	// listCmd displays the tasks composed for the current directory.
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List the tasks available in the current directory",
		Long: `List the tasks the composed namespace offers here.

Visibility rules run at listing time: a git module only shows up inside
a git repository, a poetry module only next to a Poetry pyproject, and
so on. Use --all to see every composed task regardless of visibility.`,
		RunE: runList,
	}
)

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "include tasks hidden by visibility rules")
}

func runList(cmd *cobra.Command, args []string) error {
	ns, err := composeNamespace()
	if err != nil {
		rendered, _ := issue.Get(issueIdFor(err)).Render("dark")
		fmt.Fprint(os.Stderr, rendered)
		return err
	}

	entries := ns.Visible()
	if listAll {
		entries = ns.Entries()
	}
	if len(entries) == 0 {
		rendered, _ := issue.Get(issue.NoSpellsFoundId).Render("dark")
		fmt.Fprint(os.Stderr, rendered)
		return fmt.Errorf("no tasks to list")
	}

	fmt.Println(TitleStyle.Render("Available Tasks"))
	fmt.Println()

	var lastModule string
	for _, e := range entries {
		m := e.Module()
		if m.Name() != lastModule {
			if lastModule != "" {
				fmt.Println()
			}
			header := m.Name()
			if src := m.Source(); src != "" {
				header += " (" + src + ")"
			}
			fmt.Println(SubtitleStyle.Render("From " + header + ":"))
			lastModule = m.Name()
		}

		line := "  " + TaskStyle.Render(e.DisplayName)
		if s := e.Task.Summary(); s != "" {
			line += " - " + VerboseStyle.Render(s)
		}
		fmt.Println(line)
	}
	fmt.Println()

	return nil
}

// issueIdFor maps a composition error onto the issue card to render.
func issueIdFor(err error) issue.Id {
	var cfgErr *spellbook.ConfigurationError
	if errors.As(err, &cfgErr) {
		if cfgErr.Pattern != "" {
			return issue.InvalidCastModeId
		}
		return issue.NameCollisionId
	}
	return issue.NoSpellsFoundId
}
