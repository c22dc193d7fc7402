// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"spellbook-cli/internal/issue"
	"spellbook-cli/internal/runner"
	"spellbook-cli/pkg/spell"
)

// castCmd executes a task from the composed namespace.
var castCmd = &cobra.Command{
	Use:   "cast <task> [args...]",
	Short: "Run a task",
	Long: `Run a task from the composed namespace.

Anything after the task name is passed to the task as positional
arguments. Tasks hidden by visibility rules can still be cast; the rules
only affect listing.`,
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeTaskNames,
	RunE:              runCast,
}

func runCast(cmd *cobra.Command, args []string) error {
	name := args[0]

	ns, err := composeNamespace()
	if err != nil {
		rendered, _ := issue.Get(issueIdFor(err)).Render("dark")
		fmt.Fprint(os.Stderr, rendered)
		return err
	}

	entry, ok := ns.Lookup(name)
	if !ok {
		rendered, _ := issue.Get(issue.TaskNotFoundId).Render("dark")
		fmt.Fprint(os.Stderr, rendered)
		return fmt.Errorf("task %q not found", name)
	}

	inv := &spell.Invocation{
		Args:   args[1:],
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	if err := entry.Task.Handler()(cmd.Context(), inv); err != nil {
		var exitErr *runner.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Code: exitErr.Code, Err: err}
		}
		var execErr *exec.ExitError
		if errors.As(err, &execErr) {
			return &ExitError{Code: execErr.ExitCode(), Err: err}
		}
		rendered, _ := issue.Get(issue.ScriptExecutionFailedId).Render("dark")
		fmt.Fprint(os.Stderr, rendered)
		return fmt.Errorf("task %q: %w", name, err)
	}
	return nil
}

// completeTaskNames offers the composed task names for shell completion.
func completeTaskNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ns, err := composeNamespace()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, e := range ns.Entries() {
		if s := e.Task.Summary(); s != "" {
			completions = append(completions, e.DisplayName+"\t"+s)
		} else {
			completions = append(completions, e.DisplayName)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
