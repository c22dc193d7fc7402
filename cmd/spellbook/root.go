// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"spellbook-cli/internal/config"
	"spellbook-cli/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom settings file
	cfgFile string

	// settings holds the loaded configuration for all subcommands.
	settings *config.Settings

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "spellbook",
		Short: "A composable collection of reusable tasks",
		Long: TitleStyle.Render("spellbook") + SubtitleStyle.Render(" - A composable collection of reusable tasks") + `

spellbook gathers small maintenance tasks (spells) from builtin modules
and from your own CUE spell files, composes them into one namespace, and
runs them. Modules appear and disappear based on the directory you are
in: git tasks in git repos, poetry tasks next to a Poetry pyproject, and
so on.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'spellbook init' to write your settings and a starter spell file
  2. Run 'spellbook list' to see the tasks available here
  3. Run 'spellbook cast <task>' to execute one

` + SubtitleStyle.Render("Examples:") + `
  spellbook list                  List tasks visible in this directory
  spellbook cast tidy             Run the 'tidy' task
  spellbook cast pre-commit.run   Run a task from a prefixed module
  spellbook init --mode opt-out   Choose which spells to exclude`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default is $XDG_CONFIG_HOME/spellbook/config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(castCmd)
	rootCmd.AddCommand(initCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads the settings file and ENV variables if set.
func initRootConfig() {
	if cfgFile != "" {
		config.SetSettingsPathOverride(cfgFile)
	}

	s, err := config.Load()
	if err != nil {
		rendered, _ := issue.Get(issue.SettingsLoadFailedId).Render("dark")
		fmt.Fprint(os.Stderr, rendered)
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		s = config.Default()
	}
	settings = s

	// Apply verbose from settings if not set via flag
	if settings.Verbose {
		verbose = true
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
