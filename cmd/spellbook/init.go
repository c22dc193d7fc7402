// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"spellbook-cli/internal/config"
	"spellbook-cli/internal/spells"
	"spellbook-cli/internal/tui"
	"spellbook-cli/pkg/spellbook"
)

var (
	initMode   string
	initSpells []string
	initDirs   []string
	initForce  bool

	// initCmd writes the settings file and scaffolds a starter spell file.
	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Write the settings file and a starter spell file",
		Long: `Write the spellbook settings file and scaffold a starter spell file.

The cast mode decides what ends up in your namespace:
  all      every spell (the default)
  opt-in   only spells matching the selection patterns
  opt-out  everything except spells matching the patterns

With opt-in or opt-out and no --spells flag, an interactive picker
offers the builtin tasks to choose from.`,
		RunE: runInit,
	}
)

func init() {
	initCmd.Flags().StringVarP(&initMode, "mode", "m", "all", "cast mode (all, opt-in, opt-out)")
	initCmd.Flags().StringSliceVarP(&initSpells, "spells", "s", nil, "selection patterns for opt-in / opt-out")
	initCmd.Flags().StringSliceVarP(&initDirs, "dir", "d", nil, "extra spell directories")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing settings and starter file")
}

func runInit(cmd *cobra.Command, args []string) error {
	mode, err := config.ParseMode(initMode)
	if err != nil {
		return err
	}

	patterns := initSpells
	if mode != config.ModeAll && len(patterns) == 0 {
		patterns, err = pickSpells(mode)
		if err != nil {
			return err
		}
		if len(patterns) == 0 {
			return fmt.Errorf("mode %q needs at least one selection", mode)
		}
	}

	dirs := initDirs
	if len(dirs) == 0 {
		dirs = []string{config.UserSpellsDir()}
	}

	if _, err := os.Stat(config.SettingsPath()); err == nil && !initForce {
		return fmt.Errorf("settings file %s already exists. Use --force to overwrite", config.SettingsPath())
	}

	s := &config.Settings{
		Mode:      mode,
		Spells:    patterns,
		SpellDirs: dirs,
	}
	if err := config.Save(s); err != nil {
		return err
	}
	fmt.Printf("%s Wrote %s\n", SuccessStyle.Render("✓"), config.SettingsPath())

	if path, err := scaffoldStarterSpell(); err != nil {
		return err
	} else if path != "" {
		fmt.Printf("%s Created %s\n", SuccessStyle.Render("✓"), path)
	}

	fmt.Println()
	fmt.Println(SubtitleStyle.Render("Next steps:"))
	fmt.Println("  1. Edit the starter spell file to add your tasks")
	fmt.Println("  2. Run 'spellbook list' to see what is available")
	fmt.Println("  3. Run 'spellbook cast <task>' to execute one")

	return nil
}

// pickSpells runs the interactive picker over the builtin task names.
func pickSpells(mode config.Mode) ([]string, error) {
	ns, err := spellbook.New().Register(spells.Builtin()...).CastAll()
	if err != nil {
		return nil, err
	}

	var options []string
	for _, e := range ns.Entries() {
		options = append(options, e.Dotted)
	}

	title := "Pick the spells to include"
	if mode == config.ModeOptOut {
		title = "Pick the spells to exclude"
	}
	return tui.ChooseMany(tui.ChooseManyOptions{
		Title:   title,
		Options: options,
		Height:  15,
	})
}

const starterSpell = `module: "mine"
prefix: false

tasks: [
	{
		name:    "hello"
		summary: "Print a greeting"
		script:  "echo 'Hello from spellbook!'"
	},
]
`

// scaffoldStarterSpell writes a starter spell file into the user spells
// directory. An existing file is left alone unless --force is set; the
// returned path is empty when nothing was written.
func scaffoldStarterSpell() (string, error) {
	dir := config.UserSpellsDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating spells directory: %w", err)
	}

	path := filepath.Join(dir, "mine.spell.cue")
	if _, err := os.Stat(path); err == nil && !initForce {
		return "", nil
	}
	if err := os.WriteFile(path, []byte(starterSpell), 0o644); err != nil {
		return "", fmt.Errorf("writing starter spell file: %w", err)
	}
	return path, nil
}
