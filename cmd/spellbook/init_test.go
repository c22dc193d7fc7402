// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spellbook-cli/internal/config"
	"spellbook-cli/internal/testutil"
)

func resetInitFlags() {
	initMode = "all"
	initSpells = nil
	initDirs = nil
	initForce = false
}

func TestRunInit_WritesSettingsAndStarter(t *testing.T) {
	cleanup := testutil.SetHomeDir(t, t.TempDir())
	defer cleanup()
	resetInitFlags()

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("runInit() returned error: %v", err)
	}

	if _, err := os.Stat(config.SettingsPath()); err != nil {
		t.Errorf("settings file not written: %v", err)
	}

	starter := filepath.Join(config.UserSpellsDir(), "mine.spell.cue")
	data, err := os.ReadFile(starter)
	if err != nil {
		t.Fatalf("starter spell file not written: %v", err)
	}
	if !strings.Contains(string(data), `module: "mine"`) {
		t.Errorf("starter spell file missing module header: %q", data)
	}

	s, err := config.Load()
	if err != nil {
		t.Fatalf("Load() after init returned error: %v", err)
	}
	if s.Mode != config.ModeAll {
		t.Errorf("Mode = %q, want all", s.Mode)
	}
	if len(s.SpellDirs) != 1 || s.SpellDirs[0] != config.UserSpellsDir() {
		t.Errorf("SpellDirs = %v, want default user spells dir", s.SpellDirs)
	}
}

func TestRunInit_RefusesOverwriteWithoutForce(t *testing.T) {
	cleanup := testutil.SetHomeDir(t, t.TempDir())
	defer cleanup()
	resetInitFlags()

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("first runInit() returned error: %v", err)
	}
	if err := runInit(initCmd, nil); err == nil {
		t.Error("second runInit() = nil, want already-exists error")
	}

	initForce = true
	if err := runInit(initCmd, nil); err != nil {
		t.Errorf("runInit() with --force returned error: %v", err)
	}
}

func TestRunInit_OptOutWithPatterns(t *testing.T) {
	cleanup := testutil.SetHomeDir(t, t.TempDir())
	defer cleanup()
	resetInitFlags()
	initMode = "opt-out"
	initSpells = []string{"media*", "onedrive*"}

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("runInit() returned error: %v", err)
	}

	s, err := config.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if s.Mode != config.ModeOptOut {
		t.Errorf("Mode = %q, want opt-out", s.Mode)
	}
	if len(s.Spells) != 2 {
		t.Errorf("Spells = %v, want the two patterns", s.Spells)
	}
}

func TestRunInit_RejectsUnknownMode(t *testing.T) {
	cleanup := testutil.SetHomeDir(t, t.TempDir())
	defer cleanup()
	resetInitFlags()
	initMode = "sometimes"

	if err := runInit(initCmd, nil); err == nil {
		t.Error("runInit() with bad mode = nil, want error")
	}
}
