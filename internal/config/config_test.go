// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"spellbook-cli/internal/issue"
	"spellbook-cli/internal/testutil"
	"spellbook-cli/pkg/spellbook"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cleanup := testutil.SetHomeDir(t, t.TempDir())
	defer cleanup()

	s, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if s.Mode != ModeAll {
		t.Errorf("Mode = %q, want all", s.Mode)
	}
	if len(s.SpellDirs) != 1 || !strings.HasSuffix(s.SpellDirs[0], "spells") {
		t.Errorf("SpellDirs = %v, want default user spells dir", s.SpellDirs)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	cleanup := testutil.SetHomeDir(t, t.TempDir())
	defer cleanup()

	in := &Settings{
		Mode:      ModeOptOut,
		Spells:    []string{"media*", "onedrive*"},
		SpellDirs: []string{"/tmp/spells"},
		Verbose:   true,
	}
	if err := Save(in); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	out, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if out.Mode != ModeOptOut {
		t.Errorf("Mode = %q, want opt-out", out.Mode)
	}
	if fmt.Sprint(out.Spells) != fmt.Sprint(in.Spells) {
		t.Errorf("Spells = %v, want %v", out.Spells, in.Spells)
	}
	if fmt.Sprint(out.SpellDirs) != fmt.Sprint(in.SpellDirs) {
		t.Errorf("SpellDirs = %v, want %v", out.SpellDirs, in.SpellDirs)
	}
	if !out.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestLoad_CorruptFileIsActionable(t *testing.T) {
	cleanup := testutil.SetHomeDir(t, t.TempDir())
	defer cleanup()

	testutil.MustWriteFile(t, SettingsPath(), "mode: [this is\nnot yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() over corrupt file = nil, want error")
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("Load() error = %T, want *issue.ActionableError", err)
	}
	if ae.Operation != "load settings" {
		t.Errorf("Operation = %q, want load settings", ae.Operation)
	}
	if ae.Resource != SettingsPath() {
		t.Errorf("Resource = %q, want %q", ae.Resource, SettingsPath())
	}
	if !ae.HasSuggestions() {
		t.Error("settings failure carries no suggestions")
	}
}

func TestLoad_InvalidModeInFileIsActionable(t *testing.T) {
	cleanup := testutil.SetHomeDir(t, t.TempDir())
	defer cleanup()

	testutil.MustWriteFile(t, SettingsPath(), "mode: sometimes\n")

	_, err := Load()
	if !errors.Is(err, ErrInvalidMode) {
		t.Errorf("Load() error = %v, want ErrInvalidMode in the chain", err)
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Errorf("Load() error = %T, want *issue.ActionableError", err)
	}
}

func TestSave_RejectsInvalidSettings(t *testing.T) {
	cleanup := testutil.SetHomeDir(t, t.TempDir())
	defer cleanup()

	if err := Save(&Settings{Mode: "sometimes"}); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("Save(bad mode) error = %v, want ErrInvalidMode", err)
	}
	if err := Save(&Settings{Mode: ModeOptIn}); err == nil {
		t.Error("Save(opt-in without patterns) = nil, want error")
	}
}

func TestParseMode(t *testing.T) {
	for raw, want := range map[string]Mode{"all": ModeAll, "opt-in": ModeOptIn, "opt-out": ModeOptOut} {
		got, err := ParseMode(raw)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %q, %v; want %q", raw, got, err, want)
		}
	}
	if _, err := ParseMode("imported"); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("ParseMode(imported) error = %v, want ErrInvalidMode", err)
	}
}

func TestSettings_Policy(t *testing.T) {
	tests := []struct {
		mode Mode
		want spellbook.PolicyKind
	}{
		{ModeAll, spellbook.PolicyAll},
		{ModeOptIn, spellbook.PolicyOnly},
		{ModeOptOut, spellbook.PolicyExcept},
	}
	for _, tt := range tests {
		s := &Settings{Mode: tt.mode, Spells: []string{"git*"}}
		if got := s.Policy().Kind(); got != tt.want {
			t.Errorf("Policy() kind for %q = %v, want %v", tt.mode, got, tt.want)
		}
	}
}

func TestDir_UnderConfigHome(t *testing.T) {
	tmp := t.TempDir()
	cleanup := testutil.SetHomeDir(t, tmp)
	defer cleanup()

	if !strings.HasPrefix(Dir(), tmp) {
		t.Errorf("Dir() = %q, want under %q", Dir(), tmp)
	}
	if !strings.HasSuffix(SettingsPath(), SettingsFileName) {
		t.Errorf("SettingsPath() = %q, want suffix %q", SettingsPath(), SettingsFileName)
	}
}
