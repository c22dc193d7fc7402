// SPDX-License-Identifier: MPL-2.0

package visibility

import (
	"os"
	"path/filepath"
	"testing"

	"spellbook-cli/internal/testutil"
)

func TestEval_NilPredicateIsVisible(t *testing.T) {
	if !Eval(nil) {
		t.Error("Eval(nil) = false, want true")
	}
}

func TestEval_PanickingPredicateIsHidden(t *testing.T) {
	p := func() bool { panic("stat failed") }
	if Eval(p) {
		t.Error("Eval(panicking predicate) = true, want false")
	}
}

func TestEval_PassesThroughResult(t *testing.T) {
	if !Eval(func() bool { return true }) {
		t.Error("Eval(true predicate) = false, want true")
	}
	if Eval(func() bool { return false }) {
		t.Error("Eval(false predicate) = true, want false")
	}
}

func TestAlways(t *testing.T) {
	if !Always() {
		t.Error("Always() = false, want true")
	}
}

func TestIsGitRepo(t *testing.T) {
	tmpDir := t.TempDir()
	restoreWd := testutil.MustChdir(t, tmpDir)
	defer restoreWd()

	if IsGitRepo() {
		t.Error("IsGitRepo() = true in empty dir, want false")
	}

	if err := os.Mkdir(filepath.Join(tmpDir, GitDir), 0o755); err != nil {
		t.Fatalf("failed to create .git dir: %v", err)
	}
	if !IsGitRepo() {
		t.Error("IsGitRepo() = false with .git present, want true")
	}
}

func TestHasPreCommitConfig(t *testing.T) {
	tmpDir := t.TempDir()
	restoreWd := testutil.MustChdir(t, tmpDir)
	defer restoreWd()

	if HasPreCommitConfig() {
		t.Error("HasPreCommitConfig() = true in empty dir, want false")
	}

	testutil.MustWriteFile(t, filepath.Join(tmpDir, PreCommitConfigFile), "repos: []\n")
	if !HasPreCommitConfig() {
		t.Error("HasPreCommitConfig() = false with config present, want true")
	}
}

func TestHasPyproject(t *testing.T) {
	tmpDir := t.TempDir()
	restoreWd := testutil.MustChdir(t, tmpDir)
	defer restoreWd()

	if HasPyproject() {
		t.Error("HasPyproject() = true in empty dir, want false")
	}

	testutil.MustWriteFile(t, filepath.Join(tmpDir, PyprojectFile), "[project]\nname = \"x\"\n")
	if !HasPyproject() {
		t.Error("HasPyproject() = false with manifest present, want true")
	}
}

func TestIsPoetryProject(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		want     bool
	}{
		{
			name:     "poetry section present",
			manifest: "[tool.poetry]\nname = \"demo\"\nversion = \"0.1.0\"\n",
			want:     true,
		},
		{
			name:     "plain pep621 project",
			manifest: "[project]\nname = \"demo\"\n",
			want:     false,
		},
		{
			name:     "other tool section",
			manifest: "[tool.ruff]\nline-length = 120\n",
			want:     false,
		},
		{
			name:     "invalid toml",
			manifest: "[tool.poetry\nbroken",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			restoreWd := testutil.MustChdir(t, tmpDir)
			defer restoreWd()

			testutil.MustWriteFile(t, filepath.Join(tmpDir, PyprojectFile), tt.manifest)
			if got := IsPoetryProject(); got != tt.want {
				t.Errorf("IsPoetryProject() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsPoetryProject_NoManifest(t *testing.T) {
	restoreWd := testutil.MustChdir(t, t.TempDir())
	defer restoreWd()

	if IsPoetryProject() {
		t.Error("IsPoetryProject() = true without pyproject.toml, want false")
	}
}

func TestIsHomeDir(t *testing.T) {
	tmpDir := t.TempDir()
	cleanupHome := testutil.SetHomeDir(t, tmpDir)
	defer cleanupHome()

	restoreWd := testutil.MustChdir(t, tmpDir)
	defer restoreWd()

	if !IsHomeDir() {
		t.Error("IsHomeDir() = false in overridden home, want true")
	}

	other := filepath.Join(tmpDir, "elsewhere")
	if err := os.Mkdir(other, 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	restoreOther := testutil.MustChdir(t, other)
	defer restoreOther()

	if IsHomeDir() {
		t.Error("IsHomeDir() = true outside home, want false")
	}
}
