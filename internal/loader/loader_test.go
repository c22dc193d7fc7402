// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"errors"
	"path/filepath"
	"testing"

	"spellbook-cli/internal/testutil"
	"spellbook-cli/pkg/spellbook"
)

const gitSpell = `
module: "git"
visible_when: "git-repo"
tasks: [
	{name: "switch", summary: "Switch to the default branch", script: "git checkout main"},
	{name: "tidy", script: "git remote prune origin"},
]
`

const mediaSpell = `
module: "media"
tasks: [{name: "transcode", script: "ffmpeg -version"}]
`

func TestLoadPath_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "git.spell.cue")
	testutil.MustWriteFile(t, path, gitSpell)

	descs, err := New().LoadPath(path)
	if err != nil {
		t.Fatalf("LoadPath() returned error: %v", err)
	}
	if len(descs) != 1 {
		t.Fatalf("len(descs) = %d, want 1", len(descs))
	}
	if descs[0].Name != "git" {
		t.Errorf("descriptor name = %q, want git", descs[0].Name)
	}

	m, err := descs[0].Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if m.Name() != "git" || len(m.Tasks()) != 2 {
		t.Errorf("loaded module = %q with %d tasks, want git with 2", m.Name(), len(m.Tasks()))
	}
}

func TestLoadPath_DirectoryOfFiles(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "git.spell.cue"), gitSpell)
	testutil.MustWriteFile(t, filepath.Join(dir, "media.spell.cue"), mediaSpell)
	testutil.MustWriteFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	descs, err := New().LoadPath(dir)
	if err != nil {
		t.Fatalf("LoadPath() returned error: %v", err)
	}
	if len(descs) != 2 {
		t.Fatalf("len(descs) = %d, want 2", len(descs))
	}
	// Sorted by source path.
	if descs[0].Name != "git" || descs[1].Name != "media" {
		t.Errorf("descriptor names = %q, %q; want git, media", descs[0].Name, descs[1].Name)
	}
}

func TestLoadPath_MarkerDirectoryIsOnePackage(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, MarkerFile), mediaSpell)
	// Sibling spell files are ignored when the marker is present.
	testutil.MustWriteFile(t, filepath.Join(dir, "git.spell.cue"), gitSpell)

	descs, err := New().LoadPath(dir)
	if err != nil {
		t.Fatalf("LoadPath() returned error: %v", err)
	}
	if len(descs) != 1 {
		t.Fatalf("len(descs) = %d, want 1", len(descs))
	}
	m, err := descs[0].Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if m.Name() != "media" {
		t.Errorf("module name = %q, want media", m.Name())
	}
}

func TestLoadPath_MissingPath(t *testing.T) {
	_, err := New().LoadPath(filepath.Join(t.TempDir(), "nope"))
	var loadErr *spellbook.ModuleLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("LoadPath() error = %v, want ModuleLoadError", err)
	}
	if !errors.Is(err, spellbook.ErrModuleLoad) {
		t.Error("error does not match ErrModuleLoad sentinel")
	}
}

func TestLoadPath_EmptyDirectory(t *testing.T) {
	_, err := New().LoadPath(t.TempDir())
	var loadErr *spellbook.ModuleLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("LoadPath() error = %v, want ModuleLoadError", err)
	}
}

func TestLoad_InvalidFileFailsAtLoadTime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.spell.cue")
	testutil.MustWriteFile(t, path, `module: "broken"`)

	descs, err := New().LoadPath(path)
	if err != nil {
		t.Fatalf("LoadPath() returned error: %v", err)
	}
	if _, err := descs[0].Load(); err == nil {
		t.Error("Load() accepted spell file without tasks")
	}
}

func TestLoad_ScriptSyntaxErrorFailsAtLoadTime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.spell.cue")
	testutil.MustWriteFile(t, path, `
module: "bad"
tasks: [{name: "boom", script: "if then fi ("}]
`)

	descs, err := New().LoadPath(path)
	if err != nil {
		t.Fatalf("LoadPath() returned error: %v", err)
	}
	if _, err := descs[0].Load(); err == nil {
		t.Error("Load() accepted task with unparsable script")
	}
}

func TestLoader_ComposesWithSpellbook(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "git.spell.cue"), gitSpell)
	testutil.MustWriteFile(t, filepath.Join(dir, "broken.spell.cue"), `module: "broken"`)

	book := spellbook.New(spellbook.WithLoader(New())).AddModules(dir)
	ns, err := book.CastAll()
	if err != nil {
		t.Fatalf("CastAll() returned error: %v", err)
	}
	// The broken module is skipped; git still composes.
	if _, ok := ns.Lookup("switch"); !ok {
		t.Errorf("git tasks missing; names = %v", ns.Names())
	}
	if ns.Len() != 2 {
		t.Errorf("namespace has %d tasks, want 2", ns.Len())
	}
}
