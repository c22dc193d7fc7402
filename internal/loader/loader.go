// SPDX-License-Identifier: MPL-2.0

// Package loader turns filesystem paths into spell module descriptors.
//
// A path may be a single spell file or a package directory. Directories
// are treated as a single-module package iff they contain the marker file
// (spellfile.cue); otherwise every *.spell.cue file inside becomes its own
// module. Loading is lazy: descriptors carry a Load hook that parses the
// file at cast time, so a file that goes bad between discovery and
// composition is skipped, not fatal.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"spellbook-cli/internal/runner"
	"spellbook-cli/internal/spellfile"
	"spellbook-cli/pkg/spell"
	"spellbook-cli/pkg/spellbook"
)

const (
	// MarkerFile marks a directory as a single spell package.
	MarkerFile = "spellfile.cue"
	// FileSuffix identifies standalone spell module files.
	FileSuffix = ".spell.cue"
)

// Loader implements spellbook.Loader for spell files on disk.
type Loader struct{}

// New creates a Loader.
func New() *Loader {
	return &Loader{}
}

// compile-time interface check
var _ spellbook.Loader = (*Loader)(nil)

// LoadPath resolves a file or directory into module descriptors. A missing
// path or a directory with no loadable spell file yields a ModuleLoadError.
func (l *Loader) LoadPath(path string) ([]spell.ModuleDescriptor, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &spellbook.ModuleLoadError{Source: path, Err: err}
	}

	if !info.IsDir() {
		return []spell.ModuleDescriptor{describeFile(path)}, nil
	}

	// Package directory: the marker file is the whole module.
	marker := filepath.Join(path, MarkerFile)
	if _, err := os.Stat(marker); err == nil {
		return []spell.ModuleDescriptor{describeFile(marker)}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, &spellbook.ModuleLoadError{Source: path, Err: err}
	}

	var descs []spell.ModuleDescriptor
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), FileSuffix) {
			continue
		}
		descs = append(descs, describeFile(filepath.Join(path, entry.Name())))
	}
	sort.Slice(descs, func(i, j int) bool { return descs[i].Source < descs[j].Source })

	if len(descs) == 0 {
		return nil, &spellbook.ModuleLoadError{
			Source: path,
			Err:    fmt.Errorf("directory contains no %s files and no %s marker", FileSuffix, MarkerFile),
		}
	}
	return descs, nil
}

// describeFile builds a lazy descriptor for one spell file. The name is a
// pre-parse guess from the file stem; the parsed module name is
// authoritative.
func describeFile(path string) spell.ModuleDescriptor {
	return spell.ModuleDescriptor{
		Name:   moduleStem(path),
		Source: path,
		Load: func() (*spell.Module, error) {
			sf, err := spellfile.Parse(path)
			if err != nil {
				return nil, err
			}
			return buildModule(sf)
		},
	}
}

// moduleStem strips the spell-file suffixes from a file name.
func moduleStem(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, FileSuffix)
	base = strings.TrimSuffix(base, ".cue")
	return base
}

// buildModule converts a parsed spell file into an immutable module with
// script-backed task handlers.
func buildModule(sf *spellfile.Spellfile) (*spell.Module, error) {
	b := spell.NewModule(sf.Module).Source(sf.FilePath).Prefix(sf.Prefix)
	if sf.VisibleWhen != spellfile.RuleAlways {
		b.VisibleWhen(sf.VisibleWhen.Predicate())
	}

	for _, def := range sf.Tasks {
		if err := runner.Validate(def.Script); err != nil {
			return nil, fmt.Errorf("task %q in %s: %w", def.Name, sf.FilePath, err)
		}
		tb := spell.NewTask(def.Name, runner.Handler(def.Script)).Summary(def.Summary)
		if def.AlwaysVisible {
			tb.AlwaysVisible()
		}
		if def.VisibleWhen != "" {
			tb.VisibleWhen(def.VisibleWhen.Predicate())
		}
		task, err := tb.Build()
		if err != nil {
			return nil, fmt.Errorf("task %q in %s: %w", def.Name, sf.FilePath, err)
		}
		b.Add(task)
	}

	return b.Build()
}
