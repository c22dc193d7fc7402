// SPDX-License-Identifier: MPL-2.0

package visibility

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

const (
	// PreCommitConfigFile is the marker file for pre-commit managed projects.
	PreCommitConfigFile = ".pre-commit-config.yaml"
	// PyprojectFile is the Python dependency manifest file name.
	PyprojectFile = "pyproject.toml"
	// GitDir is the marker directory for version-control checkouts.
	GitDir = ".git"
)

// Predicate answers whether tasks should be displayed in the current
// working directory. Implementations must be side-effect free; filesystem
// stats are fine, mutation is not.
type Predicate func() bool

// Eval runs a predicate, treating a panic as "not visible". A broken
// predicate must never abort a namespace listing, so the failure is
// logged and swallowed.
func Eval(p Predicate) (visible bool) {
	if p == nil {
		return true
	}
	defer func() {
		if r := recover(); r != nil {
			log.Warn("visibility predicate panicked, hiding tasks", "panic", r)
			visible = false
		}
	}()
	return p()
}

// Always reports true unconditionally. It is the default predicate for
// modules that should be listed everywhere.
func Always() bool {
	return true
}

// IsGitRepo reports whether the current dir is a version-control checkout.
func IsGitRepo() bool {
	_, err := os.Stat(GitDir)
	return err == nil
}

// IsHomeDir reports whether the current dir is the user's home dir.
func IsHomeDir() bool {
	home, err := os.UserHomeDir()
	if err != nil {
		return false
	}
	cwd, err := os.Getwd()
	if err != nil {
		return false
	}
	return filepath.Clean(cwd) == filepath.Clean(home)
}

// HasPreCommitConfig reports whether the current dir has a
// .pre-commit-config.yaml file.
func HasPreCommitConfig() bool {
	_, err := os.Stat(PreCommitConfigFile)
	return err == nil
}

// HasPyproject reports whether the current dir has a dependency manifest
// (pyproject.toml).
func HasPyproject() bool {
	_, err := os.Stat(PyprojectFile)
	return err == nil
}

// IsPoetryProject reports whether the current dir has a pyproject.toml
// with a [tool.poetry] section.
func IsPoetryProject() bool {
	data, err := os.ReadFile(PyprojectFile)
	if err != nil {
		return false
	}

	var manifest struct {
		Tool struct {
			Poetry map[string]any `toml:"poetry"`
		} `toml:"tool"`
	}
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return false
	}
	return manifest.Tool.Poetry != nil
}
