// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent cleanup.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/adrg/xdg"
)

// MustChdir changes the current working directory to dir.
// It returns a cleanup function that restores the original directory.
// The test fails immediately if the directory change fails.
func MustChdir(t testing.TB, dir string) func() {
	t.Helper()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get current directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory to %s: %v", dir, err)
	}
	return func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Errorf("failed to restore directory to %s: %v", originalWd, err)
		}
	}
}

// MustSetenv sets the environment variable key to value.
// It returns a cleanup function that restores the original value (or unsets it).
func MustSetenv(t testing.TB, key, value string) func() {
	t.Helper()
	originalValue, hadValue := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set env %s: %v", key, err)
	}
	return func() {
		if hadValue {
			if err := os.Setenv(key, originalValue); err != nil {
				t.Errorf("failed to restore env %s: %v", key, err)
			}
		} else {
			if err := os.Unsetenv(key); err != nil {
				t.Errorf("failed to unset env %s: %v", key, err)
			}
		}
	}
}

// SetHomeDir points the platform home environment variable at dir and
// refreshes the xdg base directories so config/data paths resolve under it.
// It returns a cleanup function that restores the original state.
//
// Platform handling:
//   - Windows: sets USERPROFILE
//   - Linux/macOS: sets HOME
func SetHomeDir(t testing.TB, dir string) func() {
	t.Helper()

	key := "HOME"
	if runtime.GOOS == "windows" {
		key = "USERPROFILE"
	}
	restoreEnv := MustSetenv(t, key, dir)
	// XDG vars would otherwise win over HOME after xdg.Reload.
	restoreConfig := MustSetenv(t, "XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	restoreData := MustSetenv(t, "XDG_DATA_HOME", filepath.Join(dir, ".local", "share"))
	xdg.Reload()

	return func() {
		restoreData()
		restoreConfig()
		restoreEnv()
		xdg.Reload()
	}
}

// MustWriteFile writes content to path, creating parent directories as
// needed. The test fails immediately on error.
func MustWriteFile(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// MustMkdirAll creates the directory path and any missing parents.
// The test fails immediately on error.
func MustMkdirAll(t testing.TB, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create directory %s: %v", path, err)
	}
}
