// SPDX-License-Identifier: MPL-2.0

package spells

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"spellbook-cli/pkg/spell"
	"spellbook-cli/pkg/visibility"
)

// onedriveModule helps with OneDrive sync leftovers. Only useful from the
// home directory, where the sync root lives.
func onedriveModule() *spell.Module {
	return spell.NewModule("onedrive").
		Source("builtin").
		Prefix(true).
		VisibleWhen(visibility.IsHomeDir).
		Add(
			spell.NewTask("conflicts", onedriveConflicts).
				Summary("List files with sync-conflict markers in their names").
				MustBuild(),
		).
		MustBuild()
}

// onedriveConflicts walks the OneDrive root printing files whose names
// carry the sync-conflict suffix the client appends on collisions.
func onedriveConflicts(_ context.Context, inv *spell.Invocation) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	root := filepath.Join(home, "OneDrive")
	if _, err := os.Stat(root); err != nil {
		return fmt.Errorf("no OneDrive directory at %s: %w", root, err)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree, keep walking
		}
		if !d.IsDir() && strings.Contains(d.Name(), "-conflict") {
			fmt.Fprintln(inv.Stdout, path)
		}
		return nil
	})
}
