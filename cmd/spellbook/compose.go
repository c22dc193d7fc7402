// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"spellbook-cli/internal/issue"
	"spellbook-cli/internal/loader"
	"spellbook-cli/internal/spells"
	"spellbook-cli/pkg/spellbook"
)

// composeGlobal casts the configured spellbook: the builtin modules plus
// every spell directory from the settings, filtered by the cast mode.
func composeGlobal() (*spellbook.Namespace, error) {
	book := spellbook.New(spellbook.WithLoader(loader.New())).
		Register(spells.Builtin()...).
		AddModules(settings.SpellDirs...)
	return book.Cast(settings.Policy())
}

// composeLocal casts the spell files of the current directory, if any.
// The cast mode does not apply to local spells; a directory that has no
// spell file yields a nil namespace.
func composeLocal() (*spellbook.Namespace, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	descs, err := loader.New().LoadPath(cwd)
	if err != nil {
		if errors.Is(err, spellbook.ErrModuleLoad) {
			return nil, nil
		}
		return nil, err
	}

	// A broken local file is skipped, not fatal, but the user is editing it
	// right here, so surface the parse failure loudly.
	good := descs[:0]
	for _, d := range descs {
		if _, err := d.Load(); err != nil {
			rendered, _ := issue.Get(issue.SpellfileParseErrorId).Render("dark")
			fmt.Fprint(os.Stderr, rendered)
			fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
			continue
		}
		good = append(good, d)
	}
	return spellbook.New().Register(good...).CastAll()
}

// composeNamespace builds the full namespace: the global cast merged with
// the local spells, local winning on collision.
func composeNamespace() (*spellbook.Namespace, error) {
	global, err := composeGlobal()
	if err != nil {
		return nil, err
	}
	local, err := composeLocal()
	if err != nil {
		return nil, err
	}
	return spellbook.MergeLocal(local, global), nil
}
