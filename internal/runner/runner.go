// SPDX-License-Identifier: MPL-2.0

// Package runner executes spell-file scripts with the embedded mvdan/sh
// interpreter. Scripts run in-process against the current working
// directory and the inherited environment; no external shell is spawned.
package runner

import (
	"context"
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"spellbook-cli/pkg/spell"
)

// ExitError reports a script that completed with a non-zero status.
type ExitError struct {
	// Code is the script's exit status.
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("script exited with status %d", e.Code)
}

// Validate parses the script without executing it, surfacing syntax errors
// at load time instead of first invocation.
func Validate(script string) error {
	if strings.TrimSpace(script) == "" {
		return fmt.Errorf("script has no content")
	}
	if _, err := syntax.NewParser().Parse(strings.NewReader(script), "script"); err != nil {
		return fmt.Errorf("script syntax error: %w", err)
	}
	return nil
}

// Run parses and executes the script. Positional arguments are exposed as
// $1, $2, ... and I/O is wired to the invocation's streams. A non-zero
// exit status is returned as *ExitError.
func Run(ctx context.Context, script string, inv *spell.Invocation) error {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "script")
	if err != nil {
		return fmt.Errorf("failed to parse script: %w", err)
	}

	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(inv.Stdin, inv.Stdout, inv.Stderr),
	}
	if len(inv.Args) > 0 {
		opts = append(opts, interp.Params(append([]string{"--"}, inv.Args...)...))
	}

	sh, err := interp.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create interpreter: %w", err)
	}

	if err := sh.Run(ctx, prog); err != nil {
		if status, ok := interp.IsExitStatus(err); ok {
			return &ExitError{Code: int(status)}
		}
		return err
	}
	return nil
}

// Handler adapts a script into a task handler for composition.
func Handler(script string) spell.Handler {
	return func(ctx context.Context, inv *spell.Invocation) error {
		return Run(ctx, script, inv)
	}
}
