// SPDX-License-Identifier: MPL-2.0

package spellbook

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the sentinel wrapped by ConfigurationError.
	ErrConfiguration = errors.New("spellbook configuration error")
	// ErrModuleLoad is the sentinel wrapped by ModuleLoadError.
	ErrModuleLoad = errors.New("spell module load error")
)

// ConfigurationError reports a setup mistake that affects the whole
// namespace: a malformed selection pattern or a display-name collision
// with no resolution rule. Composition aborts and the error surfaces to
// the user immediately.
type ConfigurationError struct {
	// Reason is a short human-readable description.
	Reason string
	// Pattern is the offending glob pattern, when applicable.
	Pattern string
	// Name is the offending display name, when applicable.
	Name string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	switch {
	case e.Pattern != "":
		return fmt.Sprintf("%s: pattern %q", e.Reason, e.Pattern)
	case e.Name != "":
		return fmt.Sprintf("%s: %q", e.Reason, e.Name)
	default:
		return e.Reason
	}
}

// Unwrap ties the error to the ErrConfiguration sentinel.
func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// ModuleLoadError reports a module source that could not be loaded: the
// path is missing or contains no loadable spell module. The module is
// skipped with a warning; composing the remaining modules continues.
type ModuleLoadError struct {
	// Source is the path or registration name that failed.
	Source string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *ModuleLoadError) Error() string {
	return fmt.Sprintf("cannot load spell module from %s: %v", e.Source, e.Err)
}

// Unwrap exposes the underlying cause and, transitively, ErrModuleLoad.
func (e *ModuleLoadError) Unwrap() error { return e.Err }

// Is reports true for the ErrModuleLoad sentinel.
func (e *ModuleLoadError) Is(target error) bool { return target == ErrModuleLoad }
