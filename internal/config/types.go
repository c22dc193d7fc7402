// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"spellbook-cli/pkg/spellbook"
)

// Mode selects how the global namespace is composed.
type Mode string

const (
	// ModeAll composes every module's tasks.
	ModeAll Mode = "all"
	// ModeOptIn composes only tasks matching the configured patterns.
	ModeOptIn Mode = "opt-in"
	// ModeOptOut composes everything except tasks matching the patterns.
	ModeOptOut Mode = "opt-out"
)

// ErrInvalidMode is returned when a Mode value is not recognized.
var ErrInvalidMode = errors.New("invalid cast mode")

// IsValid reports whether the mode is one of the three known values.
func (m Mode) IsValid() bool {
	switch m {
	case ModeAll, ModeOptIn, ModeOptOut:
		return true
	default:
		return false
	}
}

// String returns the wire form.
func (m Mode) String() string { return string(m) }

// ParseMode validates a raw string into a Mode.
func ParseMode(raw string) (Mode, error) {
	m := Mode(raw)
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q (expected all, opt-in or opt-out)", ErrInvalidMode, raw)
	}
	return m, nil
}

// Settings is the persisted configuration.
type Settings struct {
	// Mode is the cast mode driving composition.
	Mode Mode `mapstructure:"mode"`
	// Spells are the selection patterns for opt-in / opt-out modes,
	// matched against dotted "module.task" names.
	Spells []string `mapstructure:"spells"`
	// SpellDirs are extra directories with user spell files, loaded in
	// addition to the builtin collection.
	SpellDirs []string `mapstructure:"spell_dirs"`
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`
}

// Validate checks the settings for setup mistakes.
func (s *Settings) Validate() error {
	if !s.Mode.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidMode, s.Mode)
	}
	if s.Mode != ModeAll && len(s.Spells) == 0 {
		return fmt.Errorf("mode %q requires at least one selection pattern", s.Mode)
	}
	return nil
}

// Policy translates the settings into the composer's selection policy.
func (s *Settings) Policy() spellbook.Policy {
	switch s.Mode {
	case ModeOptIn:
		return spellbook.Only(s.Spells...)
	case ModeOptOut:
		return spellbook.Except(s.Spells...)
	default:
		return spellbook.All()
	}
}
