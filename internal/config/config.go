// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"spellbook-cli/internal/issue"
)

const (
	// AppName is the application name used for directory layout.
	AppName = "spellbook"
	// SettingsFileName is the settings file name inside the config dir.
	SettingsFileName = "config.yaml"

	envPrefix = "SPELLBOOK"
)

// Dir returns the spellbook configuration directory, following the
// platform's XDG conventions.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// settingsPathOverride is set via the --config flag.
var settingsPathOverride string

// SetSettingsPathOverride points Load and Save at a custom settings file.
// An empty path restores the default location.
func SetSettingsPathOverride(path string) {
	settingsPathOverride = path
}

// SettingsPath returns the settings file path.
func SettingsPath() string {
	if settingsPathOverride != "" {
		return settingsPathOverride
	}
	return filepath.Join(Dir(), SettingsFileName)
}

// UserSpellsDir returns the default directory for the user's own spell
// files, under the platform data directory.
func UserSpellsDir() string {
	return filepath.Join(xdg.DataHome, AppName, "spells")
}

// Default returns the settings used when no file exists yet: cast
// everything, and look for user spells in the default data directory.
func Default() *Settings {
	return &Settings{
		Mode:      ModeAll,
		SpellDirs: []string{UserSpellsDir()},
	}
}

// Load reads the settings file, layering environment variables
// (SPELLBOOK_*) over file values over defaults. A missing file is not an
// error; the defaults apply.
func Load() (*Settings, error) {
	v := viper.New()
	defaults := Default()
	v.SetDefault("mode", string(defaults.Mode))
	v.SetDefault("spells", defaults.Spells)
	v.SetDefault("spell_dirs", defaults.SpellDirs)
	v.SetDefault("verbose", defaults.Verbose)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	path := SettingsPath()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if _, missing := err.(viper.ConfigFileNotFoundError); !missing && !os.IsNotExist(err) {
			return nil, loadError(path, "Check the YAML syntax of the file", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, loadError(path, "Check the YAML syntax of the file", err)
	}
	if err := s.Validate(); err != nil {
		return nil, loadError(path, "Fix the cast mode and selection patterns", err)
	}
	return &s, nil
}

// loadError wraps a settings failure with user-facing context.
func loadError(path, suggestion string, err error) error {
	return issue.NewErrorContext().
		WithOperation("load settings").
		WithResource(path).
		WithSuggestion(suggestion).
		WithSuggestion("Run 'spellbook init --force' to regenerate the file").
		Wrap(err).
		BuildError()
}

// Save writes the settings file, creating the config directory as needed.
func Save(s *Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(SettingsPath()), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.Set("mode", string(s.Mode))
	v.Set("spells", s.Spells)
	v.Set("spell_dirs", s.SpellDirs)
	v.Set("verbose", s.Verbose)
	v.SetConfigType("yaml")

	if err := v.WriteConfigAs(SettingsPath()); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}
