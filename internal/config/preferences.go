package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Preferences holds per-user settings stored in config.toml.
type Preferences struct {
	Output  OutputPreferences  `toml:"output"`
	Logging LoggingPreferences `toml:"logging"`
	TUI     TUIPreferences     `toml:"tui"`
}

// OutputPreferences holds report defaults.
type OutputPreferences struct {
	Format string `toml:"format"`
}

// LoggingPreferences holds logger settings.
type LoggingPreferences struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // console or json
}

// TUIPreferences holds dashboard settings.
type TUIPreferences struct {
	ShowReal bool `toml:"show_real"`
}

// DefaultPreferences returns the default preferences.
func DefaultPreferences() Preferences {
	return Preferences{
		Output:  OutputPreferences{Format: "console"},
		Logging: LoggingPreferences{Level: "warn", Format: "console"},
	}
}

// PreferencesDir returns the XDG-compliant config directory.
func PreferencesDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "contribcalc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "contribcalc")
}

// PreferencesPath returns the full path to the preferences file.
func PreferencesPath() string {
	return filepath.Join(PreferencesDir(), "config.toml")
}

// LoadPreferences reads the preferences file, returning defaults if it doesn't exist.
func LoadPreferences() (Preferences, error) {
	return LoadPreferencesFrom(PreferencesPath())
}

// LoadPreferencesFrom reads preferences from path over the defaults.
func LoadPreferencesFrom(path string) (Preferences, error) {
	prefs := DefaultPreferences()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("reading preferences: %w", err)
	}

	if err := toml.Unmarshal(data, &prefs); err != nil {
		return prefs, fmt.Errorf("parsing preferences: %w", err)
	}

	return prefs, nil
}

// SavePreferences writes the preferences to disk.
func SavePreferences(prefs Preferences) error {
	dir := PreferencesDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(PreferencesPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(prefs)
}
