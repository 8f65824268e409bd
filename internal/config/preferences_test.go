package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPreferences_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	prefs, err := LoadPreferences()

	require.NoError(t, err)
	assert.Equal(t, DefaultPreferences(), prefs)
}

func TestSaveAndLoadPreferences(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	prefs := DefaultPreferences()
	prefs.Output.Format = "markdown"
	prefs.Logging.Level = "debug"
	prefs.TUI.ShowReal = true
	require.NoError(t, SavePreferences(prefs))

	assert.Equal(t, filepath.Join(dir, "contribcalc", "config.toml"), PreferencesPath())
	loaded, err := LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, prefs, loaded)
}

func TestLoadPreferencesFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nformat = \"json\"\n"), 0o644))

	prefs, err := LoadPreferencesFrom(path)

	require.NoError(t, err)
	assert.Equal(t, "json", prefs.Output.Format)
	assert.Equal(t, "warn", prefs.Logging.Level, "Unset keys keep their defaults")
}

func TestLoadPreferencesFrom_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output\n"), 0o644))

	_, err := LoadPreferencesFrom(path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing preferences")
}
