package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	t.Setenv("KOVAK_HOME", t.TempDir())

	s := Load()
	assert.Equal(t, DefaultHotkey, s.Hotkey)
}

func TestLoadMalformedFileReturnsDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("KOVAK_HOME", home)

	require.NoError(t, os.MkdirAll(filepath.Join(home, "Kovak"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, "Kovak", "settings.json"), []byte("{not json"), 0o644))

	s := Load()
	assert.Equal(t, DefaultHotkey, s.Hotkey)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("KOVAK_HOME", home)

	require.NoError(t, Save(Settings{Hotkey: "ctrl+alt+v"}))

	// Save created the directory and file on first use.
	_, err := os.Stat(filepath.Join(home, "Kovak", "settings.json"))
	require.NoError(t, err)

	assert.Equal(t, "ctrl+alt+v", Load().Hotkey)
}

func TestLoadEmptyHotkeyFallsBackToDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("KOVAK_HOME", home)

	require.NoError(t, Save(Settings{Hotkey: ""}))
	assert.Equal(t, DefaultHotkey, Load().Hotkey)
}
