// Package settings persists user settings as a single JSON object at
// <home>/Kovak/settings.json. Loading never fails (a missing or malformed
// file yields the defaults) but a failed save is surfaced to the caller,
// since there is no sensible recovery for a disk-write failure.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultHotkey is the hotkey used when no settings file exists.
const DefaultHotkey = "shift+space"

// Settings is the persisted user configuration.
type Settings struct {
	Hotkey string `json:"hotkey"`
}

// Default returns the settings used when the file is missing or unreadable.
func Default() Settings {
	return Settings{Hotkey: DefaultHotkey}
}

// Path returns the settings file path: $KOVAK_HOME/Kovak/settings.json if
// the override is set, otherwise <user home>/Kovak/settings.json.
func Path() (string, error) {
	home := os.Getenv("KOVAK_HOME")
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
	}
	return filepath.Join(home, "Kovak", "settings.json"), nil
}

// Load reads the settings file, returning defaults on any failure. Parse
// and read errors are swallowed: a broken settings file should
// never keep the app from starting.
func Load() Settings {
	path, err := Path()
	if err != nil {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Default()
	}
	if s.Hotkey == "" {
		s.Hotkey = DefaultHotkey
	}
	return s
}

// Save writes the settings file, creating the containing directory on
// first use. Failures propagate; the caller treats them as fatal.
func Save(s Settings) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
