package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultStopHotkey stops all playback when pressed; it can never be
// bound to a sound.
const DefaultStopHotkey = "backspace"

// Config stores the resolved file locations and hotkey defaults.
type Config struct {
	KeybindsPath string
	SettingsPath string
	StopHotkey   string
}

// Load resolves configuration from environment variables and sensible
// defaults, creating the config directory when missing.
func Load() (Config, error) {
	dir := strings.TrimSpace(os.Getenv("SOUNDBOX_CONFIG_DIR"))
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("could not determine config directory: %w", err)
		}
		dir = filepath.Join(base, "soundbox")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Config{}, fmt.Errorf("could not create config directory: %w", err)
	}

	stop := strings.TrimSpace(os.Getenv("SOUNDBOX_STOP_HOTKEY"))
	if stop == "" {
		stop = DefaultStopHotkey
	}

	return Config{
		KeybindsPath: filepath.Join(dir, "keybinds.json"),
		SettingsPath: filepath.Join(dir, "settings.json"),
		StopHotkey:   stop,
	}, nil
}
