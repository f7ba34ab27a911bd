package config

import (
	"os"
	"path/filepath"
)

// Load reads the configuration file, falling back to defaults when none
// exists. overridePath wins when set (the -config flag).
func Load(overridePath string) (*Config, error) {
	path := configPath(overridePath)
	if path == "" {
		return New(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// configPath returns the config file location, or "" when no file exists.
func configPath(overridePath string) string {
	if overridePath != "" {
		if _, err := os.Stat(overridePath); err == nil {
			return overridePath
		}
		return ""
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	xdgPath := filepath.Join(home, ".config", "workout-story", "config.rc")
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}

	rcPath := filepath.Join(home, ".workout-storyrc")
	if _, err := os.Stat(rcPath); err == nil {
		return rcPath
	}

	return ""
}
