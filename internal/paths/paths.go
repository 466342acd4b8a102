// Package paths resolves the default tracker directories.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultStateDir returns the default tracker state directory, which holds
// the local session file.
func DefaultStateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".local", "state", "tasktracker"), nil
}

// DefaultDataDir returns the default data root, under which the live
// activity and completed task stores live.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", "tasktracker"), nil
}

// DefaultConfigPath returns the path of the global config file.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "tasktracker", "config.toml"), nil
}
