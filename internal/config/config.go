// Package config handles loading tasktracker.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/CNA-DataTeam/CNA-Logistics-App/internal/paths"
)

// AppVersion is stamped onto every submitted task record.
const AppVersion = "1.8.1"

// Environment overrides, checked after config files.
const (
	EnvDataRoot = "TASKTRACKER_DATA_ROOT"
	EnvCatalog  = "TASKTRACKER_CATALOG"
	EnvStateDir = "TASKTRACKER_STATE_DIR"
)

// Config represents the tasktracker.toml configuration file.
type Config struct {
	// DataRoot is the shared directory holding the live activity and
	// completed task stores. Every tracker user must point at the same
	// root for live activity to be visible across machines.
	DataRoot string `toml:"data-root"`

	// Catalog is the path of the task/user/account catalog file. Defaults
	// to catalog.toml under the data root.
	Catalog string `toml:"catalog"`

	// StateDir holds the local session file. Defaults to the per-user
	// state directory; unlike DataRoot it is never shared.
	StateDir string `toml:"state-dir"`
}

// Load reads the global config file, applies environment overrides, and
// fills in defaults. A missing config file is not an error.
func Load() (*Config, error) {
	globalPath, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(globalPath)
}

// LoadFrom is Load with an explicit config file path.
func LoadFrom(path string) (*Config, error) {
	cfg, err := loadConfigFile(path)
	if err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(os.Getenv(EnvDataRoot)); v != "" {
		cfg.DataRoot = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvCatalog)); v != "" {
		cfg.Catalog = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvStateDir)); v != "" {
		cfg.StateDir = v
	}

	if cfg.DataRoot == "" {
		cfg.DataRoot, err = paths.DefaultDataDir()
		if err != nil {
			return nil, err
		}
	}
	if cfg.Catalog == "" {
		cfg.Catalog = filepath.Join(cfg.DataRoot, "catalog.toml")
	}
	if cfg.StateDir == "" {
		cfg.StateDir, err = paths.DefaultStateDir()
		if err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	cfg.DataRoot = strings.TrimSpace(cfg.DataRoot)
	cfg.Catalog = strings.TrimSpace(cfg.Catalog)
	cfg.StateDir = strings.TrimSpace(cfg.StateDir)
	return &cfg, nil
}

// LiveActivityDir returns the live activity store directory.
func (c *Config) LiveActivityDir() string {
	return filepath.Join(c.DataRoot, "live_activity")
}

// CompletedTasksDir returns the completed task store directory.
func (c *Config) CompletedTasksDir() string {
	return filepath.Join(c.DataRoot, "completed_tasks")
}
