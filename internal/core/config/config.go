// Package config handles configuration loading and validation for chatcolor.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/chatcolor/internal/core/styles"
)

// Storage backends.
const (
	BackendJSON = "json"
	BackendBolt = "bolt"
)

// Config holds the application configuration.
type Config struct {
	Theme   string        `yaml:"theme"`
	Storage StorageConfig `yaml:"storage"`
	Recolor RecolorConfig `yaml:"recolor"`
	Roster  []string      `yaml:"roster"` // names always treated as online
	DataDir string        `yaml:"-"`      // set by caller, not from config file
}

// StorageConfig selects where explicit colors are persisted.
type StorageConfig struct {
	Backend string `yaml:"backend"` // json or bolt
	Path    string `yaml:"path"`    // relative paths resolve against the data dir
}

// RecolorConfig tunes message recoloring.
type RecolorConfig struct {
	// DropUnmatched suppresses messages that mention no known name instead
	// of passing them through unchanged.
	DropUnmatched bool     `yaml:"drop_unmatched"`
	Ignore        []string `yaml:"ignore"` // glob patterns of names never recolored
	RosterFile    string   `yaml:"roster_file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: styles.DefaultTheme,
		Storage: StorageConfig{
			Backend: BackendJSON,
		},
		Roster: []string{},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = defaults.Storage.Backend
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	switch c.Storage.Backend {
	case BackendJSON, BackendBolt:
	default:
		return fmt.Errorf("storage.backend must be %q or %q, got %q", BackendJSON, BackendBolt, c.Storage.Backend)
	}

	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q", c.Theme)
	}

	return nil
}

// StoragePath returns the file the configured backend persists to.
func (c *Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.resolve(c.Storage.Path)
	}
	if c.Storage.Backend == BackendBolt {
		return filepath.Join(c.DataDir, "players.db")
	}
	return filepath.Join(c.DataDir, "players.json")
}

// RosterFilePath returns the resolved roster file, or "" if none is set.
func (c *Config) RosterFilePath() string {
	if c.Recolor.RosterFile == "" {
		return ""
	}
	return c.resolve(c.Recolor.RosterFile)
}

// Palette returns the palette of the configured theme.
func (c *Config) Palette() styles.Palette {
	if p, ok := styles.GetPalette(c.Theme); ok {
		return p
	}
	p, _ := styles.GetPalette(styles.DefaultTheme)
	return p
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.DataDir, path)
}
