package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultStorePath is the well-known history file name.
const DefaultStorePath = ".sizes.json"

// Config is the root configuration structure.
type Config struct {
	Path      string       `json:"path"`      // History file location
	Overwrite bool         `json:"overwrite"` // Replace measurements recorded earlier for the same revision
	Emoji     bool         `json:"emoji"`     // Pictographic labels in console output
	Write     *bool        `json:"write"`     // Persist history; unset derives from worktree cleanliness
	ID        string       `json:"id"`        // Revision id override; unset uses the short HEAD hash
	Filters   FilterConfig `json:"filters"`
}

// FilterConfig holds artifact name filtering options.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// Match checks if an artifact name passes the include/exclude filters.
func (f FilterConfig) Match(name string) bool {
	// Normalize path separators
	name = strings.ReplaceAll(name, "\\", "/")

	// Check exclude patterns first
	for _, pattern := range f.Exclude {
		matched, _ := doublestar.Match(pattern, name)
		if matched {
			return false
		}
	}

	// If no include patterns, accept all
	if len(f.Include) == 0 {
		return true
	}
	for _, pattern := range f.Include {
		matched, _ := doublestar.Match(pattern, name)
		if matched {
			return true
		}
	}
	return false
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Path:  DefaultStorePath,
		Emoji: true,
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{".sizetrack.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".sizetrack.json"))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, ".sizetrack.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
