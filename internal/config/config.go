// Package config provides configuration loading and structs for the profiler server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug        bool               `yaml:"debug"`
	Server       ServerConfig       `yaml:"server"`
	Sources      []SourceConfig     `yaml:"sources"`
	Autocomplete AutocompleteConfig `yaml:"autocomplete"`
	Watch        WatchConfig        `yaml:"watch"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// SourceConfig describes one tabular name source. Type is the institution
// type tag applied to every record from the source; NameColumn selects
// which column holds the institution name. Table is only used for SQLite
// sources and names the table to read.
type SourceConfig struct {
	Path       string `yaml:"path"`
	Type       string `yaml:"type"`
	NameColumn string `yaml:"name_column"`
	Table      string `yaml:"table,omitempty"`
}

// AutocompleteConfig holds engine tuning knobs.
type AutocompleteConfig struct {
	// MaxSuggestions caps the number of suggestions per response.
	MaxSuggestions int `yaml:"max_suggestions"`
	// MaxQueryLength is the maximum accepted query length in runes.
	MaxQueryLength int `yaml:"max_query_length"`
	// MaxEditDistance is the per-word correction ceiling.
	MaxEditDistance int `yaml:"max_edit_distance"`
	// PerWordCandidates caps correction candidates kept per word before combining.
	PerWordCandidates int `yaml:"per_word_candidates"`
	// MaxCombinations caps combined candidate phrases per query.
	MaxCombinations int `yaml:"max_combinations"`
}

// WatchConfig holds source file watch settings. When enabled, changes to
// source files trigger an engine reload.
type WatchConfig struct {
	Enabled *bool `yaml:"enabled"`
}

// EnabledOrDefault returns whether watching is on; defaults to false when unset.
func (w *WatchConfig) EnabledOrDefault() bool {
	if w.Enabled != nil {
		return *w.Enabled
	}
	return false
}

// Load reads and parses the config file at path, expands source paths, and
// applies defaults. Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	for i := range cfg.Sources {
		cfg.Sources[i].Path = expandPath(cfg.Sources[i].Path, configDir)
	}

	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
