// Package config loads artifactvault configuration from global, local, and
// environment sources with koanf, and validates the result with
// go-playground/validator struct tags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the artifactvault CLI tool configuration
type Configuration struct {
	StoreDir      string `koanf:"store_dir" validate:"required"`      // badger version store location
	StateDir      string `koanf:"state_dir" validate:"required"`      // audit ledger location
	ArtifactsRoot string `koanf:"artifacts_root" validate:"required"` // root containing agents/, commands/, skills/
	Author        string `koanf:"author"`                             // default author recorded on commits
	MinBodyLength int    `koanf:"min_body_length" validate:"omitempty,min=1,max=10000"`
	MaxRetries    int    `koanf:"max_retries" validate:"min=1,max=10"`
	Timeout       int    `koanf:"timeout" validate:"omitempty,min=1,max=3600"` // store operation timeout, seconds
	MaxLedger     int    `koanf:"max_ledger_entries" validate:"omitempty,min=1"`
	ShowProgress  bool   `koanf:"show_progress"` // show spinners during store operations
}

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"store_dir":          "~/.artifactvault/store",
		"state_dir":          "~/.artifactvault/state",
		"artifacts_root":     ".claude",
		"author":             "",
		"min_body_length":    50,
		"max_retries":        3,
		"timeout":            30,
		"max_ledger_entries": 500,
		"show_progress":      true,
	}
}

// Load loads configuration from global, local, and environment sources
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	// Load global config if it exists
	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".artifactvault", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Load local config if it exists
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Override with environment variables (highest priority)
	k.Load(env.Provider("ARTIFACTVAULT_", ".", envTransform), nil)

	// Unmarshal into struct
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Expand home directory in paths
	cfg.StoreDir = expandHomePath(cfg.StoreDir)
	cfg.StateDir = expandHomePath(cfg.StateDir)
	cfg.ArtifactsRoot = expandHomePath(cfg.ArtifactsRoot)

	if cfg.Author == "" {
		cfg.Author = defaultAuthor()
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys
// Example: ARTIFACTVAULT_MAX_RETRIES -> max_retries
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "ARTIFACTVAULT_"))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}

// defaultAuthor falls back to the OS user when no author is configured.
func defaultAuthor() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	if u := os.Getenv("USERNAME"); u != "" {
		return u
	}
	return "unknown"
}
