package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config file locations, checked in order after an explicit path.
const (
	configFileName = "pong.yaml"
	localConfigDir = "configs"
	userConfigDir  = ".pong"
)

// SourceEmbedded is reported when no config file was found.
const SourceEmbedded = "embedded default"

// LoadPong loads Pong configuration and reports where it came from.
// Search order: customPath -> ~/.pong/pong.yaml -> ./configs/pong.yaml -> embedded default.
// Files are overlaid on the defaults, so they only need the keys they change.
func LoadPong(customPath string) (PongConfig, string, error) {
	// An explicit path must exist and parse
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, cfg.Validate()
	}

	// Broken files in the search path are skipped, as if absent
	for _, path := range searchPaths() {
		if cfg, err := loadFile(path); err == nil {
			if err := cfg.Validate(); err != nil {
				return cfg, path, err
			}
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
		return DefaultPongConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// loadFile reads a YAML file on top of the default configuration.
func loadFile(path string) (PongConfig, error) {
	cfg := DefaultPongConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// searchPaths returns the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath(); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join(localConfigDir, configFileName))
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, userConfigDir, configFileName)
}
