package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".dq.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .dq.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .dq.yaml from dir. Returns DefaultConfig if the file does
// not exist, so projects without one keep working.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Validate the raw input before merging, catches typos early.
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return mergeConfig(domain.DefaultConfig(), cfg), nil
}

// mergeConfig overlays explicit values on top of the defaults. Explicit
// (non-zero) values always win.
func mergeConfig(base, override domain.Config) domain.Config {
	result := base

	if override.StrictCSV {
		result.StrictCSV = true
	}
	if override.ReportsDir != "" {
		result.ReportsDir = override.ReportsDir
	}
	if override.DocsDir != "" {
		result.DocsDir = override.DocsDir
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}

	// An explicit token list replaces the built-in set entirely.
	if len(override.NullValues) > 0 {
		result.NullValues = override.NullValues
	}

	return result
}
