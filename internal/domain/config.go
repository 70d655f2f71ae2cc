package domain

import "fmt"

// Config holds project-level settings loaded from .dq.yaml.
type Config struct {
	// StrictCSV requires a literal .csv extension on file data refs,
	// restoring the pre-flight check of the oldest CLI releases.
	StrictCSV bool `yaml:"strict_csv" json:"strict_csv,omitempty"`
	// ReportsDir is where derived report paths land.
	ReportsDir string `yaml:"reports_dir" json:"reports_dir,omitempty"`
	// DocsDir is where generated HTML pages land.
	DocsDir string `yaml:"docs_dir" json:"docs_dir,omitempty"`
	// LogLevel controls engine diagnostics: debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level,omitempty"`
	// NullValues overrides the NA token set used by CSV ingestion.
	NullValues []string `yaml:"null_values" json:"null_values,omitempty"`
}

var validLogLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns the settings used when no .dq.yaml exists.
func DefaultConfig() Config {
	return Config{
		ReportsDir: "reports",
		DocsDir:    "reports/docs",
		LogLevel:   "warn",
	}
}

// Validate catches typos before the config is merged with defaults.
func (c Config) Validate() error {
	if c.LogLevel != "" {
		ok := false
		for _, l := range validLogLevels {
			if c.LogLevel == l {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel)
		}
	}
	return nil
}
