// Package config loads trebuchet settings from .trebuchet/config.yaml and
// merges them with command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/trebuchet/internal/calibration"
	"gopkg.in/yaml.v3"
)

// Config represents trebuchet configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir is the directory for run log files (empty = no file logging)
	LogDir string `yaml:"log_dir"`

	// SpelledWords enables matching "zero".."nine" in addition to numerals
	SpelledWords bool `yaml:"spelled_words"`

	// NoDigitPolicy decides what lines without digits contribute (skip, error, carry)
	NoDigitPolicy string `yaml:"no_digit_policy"`

	// ReportPath is where a YAML run report is written (empty = no report)
	ReportPath string `yaml:"report_path"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:      "warn",
		LogDir:        "",
		SpelledWords:  true,
		NoDigitPolicy: string(calibration.PolicySkip),
		ReportPath:    "",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.LogDir != "" {
		cfg.LogDir = fileCfg.LogDir
	}
	if fileCfg.NoDigitPolicy != "" {
		cfg.NoDigitPolicy = fileCfg.NoDigitPolicy
	}
	if fileCfg.ReportPath != "" {
		cfg.ReportPath = fileCfg.ReportPath
	}

	// spelled_words defaults to true, so an explicit false has to be told
	// apart from an absent key
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if _, exists := rawMap["spelled_words"]; exists {
			cfg.SpelledWords = fileCfg.SpelledWords
		}
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .trebuchet/config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ".trebuchet", "config.yaml")
	return LoadConfig(configPath)
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel *string, logDir *string, spelledWords *bool, noDigitPolicy *string, reportPath *string) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
	if spelledWords != nil {
		c.SpelledWords = *spelledWords
	}
	if noDigitPolicy != nil {
		c.NoDigitPolicy = *noDigitPolicy
	}
	if reportPath != nil {
		c.ReportPath = *reportPath
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if _, err := calibration.ParseNoDigitPolicy(c.NoDigitPolicy); err != nil {
		return err
	}

	return nil
}

// Policy returns the validated no-digit policy.
func (c *Config) Policy() calibration.NoDigitPolicy {
	policy, err := calibration.ParseNoDigitPolicy(c.NoDigitPolicy)
	if err != nil {
		return calibration.PolicySkip
	}
	return policy
}
