package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".srcweld"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the YAML configuration file format.
type File struct {
	// IgnoreFiles lists base names excluded from combination.
	// When present it replaces the built-in default list entirely.
	IgnoreFiles []string `yaml:"ignore_files"`

	// Minify enables minification by default; the CLI flag can still
	// turn it on for a single run but never off.
	Minify bool `yaml:"minify"`

	// BatchSize overrides the default extraction concurrency.
	BatchSize int `yaml:"batch_size"`
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound; callers decide
// whether that matters based on whether the path was explicit.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in order:
// 1. The explicit configPath, if given
// 2. .srcweld in the current directory
// 3. .srcweld in the user's home directory
//
// Returns the path if found, or an empty string.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}

// Apply merges file settings into the config. CLI flags win where both are
// set, so Apply only fills values the flags left at their defaults.
func (c *Config) Apply(cf *File) {
	if cf == nil {
		return
	}
	if len(cf.IgnoreFiles) > 0 {
		c.IgnoreFiles = append([]string(nil), cf.IgnoreFiles...)
	}
	if cf.Minify {
		c.Minify = true
	}
	if cf.BatchSize > 0 && c.BatchSize == DefaultBatchSize {
		c.BatchSize = cf.BatchSize
	}
}
