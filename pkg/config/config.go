// Package config loads the optional YAML file that tunes a scan.
// It uses strict YAML decoding and explicit defaults.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/datatug/repostat/pkg/scanner"
)

// Config holds the complete scan configuration.
type Config struct {
	Scan ScanConfig `yaml:"scan"`
}

// ScanConfig defines what the scanner ignores and how many of the
// largest files it keeps.
type ScanConfig struct {
	IgnoreDirs     []string `yaml:"ignore_dirs,omitempty"`     // Directory names skipped entirely
	IgnoreFiles    []string `yaml:"ignore_files,omitempty"`    // File names excluded from all counts
	IgnorePatterns []string `yaml:"ignore_patterns,omitempty"` // Extra gitignore-syntax rules
	ReadGitignore  bool     `yaml:"read_gitignore,omitempty"`  // Also honor the root .gitignore
	TopFiles       int      `yaml:"top_files"`                 // Capacity of the largest-files list
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads configuration from a YAML file.
// Returns an error if the file cannot be read or decoded.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields

	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

// setDefaults applies explicit default values to unset fields.
func (c *Config) setDefaults() {
	if c.Scan.IgnoreDirs == nil {
		c.Scan.IgnoreDirs = scanner.DefaultIgnoreDirs
	}
	if c.Scan.IgnoreFiles == nil {
		c.Scan.IgnoreFiles = scanner.DefaultIgnoreFiles
	}
	if c.Scan.TopFiles == 0 {
		c.Scan.TopFiles = scanner.DefaultTopFiles
	}
}

// Options converts the configuration into scanner options.
func (c *Config) Options() scanner.Options {
	return scanner.Options{
		IgnoreDirs:    c.Scan.IgnoreDirs,
		IgnoreFiles:   c.Scan.IgnoreFiles,
		Patterns:      scanner.ParsePatterns(c.Scan.IgnorePatterns),
		ReadGitignore: c.Scan.ReadGitignore,
		TopFiles:      c.Scan.TopFiles,
	}
}
