package config

import (
	"fmt"
	"strings"
)

// Validate checks that all configuration values are within acceptable ranges.
// Returns an error describing the first validation failure found.
func (c *Config) Validate() error {
	if err := c.Scan.Validate(); err != nil {
		return fmt.Errorf("scan config: %w", err)
	}
	return nil
}

// Validate checks scan configuration values.
func (s *ScanConfig) Validate() error {
	if s.TopFiles < 1 {
		return fmt.Errorf("top_files must be at least 1, got %d", s.TopFiles)
	}
	for _, name := range s.IgnoreDirs {
		if err := validateName("ignore_dirs", name); err != nil {
			return err
		}
	}
	for _, name := range s.IgnoreFiles {
		if err := validateName("ignore_files", name); err != nil {
			return err
		}
	}
	return nil
}

// validateName rejects entries that are not plain names: the ignore sets
// match directory and file names, not paths. Path rules belong in
// ignore_patterns.
func validateName(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%s must not contain empty names", field)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%s entries must be plain names, got path %q (use ignore_patterns for paths)", field, name)
	}
	return nil
}
