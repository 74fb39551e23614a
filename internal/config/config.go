// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Utah News

// Package config handles the swiftgen project configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the project configuration file.
const FileName = "swiftgen.yaml"

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Config represents the swiftgen.yaml project configuration file. It
// supplies defaults for flags the commands accept, so a commit hook can
// run `swiftgen sync` with no arguments.
type Config struct {
	Version   int    `yaml:"version"`
	SourceDir string `yaml:"source_dir,omitempty"`
	OutputDir string `yaml:"output_dir,omitempty"`
	Schema    string `yaml:"schema,omitempty"`
	Format    string `yaml:"format,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDir reads the configuration file from a directory. A missing file
// is not an error; it returns (nil, nil).
func LoadDir(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	switch c.Format {
	case "", "json", "yaml":
	default:
		return fmt.Errorf("unsupported format %q", c.Format)
	}
	return nil
}
