// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles davro tool configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Config represents the davro.yaml configuration file. It only carries
// defaults for flags the user would otherwise repeat on every run.
type Config struct {
	Version int    `yaml:"version"`
	Codec   string `yaml:"codec,omitempty"`
	Level   int    `yaml:"level,omitempty"`
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
	switch c.Codec {
	case "", "null", "deflate":
	default:
		return fmt.Errorf("unsupported codec %q", c.Codec)
	}
	// Level 0 is accepted and means "use the default level".
	if c.Level < 0 || c.Level > 9 {
		return fmt.Errorf("deflate level %d out of range 0-9", c.Level)
	}
	return nil
}
