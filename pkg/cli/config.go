/*
Copyright © 2025 William & Mary geoLab
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wmgeolab/gbvalidate/pkg/vocab"
)

// Config is the optional YAML configuration for the check command. Zero
// fields fall back to the built-in defaults.
type Config struct {
	// NameColumns overrides the candidate column names for boundary names.
	NameColumns []string `yaml:"nameColumns"`

	// ISOColumns overrides the candidate column names for ISO codes.
	ISOColumns []string `yaml:"isoColumns"`

	// Sources overrides the reference vocabulary table URLs.
	Sources vocab.Sources `yaml:"sources"`
}

// loadConfig reads a YAML config file. An empty path yields a zero Config.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// sources resolves the vocabulary sources, falling back to the published
// defaults for any URL the config leaves empty.
func (c *Config) sources() vocab.Sources {
	src := vocab.DefaultSources()
	if c.Sources.CountriesURL != "" {
		src.CountriesURL = c.Sources.CountriesURL
	}
	if c.Sources.LicensesURL != "" {
		src.LicensesURL = c.Sources.LicensesURL
	}
	return src
}
