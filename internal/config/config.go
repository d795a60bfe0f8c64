// Package config loads the YAML configuration of the goframe CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sartorproj/goframe/dataframe"
)

// Config holds CLI settings. Unset fields keep their defaults.
//
//	log_level: debug
//	layout:
//	  cell_width: 12
//	  precision: 3
type Config struct {
	LogLevel string           `yaml:"log_level"`
	Layout   dataframe.Layout `yaml:"layout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Layout:   dataframe.DefaultLayout(),
	}
}

// Load reads the configuration at path. An empty path yields Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Layout.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
