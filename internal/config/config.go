// SPDX-License-Identifier: MIT

// Package config loads CLI settings from the environment and input
// matrices from YAML files.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/orthospace/matrix"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "ORTHOSPACE"

// ErrEmptyMatrixFile is returned when a matrix file carries no rows.
var ErrEmptyMatrixFile = errors.New("config: matrix file has no rows")

// Config holds all CLI configuration.
type Config struct {
	Logging LogConfig
	Output  OutputConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// OutputConfig holds report rendering configuration.
type OutputConfig struct {
	// Format is "auto", "text" or "yaml"; auto picks text on a terminal.
	Format    string `envconfig:"OUTPUT" default:"auto"`
	Precision int    `envconfig:"PRECISION" default:"4"`
}

// Load reads ORTHOSPACE_* environment variables.
// Each section is processed on its own so keys stay flat
// (ORTHOSPACE_LOG_LEVEL, not ORTHOSPACE_LOGGING_LOG_LEVEL).
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg.Logging); err != nil {
		return nil, fmt.Errorf("failed to load logging config: %w", err)
	}
	if err := envconfig.Process(EnvPrefix, &cfg.Output); err != nil {
		return nil, fmt.Errorf("failed to load output config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault loads configuration from the environment or returns Default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}

	return cfg
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Output: OutputConfig{
			Format:    "auto",
			Precision: 4,
		},
	}
}

// matrixFile is the on-disk layout of an input matrix:
//
//	rows:
//	  - [1, 2]
//	  - [3, 4]
type matrixFile struct {
	Rows [][]float64 `yaml:"rows"`
}

// ReadMatrix decodes a matrix document from r.
func ReadMatrix(r io.Reader) (*matrix.Dense, error) {
	var f matrixFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode matrix: %w", err)
	}
	if len(f.Rows) == 0 {
		return nil, ErrEmptyMatrixFile
	}
	m, err := matrix.FromRows(f.Rows)
	if err != nil {
		return nil, fmt.Errorf("decode matrix: %w", err)
	}

	return m, nil
}

// LoadMatrix reads a matrix document from path.
func LoadMatrix(path string) (*matrix.Dense, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open matrix file: %w", err)
	}
	defer fh.Close()

	m, err := ReadMatrix(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
