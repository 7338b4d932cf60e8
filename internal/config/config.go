// Package config loads scoring configuration for a run.
//
// A config file is YAML:
//
//	format: odds-and-evens
//	penalty_type: seconds
//	penalty_per: 30
//
// Absent keys keep their defaults (odds-and-evens, points, 10). Unknown keys
// are rejected so typos surface instead of silently scoring with defaults.
// Decoded values are checked against the CUE schema in schema.go.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/fancyformats/internal/format"
	"github.com/roach88/fancyformats/internal/results"
)

// Config selects the scoring format and penalty for a run.
type Config struct {
	Format      string `yaml:"format" json:"format"`
	PenaltyType string `yaml:"penalty_type" json:"penalty_type"`
	PenaltyPer  int    `yaml:"penalty_per" json:"penalty_per"`
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		Format:      format.OddsEvensName,
		PenaltyType: string(format.DefaultPenalty.Type),
		PenaltyPer:  format.DefaultPenalty.Per,
	}
}

// Load reads a YAML config file over the defaults and validates it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, results.NotFoundf("config file not found: %s", path)
	}
	if err != nil {
		return Config{}, results.Wrap(results.ErrConfig, "failed to read config file", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
// An empty document yields the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, results.Wrap(results.ErrConfig, "failed to parse YAML", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Penalty converts the config into a format.Penalty.
func (c Config) Penalty() (format.Penalty, error) {
	t, err := format.ParsePenaltyType(c.PenaltyType)
	if err != nil {
		return format.Penalty{}, err
	}
	p := format.Penalty{Type: t, Per: c.PenaltyPer}
	if err := p.Validate(); err != nil {
		return format.Penalty{}, err
	}
	return p, nil
}

// NewFormat builds the configured scoring format.
func (c Config) NewFormat() (format.Format, error) {
	p, err := c.Penalty()
	if err != nil {
		return nil, err
	}
	return format.New(c.Format, p)
}

// Summary describes the config in one line for logs and CLI output.
func (c Config) Summary() string {
	return fmt.Sprintf("%s (%d %s per flagged control)", c.Format, c.PenaltyPer, c.PenaltyType)
}
