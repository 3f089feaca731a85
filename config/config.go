// SPDX-License-Identifier: MIT

// Package config loads the data set and session settings.
//
// Defaults are compiled in from default.yaml. Load overlays a user YAML file
// on top of them and ApplyEnv overlays PAIRWISE_* environment variables,
// which LoadEnvFile can populate from a .env file.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pairwise/prefmatrix"
	"github.com/katalvlaran/pairwise/rank"
	"github.com/katalvlaran/pairwise/report"
)

//go:embed default.yaml
var defaultYAML []byte

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel     = "PAIRWISE_LOG_LEVEL"
	EnvLogFormat    = "PAIRWISE_LOG_FORMAT"
	EnvLogDir       = "PAIRWISE_LOG_DIR"
	EnvReportFormat = "PAIRWISE_REPORT_FORMAT"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete configuration.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Session SessionConfig `yaml:"session"`
	Logging LoggingConfig `yaml:"logging"`
	Report  ReportConfig  `yaml:"report"`
}

// DataConfig holds the static tables of a session.
type DataConfig struct {
	// Alternatives is the working list; its order is the matrix order.
	Alternatives []string `yaml:"alternatives"`
	// Scale is the reference ordinal scale.
	Scale []string `yaml:"scale"`
	// Seed is the initial matrix (empty = identity).
	Seed [][]int `yaml:"seed"`
	// Valuation and Criteria feed the cross-scale check; both optional.
	Valuation [][]int `yaml:"valuation"`
	Criteria  [][]int `yaml:"criteria"`
}

// SessionConfig tunes the comparison sweep.
type SessionConfig struct {
	// Fixpoint repeats propagation until nothing changes after each pair.
	Fixpoint  bool `yaml:"fixpoint"`
	MaxPasses int  `yaml:"max_passes"`
}

// LoggingConfig configures the logger package.
type LoggingConfig struct {
	Level         string `yaml:"level"`  // debug, info, warn, error
	Format        string `yaml:"format"` // pretty, json
	Dir           string `yaml:"dir"`    // empty disables file output
	RotationSize  int    `yaml:"rotation_size_mb"`
	RetentionDays int    `yaml:"retention_days"`
}

// ReportConfig selects the table renderer.
type ReportConfig struct {
	Format string `yaml:"format"` // ascii, markdown
}

// DefaultConfig returns the compiled-in configuration.
func DefaultConfig() *Config {
	c := &Config{}
	if err := yaml.Unmarshal(defaultYAML, c); err != nil {
		panic(fmt.Sprintf("config: embedded default.yaml: %v", err))
	}

	return c
}

// Load returns DefaultConfig overlaid with the YAML file at path. An empty
// path returns the defaults. Lists present in the file replace the defaults
// wholesale.
func Load(path string) (*Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config.Load: parse %s: %w", path, err)
	}

	return c, nil
}

// LoadEnvFile loads KEY=VALUE pairs from a .env file into the process
// environment without overriding variables already set. A missing file is
// not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config.LoadEnvFile: %w", err)
	}

	return nil
}

// ApplyEnv overlays PAIRWISE_* variables found through lookup (os.LookupEnv
// in production).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	set(EnvLogLevel, &c.Logging.Level)
	set(EnvLogFormat, &c.Logging.Format)
	set(EnvLogDir, &c.Logging.Dir)
	set(EnvReportFormat, &c.Report.Format)
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks cross-field consistency.
func (c *Config) Validate() error {
	alts := prefmatrix.Alternatives(c.Data.Alternatives)
	if err := alts.Validate(); err != nil {
		return fmt.Errorf("%w: data.alternatives: %w", ErrInvalid, err)
	}
	if len(c.Data.Scale) == 0 {
		return invalidf("data.scale is required")
	}
	for _, a := range alts {
		if _, err := rank.Position(c.Data.Scale, a); err != nil {
			return fmt.Errorf("%w: data.alternatives: %w", ErrInvalid, err)
		}
	}
	if len(c.Data.Seed) > 0 && len(c.Data.Seed) != len(alts) {
		return invalidf("data.seed has %d rows, want %d", len(c.Data.Seed), len(alts))
	}
	if (len(c.Data.Valuation) == 0) != (len(c.Data.Criteria) == 0) {
		return invalidf("data.valuation and data.criteria must be set together")
	}
	if c.Session.MaxPasses <= 0 {
		return invalidf("session.max_passes must be > 0")
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return invalidf("logging.level %q", c.Logging.Level)
	}
	if c.Logging.Format != "pretty" && c.Logging.Format != "json" {
		return invalidf("logging.format %q, want pretty or json", c.Logging.Format)
	}
	if _, err := report.ParseMode(c.Report.Format); err != nil {
		return invalidf("report.format %q", c.Report.Format)
	}

	return nil
}

// SeedMatrix builds the initial matrix: data.seed when present, identity
// otherwise. The diagonal is forced to Equal.
func (c *Config) SeedMatrix() (*prefmatrix.Matrix, error) {
	n := len(c.Data.Alternatives)
	if len(c.Data.Seed) == 0 {
		return prefmatrix.NewIdentity(n)
	}
	m, err := prefmatrix.FromRows(c.Data.Seed)
	if err != nil {
		return nil, fmt.Errorf("config.SeedMatrix: %w", err)
	}
	if m.Size() != n {
		return nil, fmt.Errorf("config.SeedMatrix: seed is %d×%d for %d alternatives: %w",
			m.Size(), m.Size(), n, prefmatrix.ErrSizeMismatch)
	}
	m.SeedDiagonal()

	return m, nil
}
