// Package config loads the primepath YAML configuration.
//
// Every field has a deterministic default (see Default); a file only needs
// to name what it changes. Decoding is strict: unknown keys are rejected.
//
//	log:
//	  level: info      # debug|info|warn|error
//	  format: text     # text|json
//	solver:
//	  policy: strict   # strict|fallback
//	  show_path: false
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/primepath/longest"
)

// ErrInvalidConfig indicates a value outside its documented set.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the full application configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Solver SolverConfig `yaml:"solver"`
}

// LogConfig controls the slog handler built by the CLI.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn or error
	Format string `yaml:"format"` // text or json
}

// SolverConfig controls longest.Solve.
type SolverConfig struct {
	Policy   string `yaml:"policy"`    // strict or fallback
	ShowPath bool   `yaml:"show_path"` // print the winning path
}

// Defaults (named, no magic strings downstream).
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultPolicy    = "strict"
)

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Solver: SolverConfig{
			Policy:   DefaultPolicy,
			ShowPath: false,
		},
	}
}

// Load reads the YAML file at path on top of Default and validates it.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return Default(), fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode parses YAML from r on top of Default and validates the result.
// An empty document yields the defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Default(), fmt.Errorf("config: YAML error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}

	return cfg, nil
}

// Validate rejects levels, formats and policies outside their sets.
func (c Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q (want debug, info, warn or error)", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}
	if _, err := longest.ParsePolicy(c.Solver.Policy); err != nil {
		return fmt.Errorf("%w: solver.policy: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Policy returns the parsed solver policy. Call after Validate.
func (c Config) Policy() longest.Policy {
	p, err := longest.ParsePolicy(c.Solver.Policy)
	if err != nil {
		return longest.PolicyStrictSink
	}

	return p
}
