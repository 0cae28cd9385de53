/*
PURPOSE:
  Defines the configuration structure and loading logic for Bench Runner.

REQUIREMENTS:
  User-specified:
  - Number of runs per program, field parsing on/off.
  - Run counts of 1 or less mean a single run.

  Implementation-discovered:
  - No file is consulted unless one is named explicitly with --config.
  - The simple runner takes its count as a bare positional and falls back
    to 10 when it is missing or not a number.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3

ERROR HANDLING:
  - Returns explicit error if the named config file is missing or invalid.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - CLI flags override file values (done in internal/cli).

USAGE:
  cfg, err := config.Load(path)

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultSimpleRuns is used by the simple runner when no count is given.
	DefaultSimpleRuns = 10
)

// Config represents the full configuration for Bench Runner.
type Config struct {
	// Runs is the number of executions per program.
	Runs int `yaml:"runs"`
	// Fields enables parsing "label: value" lines from program stdout.
	Fields  bool `yaml:"fields"`
	Verbose bool `yaml:"verbose"`
	NoColor bool `yaml:"no_color"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Runs:   1,
		Fields: true,
	}
}

// Load reads configuration from path. An empty path returns the defaults
// without touching the filesystem.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.Runs = CoerceRuns(cfg.Runs)
	return cfg, nil
}

// CoerceRuns maps any count below 2 to 1.
func CoerceRuns(n int) int {
	if n <= 1 {
		return 1
	}
	return n
}

// ParseSimpleRuns interprets the simple runner's first positional argument.
// A missing or non-integer argument yields DefaultSimpleRuns; the boolean
// reports whether arg parsed as an integer. The argument is the count slot
// either way.
func ParseSimpleRuns(arg string, present bool) (int, bool) {
	if !present {
		return DefaultSimpleRuns, false
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return DefaultSimpleRuns, false
	}
	return CoerceRuns(n), true
}
