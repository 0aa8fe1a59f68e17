// Package config loads wordladder settings from defaults, a YAML file,
// WORDLADDER_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"runtime"
)

// Defaults.
const (
	DefaultDictionary = "words.txt"
	DefaultWorkers    = 1
	DefaultOutput     = OutputText
	DefaultWildcard   = "*"

	// EnvPrefix selects the environment variables read by Load.
	EnvPrefix = "WORDLADDER_"
)

// Output formats.
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputTable = "table"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds all CLI configuration options.
type Config struct {
	// Dictionary is the cleaned word list used when a command gets no path argument.
	Dictionary string `koanf:"dictionary"`
	// Workers is the goroutine count for intra-layer neighbor lookups;
	// 0 means one per CPU.
	Workers  int    `koanf:"workers"`
	Verbose  bool   `koanf:"verbose"`
	Output   string `koanf:"output"`
	Wildcard string `koanf:"wildcard"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Dictionary: DefaultDictionary,
		Workers:    DefaultWorkers,
		Output:     DefaultOutput,
		Wildcard:   DefaultWildcard,
	}
}

// Validate checks option ranges and resolves Workers == 0 to the CPU count.
func (c *Config) Validate() error {
	if c.Dictionary == "" {
		return fmt.Errorf("%w: dictionary path is empty", ErrInvalid)
	}
	switch {
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must not be negative (%d)", ErrInvalid, c.Workers)
	case c.Workers == 0:
		c.Workers = runtime.NumCPU()
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputTable:
	default:
		return fmt.Errorf("%w: unknown output format %q (text|json|table)", ErrInvalid, c.Output)
	}
	if len(c.Wildcard) != 1 || (c.Wildcard[0] >= 'a' && c.Wildcard[0] <= 'z') {
		return fmt.Errorf("%w: wildcard must be a single non-letter byte, got %q", ErrInvalid, c.Wildcard)
	}
	return nil
}

// WildcardByte returns the configured wildcard.
func (c *Config) WildcardByte() byte { return c.Wildcard[0] }
