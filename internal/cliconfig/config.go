package cliconfig

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/bft-labs/linebatch/internal/domain"
)

// Defaults for the command line surface.
const (
	DefaultSize          = 1
	DefaultJoinDelimiter = ","
	DefaultTag           = "{}"
	DefaultLogLevel      = "warn"
)

// Config holds CLI configuration for linebatch.
type Config struct {
	Size          int
	Blanks        bool
	Trim          bool
	JoinDelimiter string
	AbortOnError  bool
	Tag           string

	Input  string
	Follow bool

	LogLevel string

	// Command is the program name followed by its argument templates.
	Command []string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Size:          DefaultSize,
		JoinDelimiter: DefaultJoinDelimiter,
		Tag:           DefaultTag,
		LogLevel:      DefaultLogLevel,
	}
}

// SkipBlanks reports whether blank lines are dropped before batching.
func (c *Config) SkipBlanks() bool {
	return !c.Blanks
}

// Validate checks the configuration for errors.
// The command itself is checked when the command template is built.
func (c *Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: size must be positive, got %d", domain.ErrInvalidConfig, c.Size)
	}
	if c.Tag == "" {
		return fmt.Errorf("%w: tag must not be empty", domain.ErrInvalidConfig)
	}
	if c.Follow && c.Input == "" {
		return fmt.Errorf("%w: follow requires an input file", domain.ErrInvalidConfig)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q: %v", domain.ErrInvalidConfig, c.LogLevel, err)
	}
	return nil
}

// configSetter applies configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setIntFromString parses a string to int and sets the destination.
// Unlike the flag, an environment value that is not a number is an error.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts the forms understood by strconv.ParseBool.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = b
	return nil
}
