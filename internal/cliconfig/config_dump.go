package cliconfig

import (
	toml "github.com/pelletier/go-toml/v2"
)

// dumpConfig is the TOML view of a resolved Config.
type dumpConfig struct {
	Size          int      `toml:"size"`
	Blanks        bool     `toml:"blanks"`
	Trim          bool     `toml:"trim"`
	JoinDelimiter string   `toml:"join_delimiter"`
	AbortOnError  bool     `toml:"abort_on_error"`
	Tag           string   `toml:"tag"`
	Input         string   `toml:"input,omitempty"`
	Follow        bool     `toml:"follow"`
	LogLevel      string   `toml:"log_level"`
	Command       []string `toml:"command"`
}

// EncodeTOML renders the resolved configuration as TOML.
func EncodeTOML(cfg Config) ([]byte, error) {
	command := cfg.Command
	if command == nil {
		command = []string{}
	}
	return toml.Marshal(dumpConfig{
		Size:          cfg.Size,
		Blanks:        cfg.Blanks,
		Trim:          cfg.Trim,
		JoinDelimiter: cfg.JoinDelimiter,
		AbortOnError:  cfg.AbortOnError,
		Tag:           cfg.Tag,
		Input:         cfg.Input,
		Follow:        cfg.Follow,
		LogLevel:      cfg.LogLevel,
		Command:       command,
	})
}
