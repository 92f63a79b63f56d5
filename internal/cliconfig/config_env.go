package cliconfig

// EnvPrefix is the prefix of every environment variable read by linebatch.
const EnvPrefix = "LINEBATCH_"

// LookupEnvFunc matches os.LookupEnv so tests can supply their own environment.
type LookupEnvFunc func(key string) (string, bool)

// ApplyEnvConfig applies configuration from environment variables (LINEBATCH_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool, lookup LookupEnvFunc) error {
	s := newConfigSetter(changed)
	env := func(name string) string {
		v, _ := lookup(EnvPrefix + name)
		return v
	}

	s.setString("join-delimiter", env("JOIN_DELIMITER"), &cfg.JoinDelimiter)
	s.setString("tag", env("TAG"), &cfg.Tag)
	s.setString("input", env("INPUT"), &cfg.Input)
	s.setString("log-level", env("LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("size", env("SIZE"), &cfg.Size); err != nil {
		return err
	}

	if err := s.setBoolFromString("blanks", env("BLANKS"), &cfg.Blanks); err != nil {
		return err
	}
	if err := s.setBoolFromString("trim", env("TRIM"), &cfg.Trim); err != nil {
		return err
	}
	if err := s.setBoolFromString("abort-on-error", env("ABORT_ON_ERROR"), &cfg.AbortOnError); err != nil {
		return err
	}
	if err := s.setBoolFromString("follow", env("FOLLOW"), &cfg.Follow); err != nil {
		return err
	}

	return nil
}
