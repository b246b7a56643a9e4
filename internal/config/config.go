// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/pulse/internal/session"
	"github.com/abhisek/pulse/internal/store"
)

// Config holds all runtime settings. Command-line flags override these.
type Config struct {
	// SurveyPath points at a JSON or YAML definition. Empty uses the
	// built-in survey.
	SurveyPath string `env:"PULSE_SURVEY"`

	// JournalDSN is the SQLite DSN or file path for the session journal.
	JournalDSN string `env:"PULSE_JOURNAL"`

	// SubmitDelay is the pause between the last answer and the reveal.
	SubmitDelay time.Duration `env:"PULSE_SUBMIT_DELAY"`
}

// Default returns a Config with defaults applied.
func Default() Config {
	return Config{
		JournalDSN:  store.MemoryDSN,
		SubmitDelay: session.DefaultSubmitDelay,
	}
}

// FromEnv loads the configuration from environment variables on top of
// Default. Unset or empty variables keep the default value.
func FromEnv() (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if c.SubmitDelay < 0 {
		return fmt.Errorf("PULSE_SUBMIT_DELAY must be >= 0, got %s", c.SubmitDelay)
	}
	if c.SubmitDelay > time.Minute {
		return fmt.Errorf("PULSE_SUBMIT_DELAY must be at most 1m, got %s", c.SubmitDelay)
	}
	return nil
}
