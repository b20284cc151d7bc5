// Package config reads the settings of a counter simulation run from the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/sarchlab/counterreg/counter"
	"github.com/sarchlab/counterreg/stimulus"
	"github.com/sarchlab/counterreg/timing"
)

// ErrInvalid is returned by Validate for settings that cannot drive a run.
var ErrInvalid = errors.New("config: invalid")

// Config holds the settings of one simulation run.
type Config struct {
	Cycles      uint64  `env:"CYCLES" envDefault:"18"`
	FreqHz      float64 `env:"FREQ_HZ" envDefault:"1e9"`
	Stimulus    string  `env:"STIMULUS" envDefault:"0:r,1-17:e"`
	Script      string  `env:"SCRIPT"`
	Initial     uint    `env:"INITIAL" envDefault:"0"`
	DB          string  `env:"DB"`
	MonitorPort int     `env:"MONITOR_PORT" envDefault:"0"`
	Verbose     bool    `env:"VERBOSE"`
}

// Prefix is prepended to every environment variable name.
const Prefix = "COUNTERREG_"

// Load reads the given .env files, if they exist, and then parses the
// environment. Variables already set in the environment win over .env
// files.
func Load(files ...string) (Config, error) {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}

	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return Config{}, fmt.Errorf("config: loading %v: %w", existing, err)
		}
	}

	return Parse()
}

// Parse reads the configuration from the environment only.
func Parse() (Config, error) {
	cfg := Config{}

	err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix})
	if err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	if c.Cycles == 0 {
		return fmt.Errorf("%w: cycles must be positive", ErrInvalid)
	}

	if err := c.Freq().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if c.Initial > counter.Max {
		return fmt.Errorf("%w: initial count %d does not fit in %d bits",
			ErrInvalid, c.Initial, counter.Width)
	}

	if c.MonitorPort < 0 || c.MonitorPort > 65535 {
		return fmt.Errorf("%w: monitor port %d", ErrInvalid, c.MonitorPort)
	}

	return nil
}

// Freq returns the configured clock frequency.
func (c Config) Freq() timing.Freq {
	return timing.Freq(c.FreqHz)
}

// Source builds the stimulus source. A script takes precedence over the
// schedule text.
func (c Config) Source() (stimulus.Source, error) {
	if c.Script != "" {
		script, err := stimulus.LoadScript(c.Script)
		if err != nil {
			return nil, err
		}

		return script, nil
	}

	schedule, err := stimulus.ParseSchedule(c.Stimulus)
	if err != nil {
		return nil, err
	}

	return schedule, nil
}
