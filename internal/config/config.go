// Package config holds the settings of the search driver: the automaton dimensions to
// enumerate, the reporting threshold, the alphabet and the worker count. Settings are read
// from an optional YAML file; command-line flags override them.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/geange/cerny"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config driver settings.
type Config struct {
	Letters   int    `yaml:"letters"`
	States    int    `yaml:"states"`
	Threshold int    `yaml:"threshold"`
	Alphabet  string `yaml:"alphabet"`
	Workers   int    `yaml:"workers"`
	// SkipNonSynchronizing runs the polynomial pair test before the subset search.
	SkipNonSynchronizing bool `yaml:"skip_non_synchronizing"`
}

// Default The settings of the original experiment: two letters, five states, report words
// of length 16 = (5-1)^2 and above.
func Default() Config {
	return Config{
		Letters:              2,
		States:               5,
		Threshold:            16,
		Alphabet:             cerny.DefaultAlphabet.String(),
		Workers:              runtime.GOMAXPROCS(0),
		SkipNonSynchronizing: true,
	}
}

// Load Reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate Checks the dimensions, the worker count and that the alphabet can spell words
// over every letter.
func (c Config) Validate() error {
	if c.Letters < 0 || c.States < 0 {
		return fmt.Errorf("%w: letters=%d states=%d", ErrInvalidConfig, c.Letters, c.States)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, ok := cerny.Total(c.Letters, c.States); !ok {
		return fmt.Errorf("%w: %d^(%d*%d) automata do not fit in 64 bits",
			ErrInvalidConfig, c.States, c.Letters, c.States)
	}
	alphabet, err := c.ParseAlphabet()
	if err != nil {
		return err
	}
	return alphabet.Check(c.Letters)
}

func (c Config) ParseAlphabet() (cerny.Alphabet, error) {
	return cerny.NewAlphabet(c.Alphabet)
}
