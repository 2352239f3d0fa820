// Package config holds the runtime configuration of wordfreq.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"pkg.jsn.cam/wordfreq/pkg/storage"
	"pkg.jsn.cam/wordfreq/pkg/wordfreq"
)

const (
	DefaultOutput    = "output.txt"
	DefaultStorePath = "wordfreq.db"
	DefaultLogLevel  = "info"
)

// Config is loaded from an optional YAML file; CLI flags override it.
type Config struct {
	Output   string      `yaml:"output"`
	Workers  int         `yaml:"workers"` // 0 means one per CPU
	Progress bool        `yaml:"progress"`
	LogLevel string      `yaml:"log_level"`
	Store    StoreConfig `yaml:"store"`
}

// StoreConfig selects where committed segment results are kept during a run
type StoreConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Output:   DefaultOutput,
		Progress: true,
		LogLevel: DefaultLogLevel,
		Store: StoreConfig{
			Backend: storage.KindMemory,
			Path:    DefaultStorePath,
		},
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, wordfreq.IOError(err, "read config %s", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Mark(errors.Wrapf(err, "parse config %s", path), wordfreq.ErrConfiguration)
	}

	return cfg, cfg.Validate()
}

// Validate checks the values a file or flags could have set wrong.
func (c Config) Validate() error {
	if c.Output == "" {
		return wordfreq.ConfigErrorf("output path must not be empty")
	}
	if c.Workers < 0 {
		return wordfreq.ConfigErrorf("workers must not be negative, got %d", c.Workers)
	}

	switch c.Store.Backend {
	case storage.KindMemory:
	case storage.KindBbolt:
		if c.Store.Path == "" {
			return wordfreq.ConfigErrorf("store path is required for the %s backend", storage.KindBbolt)
		}
	default:
		return wordfreq.ConfigErrorf("unknown store backend %q", c.Store.Backend)
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}
