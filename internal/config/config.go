// Package config loads the optional passman YAML configuration file.
//
// There is no implicit config search path and no environment lookup: the
// file is read only when the caller names one (--config). Flags override
// config values; config values override defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Eyono/Password-manager-final/internal/password"
)

// DefaultFile is the store location used when neither flag nor config
// names one: a fixed filename in the working directory.
const DefaultFile = "passwords.csv"

// Config holds the settings a config file may carry.
type Config struct {
	// File is the path of the CSV credential store.
	File string `yaml:"file"`

	// PasswordLength is the length of generated passwords.
	PasswordLength int `yaml:"password_length"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		File:           DefaultFile,
		PasswordLength: password.DefaultLength,
	}
}

// Load reads a YAML config file over the defaults. Fields absent from the
// file keep their default values. An unreadable or invalid file is an error,
// never silently ignored.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if c.File == "" {
		return fmt.Errorf("file must not be empty")
	}
	if c.PasswordLength < 1 {
		return fmt.Errorf("password_length must be at least 1, got %d", c.PasswordLength)
	}
	return nil
}
