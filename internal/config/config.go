// Package config loads the shell's small set of user-tunable defaults
// from ~/.xv6sh/config.yaml, the way the teacher repo loads its own
// dotfile: Default() seeds built-in values, Load() merges in the file
// if one exists, then an environment variable gets the final say.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the fields a v6 shell can legitimately own: a prompt
// string and a default verbosity. There is no token, no API URL, and no
// persisted history — this shell never talks to a remote service and
// never writes a history file.
type Config struct {
	Prompt  string `yaml:"prompt"`
	Verbose bool   `yaml:"verbose"`
}

// Default returns the built-in configuration used when no config file
// is present.
func Default() *Config {
	return &Config{
		Prompt:  "$ ",
		Verbose: false,
	}
}

// ConfigDir returns ~/.xv6sh.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".xv6sh"), nil
}

// ConfigPath returns ~/.xv6sh/config.yaml.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load builds a Config starting from Default, merging in
// ~/.xv6sh/config.yaml if it exists, then applying the XV6SH_VERBOSE
// environment override.
func Load() (*Config, error) {
	cfg := Default()

	// 1. Load from file
	path, err := ConfigPath()
	if err == nil {
		f, err := os.Open(path)
		if err == nil {
			defer f.Close()
			if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	// 2. Override from env
	if v := os.Getenv("XV6SH_VERBOSE"); v != "" {
		cfg.Verbose = v == "1" || v == "true"
	}

	return cfg, nil
}
