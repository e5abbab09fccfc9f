package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SpecPath string // .hcl declaration files (file or directory)
	Case     string // single configuration to resolve; empty means all

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.SpecPath == "" {
		return nil, errors.New("SpecPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
