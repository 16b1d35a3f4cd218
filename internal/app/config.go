package app

import "errors"

// Config holds everything an App instance needs to run. String fields left
// empty fall back to the config file, then to the built-in defaults.
type Config struct {
	ConfigPath string // optional HCL or TOML generator config

	Root      string
	Prefix    string
	Extension string

	OutputPath   string // "" or "-" writes the document to the app's output
	Format       string
	ManifestPath string

	LogFormat string
	LogLevel  string
	Verify    bool
}

// NewConfig validates the parts of cfg that can be checked before any
// configuration file is read.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Root == "" && cfg.ConfigPath == "" {
		return nil, errors.New("an asset root or a config file is required")
	}
	if cfg.ManifestPath != "" && cfg.ManifestPath == cfg.OutputPath {
		return nil, errors.New("manifest and document cannot share a path")
	}
	return &cfg, nil
}
