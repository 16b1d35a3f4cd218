package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the configuration file at path and overlays every value it
	// sets onto a copy of base. Values the file leaves out keep base's value.
	Load(ctx context.Context, path string, base *Generator) (*Generator, error)
}
