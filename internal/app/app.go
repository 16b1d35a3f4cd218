package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/vk/landmarkgrid/internal/config"
	"github.com/vk/landmarkgrid/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	cfg     *Config
	loaders map[string]config.Loader
}

// NewApp is the constructor for the main application. Documents go to outW
// when no output path is configured; logs go to logW. loaders maps config
// file extensions (".hcl", ".toml") to the loader handling them.
func NewApp(outW, logW io.Writer, cfg *Config, loaders map[string]config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")
	return &App{
		outW:    outW,
		logger:  logger,
		cfg:     cfg,
		loaders: loaders,
	}
}

// Generator resolves the effective generator configuration: built-in
// defaults, then the config file, then command-line values.
func (a *App) Generator(ctx context.Context) (*config.Generator, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	gen := config.Default()

	if a.cfg.ConfigPath != "" {
		ext := strings.ToLower(filepath.Ext(a.cfg.ConfigPath))
		loader, ok := a.loaders[ext]
		if !ok {
			return nil, fmt.Errorf("no loader for config file %s", a.cfg.ConfigPath)
		}
		loaded, err := loader.Load(ctx, a.cfg.ConfigPath, gen)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		gen = loaded
		a.logger.Debug("Configuration file loaded.", "path", a.cfg.ConfigPath)
	}

	overrides := []struct {
		value string
		dst   *string
	}{
		{a.cfg.Root, &gen.Assets.Root},
		{a.cfg.Prefix, &gen.Assets.Prefix},
		{a.cfg.Extension, &gen.Assets.Extension},
		{a.cfg.OutputPath, &gen.Output.Path},
		{a.cfg.Format, &gen.Output.Format},
		{a.cfg.ManifestPath, &gen.Output.Manifest},
	}
	for _, o := range overrides {
		if o.value != "" {
			*o.dst = o.value
		}
	}
	gen.Assets.Extension = config.NormalizeExtension(gen.Assets.Extension)

	if err := gen.Validate(); err != nil {
		return nil, err
	}
	return gen, nil
}
