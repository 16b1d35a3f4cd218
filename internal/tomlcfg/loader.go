// Package tomlcfg loads generator configuration written in TOML. It accepts
// the same tables and keys as the HCL loader.
package tomlcfg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/vk/landmarkgrid/internal/config"
	"github.com/vk/landmarkgrid/internal/ctxlog"
)

type fileRoot struct {
	Assets     *assetsTable     `toml:"assets"`
	Label      *labelTable      `toml:"label"`
	Appearance *appearanceTable `toml:"appearance"`
	Layout     *layoutTable     `toml:"layout"`
	Output     *outputTable     `toml:"output"`
}

type assetsTable struct {
	Root      *string `toml:"root"`
	Prefix    *string `toml:"prefix"`
	Extension *string `toml:"extension"`
}

type labelTable struct {
	StripLeading  *int `toml:"strip_leading"`
	StripTrailing *int `toml:"strip_trailing"`
}

type appearanceTable struct {
	VariantA []float64 `toml:"variant_a"`
	VariantB []float64 `toml:"variant_b"`
	Text     []float64 `toml:"text"`
}

type layoutTable struct {
	CellSize   *float64 `toml:"cell_size"`
	Scale      *float64 `toml:"scale"`
	Sentinel   *string  `toml:"sentinel"`
	Categories []string `toml:"categories"`
}

type outputTable struct {
	Path     *string `toml:"path"`
	Format   *string `toml:"format"`
	Manifest *string `toml:"manifest"`
}

// Loader implements config.Loader for TOML files.
type Loader struct{}

// NewLoader creates a new TOML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the TOML file at path and overlays it onto a copy of base.
func (l *Loader) Load(ctx context.Context, path string, base *config.Generator) (*config.Generator, error) {
	ctxlog.FromContext(ctx).Debug("TOML loader started.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read TOML file %s: %w", path, err)
	}
	return l.Parse(ctx, src, path, base)
}

// Parse is Load for in-memory source. Relative asset roots are resolved
// against filename's directory.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string, base *config.Generator) (*config.Generator, error) {
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	dec := toml.NewDecoder(bytes.NewReader(src))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&root); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("failed to parse TOML file %s:%d:%d: %w", filename, row, col, err)
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return nil, fmt.Errorf("unsupported keys in %s:\n%s", filename, serr.String())
		}
		return nil, fmt.Errorf("failed to decode TOML file %s: %w", filename, err)
	}

	out := base.Clone()
	var errs []error
	if a := root.Assets; a != nil {
		if a.Root != nil {
			r := *a.Root
			if r != "" && !filepath.IsAbs(r) {
				r = filepath.Join(filepath.Dir(filename), r)
			}
			out.Assets.Root = r
		}
		if a.Prefix != nil {
			out.Assets.Prefix = *a.Prefix
		}
		if a.Extension != nil {
			out.Assets.Extension = config.NormalizeExtension(*a.Extension)
		}
	}
	if lb := root.Label; lb != nil {
		if lb.StripLeading != nil {
			out.Label.StripLeading = *lb.StripLeading
		}
		if lb.StripTrailing != nil {
			out.Label.StripTrailing = *lb.StripTrailing
		}
	}
	if ap := root.Appearance; ap != nil {
		colors := []struct {
			key string
			src []float64
			dst *config.Color
		}{
			{"appearance.variant_a", ap.VariantA, &out.Appearance.VariantA},
			{"appearance.variant_b", ap.VariantB, &out.Appearance.VariantB},
			{"appearance.text", ap.Text, &out.Appearance.Text},
		}
		for _, c := range colors {
			if c.src == nil {
				continue
			}
			if len(c.src) != 3 {
				errs = append(errs, fmt.Errorf("%s: want 3 components, got %d", c.key, len(c.src)))
				continue
			}
			*c.dst = config.Color{c.src[0], c.src[1], c.src[2]}
		}
	}
	if ly := root.Layout; ly != nil {
		if ly.CellSize != nil {
			out.Layout.CellSize = *ly.CellSize
		}
		if ly.Scale != nil {
			out.Layout.Scale = *ly.Scale
		}
		if ly.Sentinel != nil {
			out.Layout.Sentinel = *ly.Sentinel
		}
		if ly.Categories != nil {
			out.Layout.Categories = append([]string(nil), ly.Categories...)
		}
	}
	if o := root.Output; o != nil {
		if o.Path != nil {
			out.Output.Path = *o.Path
		}
		if o.Format != nil {
			out.Output.Format = *o.Format
		}
		if o.Manifest != nil {
			out.Output.Manifest = *o.Manifest
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid generator config %s: %w", filename, err)
	}

	logger.Debug("TOML loading complete.",
		"root", out.Assets.Root,
		"categories", len(out.Layout.Categories),
		"format", out.Output.Format,
	)
	return out, nil
}
