package hcl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/landmarkgrid/internal/config"
	"github.com/vk/landmarkgrid/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the HCL file at path and overlays it onto a copy of base.
func (l *Loader) Load(ctx context.Context, path string, base *config.Generator) (*config.Generator, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return l.decode(ctx, file, filepath.Dir(path), base)
}

// Parse is Load for in-memory source. filename is used in diagnostics and
// relative asset roots are resolved against its directory.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string, base *config.Generator) (*config.Generator, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL source %s: %w", filename, diags)
	}
	return l.decode(ctx, file, filepath.Dir(filename), base)
}

func (l *Loader) decode(ctx context.Context, file *hcl.File, dir string, base *config.Generator) (*config.Generator, error) {
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode generator config: %w", diags)
	}

	out := base.Clone()
	var diags hcl.Diagnostics
	diags = append(diags, l.translateAssets(root.Assets, dir, out)...)
	l.translateLabel(root.Label, out)
	diags = append(diags, l.translateAppearance(root.Appearance, out)...)
	diags = append(diags, l.translateLayout(root.Layout, out)...)
	l.translateOutput(root.Output, out)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid generator config: %w", diags)
	}

	logger.Debug("HCL loading complete.",
		"root", out.Assets.Root,
		"prefix", out.Assets.Prefix,
		"extension", out.Assets.Extension,
		"categories", len(out.Layout.Categories),
		"format", out.Output.Format,
	)
	return out, nil
}
