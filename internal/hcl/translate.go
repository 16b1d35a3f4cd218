package hcl

import (
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/landmarkgrid/internal/config"
)

// translateAssets overlays the assets block. A relative root is taken to be
// relative to the config file, not the working directory.
func (l *Loader) translateAssets(b *assetsBlock, dir string, out *config.Generator) hcl.Diagnostics {
	if b == nil {
		return nil
	}
	if b.Root != nil {
		root := *b.Root
		if root != "" && !filepath.IsAbs(root) {
			root = filepath.Join(dir, root)
		}
		out.Assets.Root = root
	}
	if b.Prefix != nil {
		out.Assets.Prefix = *b.Prefix
	}
	if b.Extension != nil {
		out.Assets.Extension = config.NormalizeExtension(*b.Extension)
	}
	return nil
}

func (l *Loader) translateLabel(b *labelBlock, out *config.Generator) {
	if b == nil {
		return
	}
	if b.StripLeading != nil {
		out.Label.StripLeading = *b.StripLeading
	}
	if b.StripTrailing != nil {
		out.Label.StripTrailing = *b.StripTrailing
	}
}

func (l *Loader) translateAppearance(b *appearanceBlock, out *config.Generator) hcl.Diagnostics {
	if b == nil {
		return nil
	}
	var diags hcl.Diagnostics
	targets := []struct {
		expr hcl.Expression
		dst  *config.Color
	}{
		{b.VariantA, &out.Appearance.VariantA},
		{b.VariantB, &out.Appearance.VariantB},
		{b.Text, &out.Appearance.Text},
	}
	for _, t := range targets {
		c, ok, d := decodeColor(t.expr)
		diags = append(diags, d...)
		if ok {
			*t.dst = c
		}
	}
	return diags
}

func (l *Loader) translateLayout(b *layoutBlock, out *config.Generator) hcl.Diagnostics {
	if b == nil {
		return nil
	}
	if b.CellSize != nil {
		out.Layout.CellSize = *b.CellSize
	}
	if b.Scale != nil {
		out.Layout.Scale = *b.Scale
	}
	if b.Sentinel != nil {
		out.Layout.Sentinel = *b.Sentinel
	}
	names, ok, diags := decodeStringList(b.Categories)
	if ok {
		out.Layout.Categories = names
	}
	return diags
}

func (l *Loader) translateOutput(b *outputBlock, out *config.Generator) {
	if b == nil {
		return
	}
	if b.Path != nil {
		out.Output.Path = *b.Path
	}
	if b.Format != nil {
		out.Output.Format = *b.Format
	}
	if b.Manifest != nil {
		out.Output.Manifest = *b.Manifest
	}
}
