package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the resolved configuration. All problems are reported
// together, each as an *InvalidInputError joined with errors.Join.
func (g *Generator) Validate() error {
	var errs []error
	bad := func(field, format string, args ...any) {
		errs = append(errs, &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)})
	}

	if g.Assets.Root == "" {
		bad("assets.root", "must not be empty")
	}
	if g.Assets.Prefix == "" {
		bad("assets.prefix", "must not be empty")
	}
	if g.Assets.Extension == "" || g.Assets.Extension == "." {
		bad("assets.extension", "must not be empty")
	}

	if g.Label.StripLeading < 0 {
		bad("label.strip_leading", "must not be negative, got %d", g.Label.StripLeading)
	}
	if g.Label.StripTrailing < 0 {
		bad("label.strip_trailing", "must not be negative, got %d", g.Label.StripTrailing)
	}

	colors := []struct {
		field string
		c     Color
	}{
		{"appearance.variant_a", g.Appearance.VariantA},
		{"appearance.variant_b", g.Appearance.VariantB},
		{"appearance.text", g.Appearance.Text},
	}
	for _, col := range colors {
		for i, v := range col.c {
			if v < 0 || v > 1 {
				bad(col.field, "component %d is %g, want a value in [0,1]", i, v)
			}
		}
	}

	if g.Layout.CellSize <= 0 {
		bad("layout.cell_size", "must be positive, got %g", g.Layout.CellSize)
	}
	if g.Layout.Scale <= 0 {
		bad("layout.scale", "must be positive, got %g", g.Layout.Scale)
	}
	if strings.TrimSpace(g.Layout.Sentinel) == "" {
		bad("layout.sentinel", "must not be blank")
	}
	if len(g.Layout.Categories) == 0 {
		bad("layout.categories", "must list at least one category")
	}
	seen := make(map[string]int, len(g.Layout.Categories))
	for i, name := range g.Layout.Categories {
		if strings.TrimSpace(name) == "" {
			bad("layout.categories", "entry %d is blank", i)
			continue
		}
		if prev, ok := seen[name]; ok {
			bad("layout.categories", "%q appears at %d and %d", name, prev, i)
		}
		seen[name] = i
		if name == g.Layout.Sentinel {
			bad("layout.sentinel", "%q is also a regular category", name)
		}
	}

	switch g.Output.Format {
	case FormatXML, FormatJSON:
	default:
		bad("output.format", "unknown format %q, want %q or %q", g.Output.Format, FormatXML, FormatJSON)
	}

	return errors.Join(errs...)
}

// NormalizeExtension returns ext with a leading dot.
func NormalizeExtension(ext string) string {
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}
