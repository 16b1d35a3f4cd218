package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes every top-level block a generator config file may carry.
// Each block may appear at most once; unknown blocks are rejected by gohcl.
type fileRoot struct {
	Assets     *assetsBlock     `hcl:"assets,block"`
	Label      *labelBlock      `hcl:"label,block"`
	Appearance *appearanceBlock `hcl:"appearance,block"`
	Layout     *layoutBlock     `hcl:"layout,block"`
	Output     *outputBlock     `hcl:"output,block"`
}

type assetsBlock struct {
	Root      *string `hcl:"root,optional"`
	Prefix    *string `hcl:"prefix,optional"`
	Extension *string `hcl:"extension,optional"`
}

type labelBlock struct {
	StripLeading  *int `hcl:"strip_leading,optional"`
	StripTrailing *int `hcl:"strip_trailing,optional"`
}

// Colors stay as raw expressions; they are converted to list(number) by
// decodeColor so type errors point at the attribute.
type appearanceBlock struct {
	VariantA hcl.Expression `hcl:"variant_a,optional"`
	VariantB hcl.Expression `hcl:"variant_b,optional"`
	Text     hcl.Expression `hcl:"text,optional"`
}

type layoutBlock struct {
	CellSize   *float64       `hcl:"cell_size,optional"`
	Scale      *float64       `hcl:"scale,optional"`
	Sentinel   *string        `hcl:"sentinel,optional"`
	Categories hcl.Expression `hcl:"categories,optional"`
}

type outputBlock struct {
	Path     *string `hcl:"path,optional"`
	Format   *string `hcl:"format,optional"`
	Manifest *string `hcl:"manifest,optional"`
}
